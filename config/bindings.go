package config

import (
	"fmt"

	"github.com/automoto/inputkit/device"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionMove ActionID = iota
	ActionPrimary
	ActionSecondary
	ActionMenu
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionPrimary:
		return "primary"
	case ActionSecondary:
		return "secondary"
	case ActionMenu:
		return "menu"
	}
	return "unknown"
}

// DefaultDeadzone is applied to analog stick input when a profile does not
// override it (0.0 to 1.0).
const DefaultDeadzone = 0.25

// Stick selects which analog stick drives a move binding.
type Stick int

const (
	StickNone Stick = iota
	StickLeft
	StickRight
)

// TouchZone names a screen region used as a touch binding. The left-half zone
// doubles as a virtual stick for the move action.
type TouchZone int

const (
	ZoneNone TouchZone = iota
	ZoneLeftHalf
	ZoneRightHalf
	ZoneTopLeft
	ZoneTopRight
)

// MoveKeys holds the directional key sets for a keyboard move binding.
type MoveKeys struct {
	Up    []ebiten.Key
	Down  []ebiten.Key
	Left  []ebiten.Key
	Right []ebiten.Key
}

// Binding represents the device-specific inputs for a single action. Only the
// fields relevant to the owning map's device category are populated: Keys and
// MoveKeys for keyboard maps, Buttons and Stick for gamepad maps, Zone for
// touch maps.
type Binding struct {
	Keys     []ebiten.Key
	MoveKeys *MoveKeys
	Buttons  []ebiten.StandardGamepadButton
	Stick    Stick
	Zone     TouchZone
}

// ActionMap associates the logical actions with bindings for one device
// category. A map that omits an action leaves that action permanently inactive
// while the map is live; that is allowed, not an error.
type ActionMap struct {
	Name     string
	Bindings map[ActionID]Binding
}

// Has reports whether the map carries a binding for the action.
func (m ActionMap) Has(id ActionID) bool {
	_, ok := m.Bindings[id]
	return ok
}

// Binding returns the binding for the action, if one is registered.
func (m ActionMap) Binding(id ActionID) (Binding, bool) {
	b, ok := m.Bindings[id]
	return b, ok
}

// Maps holds one ActionMap per device category. A category without an entry
// leaves the router disabled while that category is active.
type Maps map[device.Category]ActionMap

// Validate rejects configurations that indicate host misconfiguration. These
// fail loudly at init time; nothing here is recoverable at runtime.
func (m Maps) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("config: no action maps supplied")
	}
	if _, ok := m[device.CategoryNone]; ok {
		return fmt.Errorf("config: action map registered for the none category")
	}
	return nil
}

// Default returns the built-in binding maps for all three device categories.
func Default() Maps {
	return Maps{
		device.CategoryKeyboard: {
			Name: "keyboard",
			Bindings: map[ActionID]Binding{
				ActionMove: {
					MoveKeys: &MoveKeys{
						Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
						Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
						Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
						Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
					},
				},
				ActionPrimary: {
					Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
				},
				ActionSecondary: {
					Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyK},
				},
				ActionMenu: {
					Keys: []ebiten.Key{ebiten.KeyEscape},
				},
			},
		},
		device.CategoryGamepad: {
			Name: "gamepad",
			Bindings: map[ActionID]Binding{
				ActionMove: {
					Stick: StickLeft,
				},
				ActionPrimary: {
					// A / Cross button
					Buttons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonRightBottom,
					},
				},
				ActionSecondary: {
					// X / Square button
					Buttons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonRightLeft,
					},
				},
				ActionMenu: {
					// Start / Options button
					Buttons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonCenterRight,
					},
				},
			},
		},
		device.CategoryTouch: {
			Name: "touch",
			Bindings: map[ActionID]Binding{
				// Left half is a virtual stick; no secondary action on touch.
				ActionMove:    {Zone: ZoneLeftHalf},
				ActionPrimary: {Zone: ZoneRightHalf},
				ActionMenu:    {Zone: ZoneTopRight},
			},
		},
	}
}
