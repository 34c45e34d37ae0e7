// Package ebitensource implements the inputkit Source on top of ebiten's
// input polling. The host calls Poll once per Update, before Core.Tick.
package ebitensource

import (
	"github.com/automoto/inputkit/config"
	"github.com/automoto/inputkit/device"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config configures the source.
type Config struct {
	Maps     config.Maps
	Deadzone float64 // 0 uses config.DefaultDeadzone
	// Screen size in logical pixels, used to place touch zones. Update from
	// the game's Layout via SetScreenSize.
	ScreenWidth  int
	ScreenHeight int
}

// Source polls ebiten devices and resolves raw action values against the
// binding maps. It emits device-change notifications for gamepad
// connect/disconnect, the first touch, and control-scheme changes (a device
// category newly in use).
type Source struct {
	maps     config.Maps
	deadzone float64
	width    int
	height   int

	notify []func(device.ChangeEvent)

	// Reusable buffers to avoid per-frame allocations.
	gamepadIDs  []ebiten.GamepadID
	justPads    []ebiten.GamepadID
	pressedKeys []ebiten.Key
	touchIDs    []ebiten.TouchID

	// Display names cached per gamepad so ebiten.GamepadName is not hit
	// every frame.
	padNames  map[ebiten.GamepadID]string
	padActive map[ebiten.GamepadID]bool

	keyboardActive bool
	gamepadActive  bool
	touchActive    bool
	touchSeen      bool

	// Virtual stick state for the touch move zone.
	moveTouch   ebiten.TouchID
	hasMove     bool
	moveOriginX int
	moveOriginY int
}

// moveTouchRadius is the virtual stick's full-deflection radius in pixels.
const moveTouchRadius = 64

func New(cfg Config) *Source {
	dz := cfg.Deadzone
	if dz == 0 {
		dz = config.DefaultDeadzone
	}
	w, h := cfg.ScreenWidth, cfg.ScreenHeight
	if w == 0 {
		w = 640
	}
	if h == 0 {
		h = 480
	}
	return &Source{
		maps:      cfg.Maps,
		deadzone:  dz,
		width:     w,
		height:    h,
		padNames:  map[ebiten.GamepadID]string{},
		padActive: map[ebiten.GamepadID]bool{},
	}
}

// SetScreenSize updates the touch zone geometry. Call from Layout.
func (s *Source) SetScreenSize(w, h int) {
	s.width, s.height = w, h
}

// SetDeadzone adjusts the analog deadzone at runtime. Out-of-range values
// are ignored.
func (s *Source) SetDeadzone(v float64) {
	if v < 0 || v >= 1 {
		return
	}
	s.deadzone = v
}

// OnDeviceChange registers fn for device-change notifications. Callbacks run
// synchronously inside Poll.
func (s *Source) OnDeviceChange(fn func(device.ChangeEvent)) {
	s.notify = append(s.notify, fn)
}

func (s *Source) emit(ev device.ChangeEvent) {
	for _, fn := range s.notify {
		fn(ev)
	}
}

// Poll refreshes the device set and per-tick activity flags. Call exactly
// once per Update, before ticking the core.
func (s *Source) Poll() {
	s.pollGamepads()
	s.pollTouches()

	wasKeyboard, wasGamepad, wasTouch := s.keyboardActive, s.gamepadActive, s.touchActive

	s.pressedKeys = inpututil.AppendPressedKeys(s.pressedKeys[:0])
	s.keyboardActive = len(s.pressedKeys) > 0

	s.gamepadActive = false
	for _, id := range s.gamepadIDs {
		active := s.padInUse(id)
		s.padActive[id] = active
		if active {
			s.gamepadActive = true
		}
	}

	s.touchActive = len(s.touchIDs) > 0

	// A category newly in use is a control-scheme change: the arbiter only
	// re-evaluates on notifications, so the rising edge must produce one.
	// Falling edges deliberately do not; the active category sticks until
	// another device takes over or a device is removed.
	if s.keyboardActive && !wasKeyboard {
		s.emit(device.ChangeEvent{Device: s.keyboardDevice(), Kind: device.ControlSchemeChanged})
	}
	if s.gamepadActive && !wasGamepad {
		s.emit(device.ChangeEvent{Device: s.firstActivePad(), Kind: device.ControlSchemeChanged})
	}
	if s.touchActive && !wasTouch {
		s.emit(device.ChangeEvent{Device: s.touchDevice(), Kind: device.ControlSchemeChanged})
	}
}

func (s *Source) pollGamepads() {
	s.justPads = inpututil.AppendJustConnectedGamepadIDs(s.justPads[:0])
	for _, id := range s.justPads {
		s.padNames[id] = ebiten.GamepadName(id)
		s.emit(device.ChangeEvent{
			Device: device.Device{Category: device.CategoryGamepad, DisplayName: s.padNames[id]},
			Kind:   device.DeviceAdded,
		})
	}

	for id, name := range s.padNames {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(s.padNames, id)
			delete(s.padActive, id)
			s.emit(device.ChangeEvent{
				Device: device.Device{Category: device.CategoryGamepad, DisplayName: name},
				Kind:   device.DeviceRemoved,
			})
		}
	}

	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	for _, id := range s.gamepadIDs {
		if _, ok := s.padNames[id]; !ok {
			// Connected before the source existed, so it was never "just
			// connected".
			s.padNames[id] = ebiten.GamepadName(id)
		}
	}
}

func (s *Source) pollTouches() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if len(s.touchIDs) > 0 && !s.touchSeen {
		s.touchSeen = true
		s.emit(device.ChangeEvent{Device: s.touchDevice(), Kind: device.DeviceAdded})
	}

	s.trackMoveTouch()
}

// padInUse reports whether any standard-layout control on the pad is beyond
// its rest position.
func (s *Source) padInUse(id ebiten.GamepadID) bool {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return false
	}
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	for _, axis := range []ebiten.StandardGamepadAxis{
		ebiten.StandardGamepadAxisLeftStickHorizontal,
		ebiten.StandardGamepadAxisLeftStickVertical,
		ebiten.StandardGamepadAxisRightStickHorizontal,
		ebiten.StandardGamepadAxisRightStickVertical,
	} {
		v := ebiten.StandardGamepadAxisValue(id, axis)
		if v > s.deadzone || v < -s.deadzone {
			return true
		}
	}
	return false
}

func (s *Source) keyboardDevice() device.Device {
	return device.Device{
		Category:        device.CategoryKeyboard,
		DisplayName:     "Keyboard",
		UpdatedThisTick: s.keyboardActive,
	}
}

func (s *Source) touchDevice() device.Device {
	return device.Device{
		Category:        device.CategoryTouch,
		DisplayName:     "Touchscreen",
		UpdatedThisTick: s.touchActive,
	}
}

func (s *Source) firstActivePad() device.Device {
	for _, id := range s.gamepadIDs {
		if s.padActive[id] {
			return device.Device{
				Category:        device.CategoryGamepad,
				DisplayName:     s.padNames[id],
				UpdatedThisTick: true,
			}
		}
	}
	return device.Device{Category: device.CategoryGamepad}
}

// ConnectedDevices lists the keyboard (always present), every connected
// gamepad, and the touchscreen once a touch has been seen.
func (s *Source) ConnectedDevices() []device.Device {
	devices := make([]device.Device, 0, len(s.gamepadIDs)+2)
	devices = append(devices, s.keyboardDevice())
	for _, id := range s.gamepadIDs {
		devices = append(devices, device.Device{
			Category:        device.CategoryGamepad,
			DisplayName:     s.padNames[id],
			UpdatedThisTick: s.padActive[id],
		})
	}
	if s.touchSeen {
		devices = append(devices, s.touchDevice())
	}
	return devices
}
