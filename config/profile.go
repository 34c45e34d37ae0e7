package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/inputkit/device"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Profile is a binding configuration loaded from a YAML file. Categories
// missing from the file are simply absent from Maps.
type Profile struct {
	Name     string
	Deadzone float64
	Maps     Maps
}

type profileFile struct {
	Name     string           `yaml:"name"`
	Deadzone *float64         `yaml:"deadzone"`
	Keyboard *keyboardSection `yaml:"keyboard"`
	Gamepad  *gamepadSection  `yaml:"gamepad"`
	Touch    *touchSection    `yaml:"touch"`
}

type keyboardSection struct {
	Move *struct {
		Up    []string `yaml:"up"`
		Down  []string `yaml:"down"`
		Left  []string `yaml:"left"`
		Right []string `yaml:"right"`
	} `yaml:"move"`
	Primary   []string `yaml:"primary"`
	Secondary []string `yaml:"secondary"`
	Menu      []string `yaml:"menu"`
}

type gamepadSection struct {
	Move *struct {
		Stick string `yaml:"stick"`
	} `yaml:"move"`
	Primary   []string `yaml:"primary"`
	Secondary []string `yaml:"secondary"`
	Menu      []string `yaml:"menu"`
}

type touchSection struct {
	Move *struct {
		Zone string `yaml:"zone"`
	} `yaml:"move"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Menu      string `yaml:"menu"`
}

// LoadProfile reads and parses a binding profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfile(data)
}

// ParseProfile parses a binding profile from YAML. Unknown key, button, stick
// or zone names are errors: a profile that silently drops bindings would be
// indistinguishable from one that intentionally omits them.
func ParseProfile(data []byte) (*Profile, error) {
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("config: parsing profile: %w", err)
	}

	p := &Profile{
		Name:     pf.Name,
		Deadzone: DefaultDeadzone,
		Maps:     Maps{},
	}
	if pf.Deadzone != nil {
		if *pf.Deadzone < 0 || *pf.Deadzone >= 1 {
			return nil, fmt.Errorf("config: deadzone %v out of range [0, 1)", *pf.Deadzone)
		}
		p.Deadzone = *pf.Deadzone
	}

	if pf.Keyboard != nil {
		m, err := pf.Keyboard.actionMap()
		if err != nil {
			return nil, err
		}
		p.Maps[device.CategoryKeyboard] = m
	}
	if pf.Gamepad != nil {
		m, err := pf.Gamepad.actionMap()
		if err != nil {
			return nil, err
		}
		p.Maps[device.CategoryGamepad] = m
	}
	if pf.Touch != nil {
		m, err := pf.Touch.actionMap()
		if err != nil {
			return nil, err
		}
		p.Maps[device.CategoryTouch] = m
	}

	if err := p.Maps.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *keyboardSection) actionMap() (ActionMap, error) {
	m := ActionMap{Name: "keyboard", Bindings: map[ActionID]Binding{}}

	if s.Move != nil {
		mk := &MoveKeys{}
		for _, dir := range []struct {
			names []string
			dst   *[]ebiten.Key
		}{
			{s.Move.Up, &mk.Up},
			{s.Move.Down, &mk.Down},
			{s.Move.Left, &mk.Left},
			{s.Move.Right, &mk.Right},
		} {
			keys, err := parseKeys(dir.names)
			if err != nil {
				return m, err
			}
			*dir.dst = keys
		}
		m.Bindings[ActionMove] = Binding{MoveKeys: mk}
	}

	for _, b := range []struct {
		id    ActionID
		names []string
	}{
		{ActionPrimary, s.Primary},
		{ActionSecondary, s.Secondary},
		{ActionMenu, s.Menu},
	} {
		if len(b.names) == 0 {
			continue
		}
		keys, err := parseKeys(b.names)
		if err != nil {
			return m, err
		}
		m.Bindings[b.id] = Binding{Keys: keys}
	}
	return m, nil
}

func (s *gamepadSection) actionMap() (ActionMap, error) {
	m := ActionMap{Name: "gamepad", Bindings: map[ActionID]Binding{}}

	if s.Move != nil {
		stick, err := ParseStick(s.Move.Stick)
		if err != nil {
			return m, err
		}
		m.Bindings[ActionMove] = Binding{Stick: stick}
	}

	for _, b := range []struct {
		id    ActionID
		names []string
	}{
		{ActionPrimary, s.Primary},
		{ActionSecondary, s.Secondary},
		{ActionMenu, s.Menu},
	} {
		if len(b.names) == 0 {
			continue
		}
		buttons := make([]ebiten.StandardGamepadButton, 0, len(b.names))
		for _, name := range b.names {
			btn, err := ParseButton(name)
			if err != nil {
				return m, err
			}
			buttons = append(buttons, btn)
		}
		m.Bindings[b.id] = Binding{Buttons: buttons}
	}
	return m, nil
}

func (s *touchSection) actionMap() (ActionMap, error) {
	m := ActionMap{Name: "touch", Bindings: map[ActionID]Binding{}}

	if s.Move != nil {
		zone, err := ParseZone(s.Move.Zone)
		if err != nil {
			return m, err
		}
		m.Bindings[ActionMove] = Binding{Zone: zone}
	}

	for _, b := range []struct {
		id   ActionID
		name string
	}{
		{ActionPrimary, s.Primary},
		{ActionSecondary, s.Secondary},
		{ActionMenu, s.Menu},
	} {
		if b.name == "" {
			continue
		}
		zone, err := ParseZone(b.name)
		if err != nil {
			return m, err
		}
		m.Bindings[b.id] = Binding{Zone: zone}
	}
	return m, nil
}

// keyNames maps lowercased ebiten key names ("a", "arrowup", "escape") to key
// constants, plus a few shorthand aliases for the arrow keys.
var keyNames = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	m["up"] = ebiten.KeyArrowUp
	m["down"] = ebiten.KeyArrowDown
	m["left"] = ebiten.KeyArrowLeft
	m["right"] = ebiten.KeyArrowRight
	return m
}()

// buttonNames uses the standard gamepad layout's positional names: the face
// buttons are named by position rather than label so profiles work across
// Xbox- and PlayStation-style pads.
var buttonNames = map[string]ebiten.StandardGamepadButton{
	"right_bottom":       ebiten.StandardGamepadButtonRightBottom, // A / Cross
	"right_right":        ebiten.StandardGamepadButtonRightRight,  // B / Circle
	"right_left":         ebiten.StandardGamepadButtonRightLeft,   // X / Square
	"right_top":          ebiten.StandardGamepadButtonRightTop,    // Y / Triangle
	"left_bottom":        ebiten.StandardGamepadButtonLeftBottom,  // D-pad down
	"left_right":         ebiten.StandardGamepadButtonLeftRight,   // D-pad right
	"left_left":          ebiten.StandardGamepadButtonLeftLeft,    // D-pad left
	"left_top":           ebiten.StandardGamepadButtonLeftTop,     // D-pad up
	"start":              ebiten.StandardGamepadButtonCenterRight,
	"select":             ebiten.StandardGamepadButtonCenterLeft,
	"front_top_left":     ebiten.StandardGamepadButtonFrontTopLeft,
	"front_top_right":    ebiten.StandardGamepadButtonFrontTopRight,
	"front_bottom_left":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"front_bottom_right": ebiten.StandardGamepadButtonFrontBottomRight,
}

var stickNames = map[string]Stick{
	"left":  StickLeft,
	"right": StickRight,
}

var zoneNames = map[string]TouchZone{
	"left_half":  ZoneLeftHalf,
	"right_half": ZoneRightHalf,
	"top_left":   ZoneTopLeft,
	"top_right":  ZoneTopRight,
}

// ParseKey resolves a key name from a profile into an ebiten key.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("config: unknown key %q", name)
	}
	return k, nil
}

// ParseButton resolves a standard gamepad button name.
func ParseButton(name string) (ebiten.StandardGamepadButton, error) {
	b, ok := buttonNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("config: unknown gamepad button %q", name)
	}
	return b, nil
}

// ParseStick resolves an analog stick name.
func ParseStick(name string) (Stick, error) {
	s, ok := stickNames[strings.ToLower(name)]
	if !ok {
		return StickNone, fmt.Errorf("config: unknown stick %q", name)
	}
	return s, nil
}

// ParseZone resolves a touch zone name.
func ParseZone(name string) (TouchZone, error) {
	z, ok := zoneNames[strings.ToLower(name)]
	if !ok {
		return ZoneNone, fmt.Errorf("config: unknown touch zone %q", name)
	}
	return z, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
