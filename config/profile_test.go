package config

import (
	"strings"
	"testing"

	"github.com/automoto/inputkit/device"
	"github.com/hajimehoshi/ebiten/v2"
)

const sampleProfile = `
name: southpaw
deadzone: 0.3
keyboard:
  move:
    up: [i]
    down: [k]
    left: [j]
    right: [l]
  primary: [space, f]
  menu: [escape]
gamepad:
  move:
    stick: right
  primary: [right_bottom]
  secondary: [right_left]
  menu: [start]
touch:
  move:
    zone: right_half
  primary: left_half
  menu: top_left
`

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}

	if p.Name != "southpaw" {
		t.Errorf("Name = %q, want southpaw", p.Name)
	}
	if p.Deadzone != 0.3 {
		t.Errorf("Deadzone = %v, want 0.3", p.Deadzone)
	}

	kb, ok := p.Maps[device.CategoryKeyboard]
	if !ok {
		t.Fatal("keyboard map missing")
	}
	move, ok := kb.Binding(ActionMove)
	if !ok || move.MoveKeys == nil {
		t.Fatal("keyboard move binding missing")
	}
	if len(move.MoveKeys.Up) != 1 || move.MoveKeys.Up[0] != ebiten.KeyI {
		t.Errorf("move up keys = %v, want [KeyI]", move.MoveKeys.Up)
	}
	primary, ok := kb.Binding(ActionPrimary)
	if !ok || len(primary.Keys) != 2 || primary.Keys[0] != ebiten.KeySpace {
		t.Errorf("primary binding = %+v, want [Space F]", primary)
	}
	if kb.Has(ActionSecondary) {
		t.Error("keyboard secondary should be unbound")
	}

	gp := p.Maps[device.CategoryGamepad]
	gpMove, _ := gp.Binding(ActionMove)
	if gpMove.Stick != StickRight {
		t.Errorf("gamepad stick = %v, want right", gpMove.Stick)
	}
	menu, _ := gp.Binding(ActionMenu)
	if len(menu.Buttons) != 1 || menu.Buttons[0] != ebiten.StandardGamepadButtonCenterRight {
		t.Errorf("gamepad menu = %v, want [CenterRight]", menu.Buttons)
	}

	tc := p.Maps[device.CategoryTouch]
	tcMove, _ := tc.Binding(ActionMove)
	if tcMove.Zone != ZoneRightHalf {
		t.Errorf("touch move zone = %v, want right_half", tcMove.Zone)
	}
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "keyboard:\n  primary: [hyperkey]", "unknown key"},
		{"unknown button", "gamepad:\n  primary: [turbo]", "unknown gamepad button"},
		{"unknown stick", "gamepad:\n  move:\n    stick: middle", "unknown stick"},
		{"unknown zone", "touch:\n  primary: center", "unknown touch zone"},
		{"deadzone out of range", "deadzone: 1.5\nkeyboard:\n  primary: [z]", "out of range"},
		{"no maps", "name: empty", "no action maps"},
		{"bad yaml", "keyboard: [", "parsing profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestParseKeyAliases(t *testing.T) {
	for name, want := range map[string]ebiten.Key{
		"up":      ebiten.KeyArrowUp,
		"arrowup": ebiten.KeyArrowUp,
		"Escape":  ebiten.KeyEscape,
		"a":       ebiten.KeyA,
	} {
		got, err := ParseKey(name)
		if err != nil {
			t.Errorf("ParseKey(%q) error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseKey(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDefaultMapsValidate(t *testing.T) {
	maps := Default()
	if err := maps.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	for _, cat := range []device.Category{device.CategoryKeyboard, device.CategoryGamepad, device.CategoryTouch} {
		if _, ok := maps[cat]; !ok {
			t.Errorf("default maps missing %v", cat)
		}
	}
	// Touch deliberately ships without a secondary action.
	if maps[device.CategoryTouch].Has(ActionSecondary) {
		t.Error("touch map should not bind secondary")
	}
}

func TestValidateRejectsEmptyAndNone(t *testing.T) {
	if err := (Maps{}).Validate(); err == nil {
		t.Error("empty Maps should fail validation")
	}
	m := Maps{device.CategoryNone: {Name: "bogus"}}
	if err := m.Validate(); err == nil {
		t.Error("Maps keyed on CategoryNone should fail validation")
	}
}
