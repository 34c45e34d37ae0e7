package device

import "testing"

func TestSelectPrefersKeyboardOverGamepad(t *testing.T) {
	a := &Arbiter{}
	devices := []Device{
		{Category: CategoryGamepad, DisplayName: "Xbox Controller", UpdatedThisTick: true},
		{Category: CategoryKeyboard, DisplayName: "Keyboard", UpdatedThisTick: true},
	}

	got := a.Select(devices, ChangeEvent{Kind: ConfigurationChanged})
	if got != CategoryKeyboard {
		t.Errorf("Select() = %v, want keyboard", got)
	}
	if a.Current() != CategoryKeyboard {
		t.Errorf("Current() = %v, want keyboard", a.Current())
	}
}

func TestSelectPrefersGamepadOverTouch(t *testing.T) {
	a := &Arbiter{}
	devices := []Device{
		{Category: CategoryTouch, UpdatedThisTick: true},
		{Category: CategoryGamepad, UpdatedThisTick: true},
	}

	if got := a.Select(devices, ChangeEvent{}); got != CategoryGamepad {
		t.Errorf("Select() = %v, want gamepad", got)
	}
}

func TestSelectIgnoresIdleDevices(t *testing.T) {
	a := &Arbiter{}
	devices := []Device{
		{Category: CategoryKeyboard, UpdatedThisTick: false},
		{Category: CategoryGamepad, UpdatedThisTick: true},
	}

	if got := a.Select(devices, ChangeEvent{}); got != CategoryGamepad {
		t.Errorf("Select() = %v, want gamepad", got)
	}
}

func TestSelectNoDevices(t *testing.T) {
	a := &Arbiter{}
	if got := a.Select(nil, ChangeEvent{}); got != CategoryNone {
		t.Errorf("Select(nil) = %v, want none", got)
	}
}

func TestSelectNoUpdates(t *testing.T) {
	a := &Arbiter{}
	devices := []Device{
		{Category: CategoryKeyboard},
		{Category: CategoryGamepad},
		{Category: CategoryTouch},
	}

	if got := a.Select(devices, ChangeEvent{}); got != CategoryNone {
		t.Errorf("Select() = %v, want none", got)
	}
}

func TestSelectAnyDeviceOfCategoryCounts(t *testing.T) {
	// A second gamepad is as good as the first.
	a := &Arbiter{}
	devices := []Device{
		{Category: CategoryGamepad, DisplayName: "Pad 1", UpdatedThisTick: false},
		{Category: CategoryGamepad, DisplayName: "Pad 2", UpdatedThisTick: true},
	}

	if got := a.Select(devices, ChangeEvent{}); got != CategoryGamepad {
		t.Errorf("Select() = %v, want gamepad", got)
	}
}

func TestSelectAfterRemoval(t *testing.T) {
	a := &Arbiter{}
	a.Select([]Device{{Category: CategoryGamepad, UpdatedThisTick: true}}, ChangeEvent{Kind: DeviceAdded})

	// Gamepad unplugged; the touch screen is still being used.
	devices := []Device{{Category: CategoryTouch, UpdatedThisTick: true}}
	ev := ChangeEvent{Device: Device{Category: CategoryGamepad}, Kind: DeviceRemoved}

	if got := a.Select(devices, ev); got != CategoryTouch {
		t.Errorf("Select() after removal = %v, want touch", got)
	}
}
