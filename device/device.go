package device

// Category identifies a class of physical input device.
type Category int

const (
	CategoryNone Category = iota
	CategoryKeyboard
	CategoryTouch
	CategoryGamepad
)

func (c Category) String() string {
	switch c {
	case CategoryKeyboard:
		return "keyboard"
	case CategoryTouch:
		return "touch"
	case CategoryGamepad:
		return "gamepad"
	}
	return "none"
}

// Device describes one connected input device as reported by a Source.
type Device struct {
	Category        Category
	DisplayName     string
	UpdatedThisTick bool
}

// ChangeKind classifies a device-change notification.
type ChangeKind int

const (
	DeviceAdded ChangeKind = iota
	DeviceRemoved
	ConfigurationChanged
	ControlSchemeChanged
)

func (k ChangeKind) String() string {
	switch k {
	case DeviceAdded:
		return "added"
	case DeviceRemoved:
		return "removed"
	case ConfigurationChanged:
		return "configuration-changed"
	case ControlSchemeChanged:
		return "control-scheme-changed"
	}
	return "unknown"
}

// ChangeEvent is delivered by a Source when a device connects, disconnects,
// or changes its capability set.
type ChangeEvent struct {
	Device Device
	Kind   ChangeKind
}
