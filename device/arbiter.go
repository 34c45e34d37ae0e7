package device

// Priority is the fixed arbitration order. When more than one device reports
// activity in the same tick the highest-priority category wins, so a player
// touching keyboard and gamepad together always lands on the keyboard rather
// than whichever device happened to be polled last.
var Priority = []Category{CategoryKeyboard, CategoryGamepad, CategoryTouch}

// Arbiter selects the single active device category. It is the only writer of
// the current category; everything else reads it through Current.
type Arbiter struct {
	current Category
}

// Current returns the category selected by the most recent Select call.
func (a *Arbiter) Current() Category {
	return a.current
}

// Select re-evaluates the active category from the connected device set. A
// category is considered active if any connected device of that category
// reports an update this tick. No connected devices, or no updates, selects
// CategoryNone; that is a valid steady state, not an error.
//
// The change event that triggered re-evaluation is accepted for observers and
// logging; all change kinds re-evaluate the same way.
func (a *Arbiter) Select(devices []Device, ev ChangeEvent) Category {
	a.current = CategoryNone
	for _, cat := range Priority {
		if updated(devices, cat) {
			a.current = cat
			break
		}
	}
	return a.current
}

func updated(devices []Device, cat Category) bool {
	for _, d := range devices {
		if d.Category == cat && d.UpdatedThisTick {
			return true
		}
	}
	return false
}
