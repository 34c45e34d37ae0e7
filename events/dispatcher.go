package events

// HandlerFunc is a listener callback. Handlers run synchronously on the
// publishing goroutine; long work belongs elsewhere.
type HandlerFunc func(ev Event)

// Handle identifies one subscription so it can be removed later. The zero
// Handle is inert and safe to pass to Unsubscribe.
type Handle struct {
	kind Kind
	id   uint64
}

type subscription struct {
	id uint64
	fn HandlerFunc
}

// Dispatcher maps event kinds to ordered listener lists. Listeners are
// invoked in registration order. Publish iterates over a snapshot of the
// list, so a handler may unsubscribe itself or any other handler mid-dispatch
// without skipping or double-invoking the rest of the pass.
//
// Dispatcher is not safe for concurrent use; the core's single-threaded
// precondition covers it.
type Dispatcher struct {
	subs   [KindCount][]subscription
	nextID uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{nextID: 1}
}

// Subscribe registers fn for the given kind and returns its handle.
func (d *Dispatcher) Subscribe(kind Kind, fn HandlerFunc) Handle {
	if kind < 0 || kind >= KindCount || fn == nil {
		return Handle{}
	}
	id := d.nextID
	d.nextID++
	d.subs[kind] = append(d.subs[kind], subscription{id: id, fn: fn})
	return Handle{kind: kind, id: id}
}

// Unsubscribe removes the subscription identified by h. Removing a handle
// that was never registered, or was already removed, is a no-op.
func (d *Dispatcher) Unsubscribe(h Handle) {
	if h.id == 0 {
		return
	}
	subs := d.subs[h.kind]
	for i, s := range subs {
		if s.id == h.id {
			d.subs[h.kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every listener registered for kind, in registration
// order, over a snapshot taken at the start of the pass.
func (d *Dispatcher) Publish(kind Kind, ev Event) {
	subs := d.subs[kind]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(ev)
	}
}

// Reset forcibly unsubscribes every listener. Used at shutdown so no dangling
// callback can fire after teardown.
func (d *Dispatcher) Reset() {
	for k := range d.subs {
		d.subs[k] = nil
	}
}

// Len reports the number of live subscriptions for a kind.
func (d *Dispatcher) Len(kind Kind) int {
	if kind < 0 || kind >= KindCount {
		return 0
	}
	return len(d.subs[kind])
}
