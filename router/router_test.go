package router

import (
	"testing"

	"github.com/automoto/inputkit/config"
	"github.com/automoto/inputkit/device"
	"github.com/automoto/inputkit/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// recorder subscribes to every kind and keeps the events in arrival order.
type recorder struct {
	log []events.Event
}

func newRecorder(bus *events.Dispatcher) *recorder {
	rec := &recorder{}
	for k := events.Kind(0); k < events.KindCount; k++ {
		bus.Subscribe(k, func(ev events.Event) {
			rec.log = append(rec.log, ev)
		})
	}
	return rec
}

func (rec *recorder) kinds() []events.Kind {
	out := make([]events.Kind, len(rec.log))
	for i, ev := range rec.log {
		out[i] = ev.Kind
	}
	return out
}

func (rec *recorder) count(k events.Kind) int {
	n := 0
	for _, ev := range rec.log {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

func (rec *recorder) clear() {
	rec.log = nil
}

func keyboardRouter(t *testing.T) (*Router, *recorder) {
	t.Helper()
	bus := events.NewDispatcher()
	rec := newRecorder(bus)
	r := New(bus)
	r.Switch(device.CategoryKeyboard, config.Default()[device.CategoryKeyboard], true)
	return r, rec
}

func kindsEqual(a, b []events.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMoveStartStreamCancel(t *testing.T) {
	r, rec := keyboardRouter(t)
	v := dmath.Vec2{X: 1}

	// First nonzero sample: exactly one Started followed by one Move.
	r.Tick(Sample{Move: v})
	want := []events.Kind{events.MoveStarted, events.Move}
	if !kindsEqual(rec.kinds(), want) {
		t.Fatalf("first active tick fired %v, want %v", rec.kinds(), want)
	}
	if rec.log[0].Value != v || rec.log[1].Value != v {
		t.Errorf("events carried %v and %v, want %v", rec.log[0].Value, rec.log[1].Value, v)
	}

	// Held for three more ticks: three more Move events, no extra Started.
	rec.clear()
	for i := 0; i < 3; i++ {
		r.Tick(Sample{Move: v})
	}
	if rec.count(events.Move) != 3 || rec.count(events.MoveStarted) != 0 {
		t.Errorf("held ticks fired %v, want Move x3", rec.kinds())
	}

	// Back to zero: one Canceled and silence afterwards.
	rec.clear()
	r.Tick(Sample{})
	r.Tick(Sample{})
	if !kindsEqual(rec.kinds(), []events.Kind{events.MoveCanceled}) {
		t.Errorf("release fired %v, want exactly one MoveCanceled", rec.kinds())
	}
}

func TestMoveValueTracksSample(t *testing.T) {
	r, rec := keyboardRouter(t)

	r.Tick(Sample{Move: dmath.Vec2{X: 1}})
	r.Tick(Sample{Move: dmath.Vec2{X: 0, Y: -1}})

	last := rec.log[len(rec.log)-1]
	if last.Kind != events.Move || last.Value != (dmath.Vec2{Y: -1}) {
		t.Errorf("last event = %+v, want Move with (0,-1)", last)
	}
}

func TestButtonEdges(t *testing.T) {
	r, rec := keyboardRouter(t)

	// false -> true held for many ticks -> false: one Interact, one Canceled.
	r.Tick(Sample{Primary: true})
	r.Tick(Sample{Primary: true})
	r.Tick(Sample{Primary: true})
	r.Tick(Sample{})

	want := []events.Kind{events.PrimaryInteract, events.PrimaryCanceled}
	if !kindsEqual(rec.kinds(), want) {
		t.Errorf("fired %v, want %v", rec.kinds(), want)
	}
}

func TestSecondaryIndependentOfPrimary(t *testing.T) {
	r, rec := keyboardRouter(t)

	r.Tick(Sample{Primary: true, Secondary: true})
	r.Tick(Sample{Secondary: true})

	if rec.count(events.SecondaryInteract) != 1 || rec.count(events.SecondaryCanceled) != 0 {
		t.Errorf("secondary fired %v", rec.kinds())
	}
	if rec.count(events.PrimaryCanceled) != 1 {
		t.Errorf("primary canceled count = %d, want 1", rec.count(events.PrimaryCanceled))
	}
}

func TestMenuFiresOncePerPressAndNeverCancels(t *testing.T) {
	r, rec := keyboardRouter(t)

	r.Tick(Sample{Menu: true})
	r.Tick(Sample{Menu: true})
	r.Tick(Sample{})
	r.Tick(Sample{Menu: true})

	if rec.count(events.Menu) != 2 {
		t.Errorf("menu fired %d times, want 2", rec.count(events.Menu))
	}
	for _, ev := range rec.log {
		if ev.Kind != events.Menu {
			t.Errorf("unexpected event %v", ev.Kind)
		}
	}
}

func TestStartCancelStrictlyAlternate(t *testing.T) {
	r, rec := keyboardRouter(t)
	active := []bool{true, true, false, true, false, false, true, true, true, false}

	for _, a := range active {
		s := Sample{}
		if a {
			s.Move = dmath.Vec2{X: 0.5, Y: 0.5}
		}
		r.Tick(s)
	}

	expect := events.MoveStarted
	for _, ev := range rec.log {
		if ev.Kind == events.Move {
			continue
		}
		if ev.Kind != expect {
			t.Fatalf("saw %v while expecting %v: %v", ev.Kind, expect, rec.kinds())
		}
		if expect == events.MoveStarted {
			expect = events.MoveCanceled
		} else {
			expect = events.MoveStarted
		}
	}
}

func TestSwitchResetsHeldState(t *testing.T) {
	bus := events.NewDispatcher()
	rec := newRecorder(bus)
	r := New(bus)
	maps := config.Default()

	r.Switch(device.CategoryKeyboard, maps[device.CategoryKeyboard], true)
	r.Tick(Sample{Move: dmath.Vec2{X: 1}, Primary: true})
	rec.clear()

	// Device change: all held state must be discarded before the first
	// evaluation against the new map.
	r.Switch(device.CategoryGamepad, maps[device.CategoryGamepad], true)

	// An idle first tick on the new map fires nothing, in particular no stale
	// Canceled from the keyboard-held state.
	r.Tick(Sample{})
	if len(rec.log) != 0 {
		t.Fatalf("idle tick after switch fired %v", rec.kinds())
	}

	// An active first tick re-starts from scratch.
	r.Tick(Sample{Move: dmath.Vec2{X: -1}})
	if rec.count(events.MoveStarted) != 1 {
		t.Errorf("move did not restart after switch: %v", rec.kinds())
	}
}

func TestUnboundActionNeverFires(t *testing.T) {
	bus := events.NewDispatcher()
	rec := newRecorder(bus)
	r := New(bus)

	// Touch map has no secondary binding.
	r.Switch(device.CategoryTouch, config.Default()[device.CategoryTouch], true)
	r.Tick(Sample{Secondary: true})
	r.Tick(Sample{})

	if rec.count(events.SecondaryInteract) != 0 || rec.count(events.SecondaryCanceled) != 0 {
		t.Errorf("unbound secondary fired: %v", rec.kinds())
	}
}

func TestDisabledRouterIsInert(t *testing.T) {
	bus := events.NewDispatcher()
	rec := newRecorder(bus)
	r := New(bus)

	// No map registered for the category.
	r.Switch(device.CategoryGamepad, config.ActionMap{}, false)
	if r.Enabled() {
		t.Fatal("router should be disabled")
	}

	r.Tick(Sample{Move: dmath.Vec2{X: 1}, Primary: true, Menu: true})
	if len(rec.log) != 0 {
		t.Errorf("disabled router fired %v", rec.kinds())
	}

	// Recoverable: the next successful switch brings it back.
	r.Switch(device.CategoryKeyboard, config.Default()[device.CategoryKeyboard], true)
	r.Tick(Sample{Primary: true})
	if rec.count(events.PrimaryInteract) != 1 {
		t.Errorf("router did not recover after re-switch: %v", rec.kinds())
	}
}

func TestTickOrderWithinOneTick(t *testing.T) {
	r, rec := keyboardRouter(t)

	r.Tick(Sample{Move: dmath.Vec2{X: 1}, Primary: true, Secondary: true, Menu: true})

	want := []events.Kind{
		events.MoveStarted, events.Move,
		events.PrimaryInteract,
		events.SecondaryInteract,
		events.Menu,
	}
	if !kindsEqual(rec.kinds(), want) {
		t.Errorf("tick fired %v, want %v", rec.kinds(), want)
	}
}
