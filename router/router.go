// Package router turns raw per-tick samples into semantic action events.
//
// One Router instance is driven by the owning core: Switch whenever the
// active device category changes, Tick once per polling cycle. All calls must
// come from a single goroutine.
package router

import (
	"github.com/automoto/inputkit/config"
	"github.com/automoto/inputkit/device"
	"github.com/automoto/inputkit/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// Sample holds one tick's raw values for the four logical actions, resolved
// against the active map by the input source.
type Sample struct {
	Move      dmath.Vec2
	Primary   bool
	Secondary bool
	Menu      bool
}

// actionState is the per-action runtime record. value and held are only
// meaningful for the move action.
type actionState struct {
	value     dmath.Vec2
	held      bool
	wasActive bool
}

// Router evaluates the edge-detection state machine for each logical action
// and publishes the resulting events.
type Router struct {
	bus      *events.Dispatcher
	category device.Category
	bound    [config.ActionCount]bool
	states   [config.ActionCount]actionState
	enabled  bool
}

func New(bus *events.Dispatcher) *Router {
	return &Router{bus: bus}
}

// Enabled reports whether a map is live. While disabled all actions are inert
// and Tick publishes nothing.
func (r *Router) Enabled() bool {
	return r.enabled
}

// Switch makes the map for cat the active one. Binding presence is resolved
// here, once, rather than on every tick. All action state is discarded before
// anything is evaluated against the new map, so held state never leaks across
// a device change.
//
// registered == false puts the router into a disabled state until the next
// successful Switch. That is recoverable, not fatal.
func (r *Router) Switch(cat device.Category, m config.ActionMap, registered bool) {
	r.states = [config.ActionCount]actionState{}
	r.category = cat
	r.enabled = registered
	for id := config.ActionID(0); id < config.ActionCount; id++ {
		r.bound[id] = registered && m.Has(id)
	}
}

// Disable drops the active map and silences the router. Used at shutdown and
// when the active category has no registered map.
func (r *Router) Disable() {
	r.Switch(device.CategoryNone, config.ActionMap{}, false)
}

// Tick advances every action by one step and fires events in a fixed order:
// the move family first, then primary, secondary, menu. Listeners observing
// several kinds within one tick can rely on that relative order.
func (r *Router) Tick(s Sample) {
	if !r.enabled {
		return
	}
	r.tickMove(s.Move)
	r.tickButton(config.ActionPrimary, s.Primary, events.PrimaryInteract, events.PrimaryCanceled)
	r.tickButton(config.ActionSecondary, s.Secondary, events.SecondaryInteract, events.SecondaryCanceled)
	r.tickMenu(s.Menu)
}

// tickMove handles the one streaming action: Started fires once on the rising
// edge, Move fires on every tick the vector is nonzero (including the first),
// Canceled fires once on the falling edge.
func (r *Router) tickMove(v dmath.Vec2) {
	if !r.bound[config.ActionMove] {
		return
	}
	st := &r.states[config.ActionMove]
	active := v.X != 0 || v.Y != 0

	switch {
	case active && !st.wasActive:
		st.wasActive = true
		st.held = true
		st.value = v
		r.bus.Publish(events.MoveStarted, events.Event{Kind: events.MoveStarted, Value: v})
		r.bus.Publish(events.Move, events.Event{Kind: events.Move, Value: v})
	case active:
		st.value = v
		r.bus.Publish(events.Move, events.Event{Kind: events.Move, Value: v})
	case st.wasActive:
		st.wasActive = false
		st.held = false
		st.value = dmath.Vec2{}
		r.bus.Publish(events.MoveCanceled, events.Event{Kind: events.MoveCanceled})
	}
}

// tickButton handles a boolean trigger: one event per rising edge, one per
// falling edge, nothing while held.
func (r *Router) tickButton(id config.ActionID, pressed bool, started, canceled events.Kind) {
	if !r.bound[id] {
		return
	}
	st := &r.states[id]

	switch {
	case pressed && !st.wasActive:
		st.wasActive = true
		r.bus.Publish(started, events.Event{Kind: started})
	case !pressed && st.wasActive:
		st.wasActive = false
		r.bus.Publish(canceled, events.Event{Kind: canceled})
	}
}

// tickMenu is fire-once-per-press: only the rising edge is observable, there
// is no release event.
func (r *Router) tickMenu(pressed bool) {
	if !r.bound[config.ActionMenu] {
		return
	}
	st := &r.states[config.ActionMenu]

	if pressed && !st.wasActive {
		st.wasActive = true
		r.bus.Publish(events.Menu, events.Event{Kind: events.Menu})
	} else if !pressed {
		st.wasActive = false
	}
}
