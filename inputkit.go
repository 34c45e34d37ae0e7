// Package inputkit arbitrates between physical input devices and routes raw
// input samples into semantic action events.
//
// A Core is driven by its host once per polling cycle (typically once per
// frame): the host calls Tick, the core applies any queued device changes,
// samples the four logical actions against the active map, and fires events
// to subscribers. Device-change notifications arriving between or during
// ticks are queued and applied atomically at the next Tick boundary, so no
// tick ever evaluates half its actions against an old map.
//
// The core is single-threaded by design: it performs no I/O, never blocks,
// and does no internal locking. A multi-threaded host must serialize all
// calls into the core.
package inputkit

import (
	"log"

	"github.com/automoto/inputkit/config"
	"github.com/automoto/inputkit/device"
	"github.com/automoto/inputkit/events"
	"github.com/automoto/inputkit/router"
	dmath "github.com/yohamta/donburi/features/math"
)

// Source is the external collaborator that owns the physical devices. The
// ebitensource package provides the ebiten-backed implementation; tests
// substitute their own.
//
// AxisValue and ButtonValue resolve an action against the given category's
// bindings and return the zero value for actions that category does not bind.
type Source interface {
	// ConnectedDevices reports the currently connected devices with their
	// per-tick update flags, in a stable order.
	ConnectedDevices() []device.Device

	// OnDeviceChange registers fn to be called when a device connects,
	// disconnects, or changes its capability or control scheme.
	OnDeviceChange(fn func(device.ChangeEvent))

	// AxisValue samples a 2D vector action.
	AxisValue(cat device.Category, id config.ActionID) dmath.Vec2

	// ButtonValue samples a boolean action.
	ButtonValue(cat device.Category, id config.ActionID) bool
}

// Core owns the arbiter, the router and the subscription registry. Construct
// with New, drive with Tick, tear down with Shutdown.
type Core struct {
	src     Source
	maps    config.Maps
	arbiter device.Arbiter
	router  *router.Router
	bus     *events.Dispatcher
	pending []device.ChangeEvent
	closed  bool
}

// New wires a core to its input source. Configuration errors are the only
// failures the core ever surfaces; they indicate a misconfigured host and
// fail here, loudly, rather than degrading at runtime.
func New(src Source, maps config.Maps) (*Core, error) {
	if err := maps.Validate(); err != nil {
		return nil, err
	}

	c := &Core{
		src:  src,
		maps: maps,
		bus:  events.NewDispatcher(),
	}
	c.router = router.New(c.bus)
	src.OnDeviceChange(c.queueChange)
	return c, nil
}

// queueChange defers a device change to the next Tick boundary. Notifications
// may arrive mid-tick (the source's callbacks are synchronous); mutating the
// active map there would evaluate half the actions against the old map.
func (c *Core) queueChange(ev device.ChangeEvent) {
	c.pending = append(c.pending, ev)
}

// CurrentCategory returns the active device category, CategoryNone when no
// device is active.
func (c *Core) CurrentCategory() device.Category {
	return c.arbiter.Current()
}

// Subscribe registers fn for an event kind. Invocation order within a kind
// follows registration order. Returns an inert handle after Shutdown.
func (c *Core) Subscribe(kind events.Kind, fn events.HandlerFunc) events.Handle {
	if c.closed {
		return events.Handle{}
	}
	return c.bus.Subscribe(kind, fn)
}

// Unsubscribe removes a subscription. Safe to call from within the handler's
// own invocation.
func (c *Core) Unsubscribe(h events.Handle) {
	c.bus.Unsubscribe(h)
}

// Tick advances the core by one step: queued device changes are applied
// first, then the four actions are sampled and their events fired in-line.
// Call exactly once per external polling cycle. After Shutdown, Tick is a
// no-op.
func (c *Core) Tick() {
	if c.closed {
		return
	}

	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil
		for _, ev := range pending {
			c.applyChange(ev)
		}
	}

	if !c.router.Enabled() {
		return
	}

	cat := c.arbiter.Current()
	c.router.Tick(router.Sample{
		Move:      c.src.AxisValue(cat, config.ActionMove),
		Primary:   c.src.ButtonValue(cat, config.ActionPrimary),
		Secondary: c.src.ButtonValue(cat, config.ActionSecondary),
		Menu:      c.src.ButtonValue(cat, config.ActionMenu),
	})
}

// applyChange re-runs arbitration and, on a category change, swaps the active
// map. An unregistered category disables the router until the next change;
// that is a host configuration gap worth a warning, not a failure.
func (c *Core) applyChange(ev device.ChangeEvent) {
	prev := c.arbiter.Current()
	cat := c.arbiter.Select(c.src.ConnectedDevices(), ev)
	if cat == prev {
		return
	}

	if cat == device.CategoryNone {
		c.router.Disable()
		return
	}

	m, ok := c.maps[cat]
	if !ok {
		log.Printf("inputkit: no action map registered for %v device, input disabled", cat)
		c.router.Disable()
		return
	}
	c.router.Switch(cat, m, true)
}

// Shutdown forcibly unsubscribes every listener and disables the router.
// Subsequent Ticks are no-ops. Idempotent.
func (c *Core) Shutdown() {
	if c.closed {
		return
	}
	c.closed = true
	c.bus.Reset()
	c.router.Disable()
}

// defaultCore supports hosts that want static-style access to their one core
// instance. It is an explicit accessor over a host-owned Core, never an
// implicitly constructed one.
var defaultCore *Core

// SetDefault installs the process-wide default core.
func SetDefault(c *Core) {
	defaultCore = c
}

// Default returns the core installed with SetDefault, or nil.
func Default() *Core {
	return defaultCore
}
