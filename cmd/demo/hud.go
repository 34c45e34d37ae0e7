package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/inputkit"
	"github.com/automoto/inputkit/events"
	"github.com/automoto/inputkit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// hud draws the current device category, the live move vector, and one row
// per event kind that lights up when the event fires.
type hud struct {
	core    *inputkit.Core
	move    dmath.Vec2
	flashes [events.KindCount]*gween.Tween
}

func newHUD(core *inputkit.Core) *hud {
	h := &hud{core: core}
	for k := events.Kind(0); k < events.KindCount; k++ {
		k := k
		core.Subscribe(k, func(ev events.Event) {
			h.flashes[k] = gween.New(1, 0.25, 0.6, ease.OutQuad)
			switch k {
			case events.Move, events.MoveStarted:
				h.move = ev.Value
			case events.MoveCanceled:
				h.move = dmath.Vec2{}
			}
		})
	}
	return h
}

func (h *hud) update() {
	for _, tw := range h.flashes {
		if tw != nil {
			tw.Update(frameDelta)
		}
	}
}

func (h *hud) draw(screen *ebiten.Image) {
	titleFace := fonts.UITitle.Get()
	face := fonts.UI.Get()

	category := h.core.CurrentCategory().String()
	text.Draw(screen, fmt.Sprintf("active: %s", category), titleFace, 32, 52, color.White)
	text.Draw(screen, fmt.Sprintf("move: (%+.2f, %+.2f)", h.move.X, h.move.Y), face, 32, 76, color.RGBA{180, 180, 190, 255})

	y := 104
	for k := events.Kind(0); k < events.KindCount; k++ {
		text.Draw(screen, k.String(), face, 32, y, h.rowColor(k))
		y += 18
	}
}

func (h *hud) rowColor(k events.Kind) color.Color {
	brightness := 0.25
	if tw := h.flashes[k]; tw != nil {
		v, _ := tw.Update(0)
		brightness = float64(v)
	}
	c := uint8(255 * brightness)
	return color.RGBA{c, c, c, 255}
}
