package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	playerSize  = 32
	playerSpeed = 4
	wallSize    = 16
	frameDelta  = 1.0 / 60.0
)

var playerColors = []color.RGBA{
	{90, 170, 255, 255},
	{255, 170, 90, 255},
	{140, 230, 120, 255},
	{230, 120, 200, 255},
}

type playerData struct {
	Object     *resolv.Object
	Vel        dmath.Vec2
	ColorIndex int
}

var playerComponent = donburi.NewComponentType[playerData]()

type pulseData struct {
	X, Y   float64
	Radius *gween.Tween
	Alpha  *gween.Tween
}

var pulseComponent = donburi.NewComponentType[pulseData]()

// playground is the little world the actions drive: one box in a walled
// space, plus expanding pulse rings on the interact actions.
type playground struct {
	world donburi.World
	space *resolv.Space
}

func newPlayground() *playground {
	p := &playground{
		world: donburi.NewWorld(),
		space: resolv.NewSpace(screenWidth, screenHeight, wallSize, wallSize),
	}

	// Border walls.
	for _, r := range [][4]float64{
		{0, 0, screenWidth, wallSize},
		{0, screenHeight - wallSize, screenWidth, wallSize},
		{0, 0, wallSize, screenHeight},
		{screenWidth - wallSize, 0, wallSize, screenHeight},
	} {
		wall := resolv.NewObject(r[0], r[1], r[2], r[3])
		wall.AddTags("solid")
		p.space.Add(wall)
	}

	obj := resolv.NewObject(screenWidth/2-playerSize/2, screenHeight/2-playerSize/2, playerSize, playerSize)
	obj.AddTags("player")
	p.space.Add(obj)

	entry := p.world.Entry(p.world.Create(playerComponent))
	playerComponent.Set(entry, &playerData{Object: obj})

	return p
}

func (p *playground) player() *playerData {
	entry, ok := playerComponent.First(p.world)
	if !ok {
		return nil
	}
	return playerComponent.Get(entry)
}

func (p *playground) setVelocity(v dmath.Vec2) {
	if player := p.player(); player != nil {
		player.Vel = v
	}
}

func (p *playground) stop() {
	if player := p.player(); player != nil {
		player.Vel = dmath.Vec2{}
	}
}

// pulse spawns an expanding ring at the player's center.
func (p *playground) pulse() {
	player := p.player()
	if player == nil {
		return
	}
	entry := p.world.Entry(p.world.Create(pulseComponent))
	pulseComponent.Set(entry, &pulseData{
		X:      player.Object.X + playerSize/2,
		Y:      player.Object.Y + playerSize/2,
		Radius: gween.New(playerSize/2, 90, 0.5, ease.OutQuad),
		Alpha:  gween.New(1, 0, 0.5, ease.Linear),
	})
}

func (p *playground) cycleColor() {
	if player := p.player(); player != nil {
		player.ColorIndex = (player.ColorIndex + 1) % len(playerColors)
	}
}

func (p *playground) update() {
	p.movePlayer()
	p.updatePulses()
}

func (p *playground) movePlayer() {
	player := p.player()
	if player == nil {
		return
	}
	obj := player.Object

	dx := player.Vel.X * playerSpeed
	if check := obj.Check(dx, 0, "solid"); check != nil {
		if solids := check.ObjectsByTags("solid"); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
		}
	}
	obj.X += dx

	dy := player.Vel.Y * playerSpeed
	if check := obj.Check(0, dy, "solid"); check != nil {
		if solids := check.ObjectsByTags("solid"); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
		}
	}
	obj.Y += dy

	obj.Update()
}

func (p *playground) updatePulses() {
	var done []*donburi.Entry
	pulseComponent.Each(p.world, func(entry *donburi.Entry) {
		pulse := pulseComponent.Get(entry)
		_, finished := pulse.Radius.Update(frameDelta)
		pulse.Alpha.Update(frameDelta)
		if finished {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		p.world.Remove(entry.Entity())
	}
}

func (p *playground) draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 26, 34, 255})

	// Walls (dark gray)
	wallColor := color.RGBA{60, 60, 72, 255}
	vector.DrawFilledRect(screen, 0, 0, screenWidth, wallSize, wallColor, false)
	vector.DrawFilledRect(screen, 0, screenHeight-wallSize, screenWidth, wallSize, wallColor, false)
	vector.DrawFilledRect(screen, 0, 0, wallSize, screenHeight, wallColor, false)
	vector.DrawFilledRect(screen, screenWidth-wallSize, 0, wallSize, screenHeight, wallColor, false)

	pulseComponent.Each(p.world, func(entry *donburi.Entry) {
		pulse := pulseComponent.Get(entry)
		r, _ := pulse.Radius.Update(0)
		a, _ := pulse.Alpha.Update(0)
		ringColor := color.RGBA{200, 220, 255, uint8(a * 255)}
		vector.StrokeCircle(screen, float32(pulse.X), float32(pulse.Y), r, 3, ringColor, true)
	})

	if player := p.player(); player != nil {
		obj := player.Object
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			playerSize, playerSize,
			playerColors[player.ColorIndex], false)
	}
}
