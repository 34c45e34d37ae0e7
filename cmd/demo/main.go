// Command demo is an interactive probe for the input core: it moves a box
// with the Move action, spawns pulses on the interact actions, and shows
// which device category currently owns the input. The Menu action (Escape,
// Start, or a tap in the top-right corner) opens a settings panel.
package main

import (
	"flag"
	"log"

	"github.com/automoto/inputkit"
	"github.com/automoto/inputkit/config"
	"github.com/automoto/inputkit/ebitensource"
	"github.com/automoto/inputkit/events"
	"github.com/automoto/inputkit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

type Game struct {
	source     *ebitensource.Source
	core       *inputkit.Core
	playground *playground
	hud        *hud
	settings   *settingsUI
}

func NewGame(profilePath string) (*Game, error) {
	fonts.LoadFont(fonts.UI, goregular.TTF)
	fonts.LoadFontWithSize(fonts.UITitle, goregular.TTF, 24)
	fonts.LoadFontWithSize(fonts.UISmall, goregular.TTF, 10)

	maps := config.Default()
	deadzone := config.DefaultDeadzone
	if profilePath != "" {
		profile, err := config.LoadProfile(profilePath)
		if err != nil {
			return nil, err
		}
		maps = profile.Maps
		deadzone = profile.Deadzone
		log.Printf("loaded binding profile %q", profile.Name)
	}

	saved := LoadSettings()
	if saved != nil {
		deadzone = saved.Deadzone
		ebiten.SetFullscreen(saved.Fullscreen)
	}

	source := ebitensource.New(ebitensource.Config{
		Maps:         maps,
		Deadzone:     deadzone,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})
	core, err := inputkit.New(source, maps)
	if err != nil {
		return nil, err
	}
	inputkit.SetDefault(core)

	g := &Game{
		source:     source,
		core:       core,
		playground: newPlayground(),
		hud:        newHUD(core),
	}
	g.settings = newSettingsUI(deadzone, func(s *SavedSettings) {
		source.SetDeadzone(s.Deadzone)
		ebiten.SetFullscreen(s.Fullscreen)
		SaveSettings(s)
	})

	core.Subscribe(events.MoveStarted, func(ev events.Event) { g.playground.setVelocity(ev.Value) })
	core.Subscribe(events.Move, func(ev events.Event) { g.playground.setVelocity(ev.Value) })
	core.Subscribe(events.MoveCanceled, func(events.Event) { g.playground.stop() })
	core.Subscribe(events.PrimaryInteract, func(events.Event) { g.playground.pulse() })
	core.Subscribe(events.SecondaryInteract, func(events.Event) { g.playground.cycleColor() })
	core.Subscribe(events.Menu, func(events.Event) { g.settings.toggle() })

	return g, nil
}

func (g *Game) Update() error {
	g.source.Poll()
	g.core.Tick()
	g.playground.update()
	g.hud.update()
	g.settings.update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.playground.draw(screen)
	g.hud.draw(screen)
	g.settings.draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.source.SetScreenSize(screenWidth, screenHeight)
	return screenWidth, screenHeight
}

func main() {
	profilePath := flag.String("profile", "", "path to a YAML binding profile")
	flag.Parse()

	if err := InitPersistence(); err != nil {
		log.Printf("Warning: settings will not persist: %v", err)
	}

	game, err := NewGame(*profilePath)
	if err != nil {
		log.Fatalf("Failed to set up input core: %v", err)
	}
	defer game.core.Shutdown()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("inputkit demo")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
