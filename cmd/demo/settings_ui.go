package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var deadzoneOptions = []float64{0.10, 0.25, 0.40}

// settingsUI is the panel toggled by the Menu action.
type settingsUI struct {
	ui      *ebitenui.UI
	visible bool

	settings SavedSettings
	onApply  func(*SavedSettings)

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func newSettingsUI(deadzone float64, onApply func(*SavedSettings)) *settingsUI {
	ui := &settingsUI{
		settings: SavedSettings{Deadzone: deadzone, Fullscreen: ebiten.IsFullscreen()},
		onApply:  onApply,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.refreshStatus()
	return ui
}

func (ui *settingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *settingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("INPUT SETTINGS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	panel.AddChild(ui.buildDeadzoneRow())

	fullscreenBtn := ui.newButton("Toggle Fullscreen", 160, func() {
		ui.settings.Fullscreen = !ui.settings.Fullscreen
		ui.apply()
	})
	panel.AddChild(fullscreenBtn)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	closeBtn := ui.newButton("Close", 80, func() {
		ui.visible = false
	})
	panel.AddChild(closeBtn)

	rootContainer.AddChild(panel)

	ui.ui = &ebitenui.UI{Container: rootContainer}
}

func (ui *settingsUI) buildDeadzoneRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("Deadzone:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(label)

	for _, option := range deadzoneOptions {
		option := option
		btn := ui.newButton(fmt.Sprintf("%.2f", option), 56, func() {
			ui.settings.Deadzone = option
			ui.apply()
		})
		row.AddChild(btn)
	}

	return row
}

func (ui *settingsUI) newButton(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *settingsUI) apply() {
	if ui.onApply != nil {
		ui.onApply(&ui.settings)
	}
	ui.refreshStatus()
}

func (ui *settingsUI) refreshStatus() {
	if ui.statusLabel == nil {
		return
	}
	mode := "windowed"
	if ui.settings.Fullscreen {
		mode = "fullscreen"
	}
	ui.statusLabel.Label = fmt.Sprintf("deadzone %.2f, %s", ui.settings.Deadzone, mode)
}

func (ui *settingsUI) toggle() {
	ui.visible = !ui.visible
}

func (ui *settingsUI) update() {
	if ui.visible {
		ui.ui.Update()
	}
}

func (ui *settingsUI) draw(screen *ebiten.Image) {
	if ui.visible {
		ui.ui.Draw(screen)
	}
}
