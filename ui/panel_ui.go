package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelUI holds the ebitenui interface for the simulator settings
type PanelUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	volumeLabel *widget.Label
	muteButton  *widget.Button
	scaleLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewPanelUI creates the settings panel for a console scene
func NewPanelUI(e *ecs.ECS) *PanelUI {
	pui := &PanelUI{ecs: e}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PanelUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	pui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (pui *PanelUI) buildUI() {
	// Root container dims the console behind the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	// Volume row
	pui.volumeLabel = pui.valueLabel()
	contentContainer.AddChild(pui.settingRow("Volume:", pui.volumeLabel, "Change", func() {
		systems.StepVolume(pui.ecs)
	}))

	// Window scale row
	pui.scaleLabel = pui.valueLabel()
	contentContainer.AddChild(pui.settingRow("Window:", pui.scaleLabel, "Change", func() {
		systems.StepScale(pui.ecs)
	}))

	pui.muteButton = pui.button("Mute", 120, func() {
		systems.ToggleMute(pui.ecs)
	})
	contentContainer.AddChild(pui.muteButton)

	// Key legend
	for _, id := range []cfg.ActionID{cfg.ActionControl, cfg.ActionPlayer1, cfg.ActionPlayer2} {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(Legend(id, cfg.Input.Bindings[id]), &pui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 180, 255},
			}),
		))
	}

	contentContainer.AddChild(pui.button("Close", 120, func() {
		systems.CloseSettings(pui.ecs)
	}))

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (pui *PanelUI) settingRow(name string, value *widget.Label, action string, onClick func()) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	row.AddChild(value)
	row.AddChild(pui.button(action, 60, onClick))
	return row
}

func (pui *PanelUI) valueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
}

func (pui *PanelUI) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 20)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			pui.UpdateUI()
		}),
	)
}

func (pui *PanelUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect the current settings
func (pui *PanelUI) UpdateUI() {
	s := systems.GetOrCreateSettings(pui.ecs)

	if pui.volumeLabel != nil {
		pui.volumeLabel.Label = fmt.Sprintf("%d%%", int(s.Volume*100+0.5))
	}
	if pui.scaleLabel != nil {
		pui.scaleLabel.Label = fmt.Sprintf("x%g", s.Scale)
	}
	if pui.muteButton != nil {
		if textWidget := pui.muteButton.Text(); textWidget != nil {
			textWidget.Label = MuteLabel(s.Muted)
		}
	}
}

// Update calls the UI's Update method
func (pui *PanelUI) Update() {
	pui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !pui.initialized {
		pui.initialized = true
		pui.UpdateUI()
	}
}

// MuteLabel is the mute button caption for the current state.
func MuteLabel(muted bool) string {
	if muted {
		return "Unmute"
	}
	return "Mute"
}

// Legend describes the keys bound to an action, e.g. "player1: A / ShiftLeft".
func Legend(id cfg.ActionID, b cfg.InputBinding) string {
	names := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		names = append(names, k.String())
	}
	if len(names) == 0 {
		return id.String() + ": unbound"
	}
	return id.String() + ": " + strings.Join(names, " / ")
}
