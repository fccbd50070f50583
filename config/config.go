package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer of the console scene.
const Default ecs.LayerID = 0

// Config holds general window and runtime configuration
type Config struct {
	Title    string
	Width    int
	Height   int
	Scale    float64 // Window size multiplier
	LogLevel string  // zerolog level name
}

// LCDConfig describes how the 16x2 character display is drawn
type LCDConfig struct {
	X, Y        float64 // Top-left corner of the glass
	CellWidth   float64
	CellHeight  float64
	CellGap     float64
	Padding     float64
	FontSize    float64
	Backlight   color.RGBA
	CellColor   color.RGBA // Unlit pixel block behind each character
	TextColor   color.RGBA
	BezelColor  color.RGBA
	BezelMargin float64
}

// ButtonConfig places one console button
type ButtonConfig struct {
	Action ActionID
	Label  string
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// PanelConfig describes the console body and its controls
type PanelConfig struct {
	BodyColor    color.RGBA
	Buttons      []ButtonConfig
	LEDX, LEDY   float64 // Buzzer indicator
	LEDRadius    float64
	LEDOffColor  color.RGBA
	LEDOnColor   color.RGBA
	GlowColor    color.RGBA
	GlowDuration float32 // Seconds for a press glow to fade
	LEDDuration  float32 // Minimum seconds the buzzer LED stays lit
	HUDColor     color.RGBA
	HUDY         float64
}

// Global configuration instances
var C *Config
var LCD LCDConfig
var Panel PanelConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Green     = color.RGBA{R: 40, G: 200, B: 60, A: 255}
	Blue      = color.RGBA{R: 40, G: 90, B: 220, A: 255}
	Gray      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	LCDGreen  = color.RGBA{R: 120, G: 170, B: 40, A: 255}
	LCDDark   = color.RGBA{R: 20, G: 40, B: 10, A: 255}
	LCDCell   = color.RGBA{R: 110, G: 158, B: 36, A: 255}
	BezelGray = color.RGBA{R: 35, G: 35, B: 40, A: 255}
)

func init() {
	C = &Config{
		Title:    "REFLEXO",
		Width:    480,
		Height:   270,
		Scale:    2,
		LogLevel: "info",
	}

	LCD = LCDConfig{
		X:           64,
		Y:           40,
		CellWidth:   20,
		CellHeight:  32,
		CellGap:     2,
		Padding:     8,
		FontSize:    22,
		Backlight:   LCDGreen,
		CellColor:   LCDCell,
		TextColor:   LCDDark,
		BezelColor:  BezelGray,
		BezelMargin: 10,
	}

	Panel = PanelConfig{
		BodyColor: color.RGBA{R: 60, G: 62, B: 70, A: 255},
		Buttons: []ButtonConfig{
			{Action: ActionPlayer1, Label: "J1", X: 100, Y: 190, Radius: 24, Color: Red},
			{Action: ActionControl, Label: "OK", X: 240, Y: 190, Radius: 18, Color: Gray},
			{Action: ActionPlayer2, Label: "J2", X: 380, Y: 190, Radius: 24, Color: Blue},
		},
		LEDX:         440,
		LEDY:         24,
		LEDRadius:    7,
		LEDOffColor:  color.RGBA{R: 70, G: 20, B: 20, A: 255},
		LEDOnColor:   color.RGBA{R: 255, G: 60, B: 40, A: 255},
		GlowColor:    White,
		GlowDuration: 0.25,
		LEDDuration:  0.08,
		HUDColor:     color.RGBA{R: 200, G: 200, B: 210, A: 255},
		HUDY:         258,
	}
}
