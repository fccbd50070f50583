package components

import (
	cfg "github.com/automoto/reflexo/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ButtonData is a console push button
type ButtonData struct {
	Config  cfg.ButtonConfig
	Pressed bool         // Held this frame, from any device
	Glow    float32      // 0 = dark, 1 = fully lit
	Fade    *gween.Tween // Running glow fade, nil when idle
}

var Button = donburi.NewComponentType[ButtonData]()

// IndicatorData is the buzzer LED
type IndicatorData struct {
	Level     float32 // 0 = off, 1 = fully lit
	Fade      *gween.Tween
	ToneCount int // Last AudioData.ToneCount seen
}

var Indicator = donburi.NewComponentType[IndicatorData]()
