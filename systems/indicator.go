package systems

import (
	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIndicators fades the buzzer LED and the button glows.
// Must run AFTER UpdateConsole so tones from this tick light the LED.
func UpdateIndicators(e *ecs.ECS) {
	updateIndicators(e, float32(1/float64(ebiten.TPS())))
}

func updateIndicators(e *ecs.ECS, dt float32) {
	audio := GetOrCreateAudio(e)

	components.Indicator.Each(e.World, func(entry *donburi.Entry) {
		led := components.Indicator.Get(entry)
		if led.ToneCount != audio.ToneCount {
			led.ToneCount = audio.ToneCount
			// Stay lit for the tone, but long enough to be seen.
			d := float32(audio.LastTone.Duration.Seconds())
			if d < cfg.Panel.LEDDuration {
				d = cfg.Panel.LEDDuration
			}
			led.Level = 1
			led.Fade = gween.New(1, 0, d, ease.InExpo)
			return
		}
		led.Level, led.Fade = step(led.Fade, led.Level, dt)
	})

	components.Button.Each(e.World, func(entry *donburi.Entry) {
		b := components.Button.Get(entry)
		if b.Pressed {
			b.Glow = 1
			b.Fade = nil
			return
		}
		if b.Glow > 0 && b.Fade == nil {
			b.Fade = gween.New(b.Glow, 0, cfg.Panel.GlowDuration, ease.OutQuad)
		}
		b.Glow, b.Fade = step(b.Fade, b.Glow, dt)
	})
}

// step advances a fade and drops it once finished.
func step(tw *gween.Tween, level, dt float32) (float32, *gween.Tween) {
	if tw == nil {
		return level, nil
	}
	v, done := tw.Update(dt)
	if done {
		return 0, nil
	}
	return v, tw
}
