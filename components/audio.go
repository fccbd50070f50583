package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// Tone is a buzzer request waiting to be played
type Tone struct {
	FreqHz   int
	Duration time.Duration
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Volume       float64 // 0.0 - 1.0
	Muted        bool
	PendingTones []Tone
	LastTone     Tone // Most recent tone, for the buzzer indicator
	ToneCount    int  // Tones requested since the scene started
}

// Tone queues a tone. AudioData is the console's buzzer.
func (a *AudioData) Tone(freqHz int, d time.Duration) {
	t := Tone{FreqHz: freqHz, Duration: d}
	a.PendingTones = append(a.PendingTones, t)
	a.LastTone = t
	a.ToneCount++
}

var Audio = donburi.NewComponentType[AudioData]()
