package systems

import (
	"sync"
	"time"

	"github.com/automoto/reflexo/assets"
	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Audio.Amplitude)
	})
}

// PreloadTones renders the game's tones at startup to avoid lag on the
// first beep.
func PreloadTones() {
	initGlobalAudio()

	for _, d := range []time.Duration{game.JoinToneTime, game.CueToneTime} {
		if err := globalAudioLoader.PreloadTone(game.ToneFrequency, d); err != nil {
			log.Warn().Err(err).Msg("could not preload tone")
		}
	}
}

// UpdateAudio plays the tones the game queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, t := range audioData.PendingTones {
		playTone(audioData, t)
	}
	audioData.PendingTones = audioData.PendingTones[:0]
}

func playTone(a *components.AudioData, t components.Tone) {
	if a.Muted || a.Volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadTone(t.FreqHz, t.Duration)
	if err != nil {
		log.Warn().Err(err).Int("freq", t.FreqHz).Dur("duration", t.Duration).Msg("could not play tone")
		return
	}

	player.SetVolume(a.Volume)
	player.Play()
}

// SetVolume changes the buzzer volume (0.0 - 1.0)
func SetVolume(e *ecs.ECS, volume float64) {
	GetOrCreateAudio(e).Volume = volume
}

// SetMuted silences or restores the buzzer
func SetMuted(e *ecs.ECS, muted bool) {
	GetOrCreateAudio(e).Muted = muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Volume:       cfg.Audio.DefaultVolume,
			Muted:        cfg.Audio.Muted,
			PendingTones: make([]components.Tone, 0, 4),
		})
	}
	return components.Audio.Get(entry)
}
