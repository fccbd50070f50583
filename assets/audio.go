package assets

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

type toneKey struct {
	freq int
	d    time.Duration
}

// AudioLoader synthesizes tones and caches their PCM
type AudioLoader struct {
	toneCache map[toneKey][]byte
	context   *audio.Context
	amplitude float64
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context, amplitude float64) *AudioLoader {
	return &AudioLoader{
		toneCache: make(map[toneKey][]byte),
		context:   ctx,
		amplitude: amplitude,
	}
}

// PreloadTone renders a tone without creating a player.
func (l *AudioLoader) PreloadTone(freqHz int, d time.Duration) error {
	_, err := l.pcm(freqHz, d)
	return err
}

// LoadTone returns a new player for a tone each time. The PCM is rendered
// once per frequency and duration.
func (l *AudioLoader) LoadTone(freqHz int, d time.Duration) (*audio.Player, error) {
	data, err := l.pcm(freqHz, d)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(freqHz int, d time.Duration) ([]byte, error) {
	key := toneKey{freqHz, d}
	if data, ok := l.toneCache[key]; ok {
		return data, nil
	}

	data := SquareWave(l.context.SampleRate(), freqHz, d, l.amplitude)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty tone %dHz for %v", freqHz, d)
	}
	l.toneCache[key] = data
	return data, nil
}
