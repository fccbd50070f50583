package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultVolume float64 // 0.0 - 1.0
	Muted         bool
	Amplitude     float64 // Peak of the synthesized square wave, 0.0 - 1.0
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultVolume: 0.5,
		Amplitude:     0.3,
	}
}
