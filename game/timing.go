package game

import "time"

// Cue window. A fresh delay is drawn from [CueDelayMin, CueDelayMax) every round.
const (
	CueDelayMin = 1000 * time.Millisecond
	CueDelayMax = 2000 * time.Millisecond
)

// Presentation holds.
const (
	RoundBannerHold = 1000 * time.Millisecond
	ResultHold      = 2000 * time.Millisecond
	BlinkInterval   = 500 * time.Millisecond
	BlinkCycles     = 3
	JoinPause       = 1500 * time.Millisecond
)

// Buzzer tones.
const (
	ToneFrequency = 1000
	JoinToneTime  = 100 * time.Millisecond
	CueToneTime   = 10 * time.Millisecond
)
