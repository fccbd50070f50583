package game

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
)

// Millis is a free-running millisecond counter that wraps at 2^32.
type Millis uint32

// Elapsed returns now-start, correct across a counter wrap as long as the
// real interval is shorter than one full period (~49 days).
func Elapsed(now, start Millis) time.Duration {
	return time.Duration(now-start) * time.Millisecond
}

// Source provides uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// RoundTimer reads the millisecond counter and draws cue delays.
type RoundTimer struct {
	clock clockwork.Clock
	epoch time.Time
	base  Millis
	rng   Source
}

// NewRoundTimer creates a timer counting from the clock's current time.
func NewRoundTimer(clock clockwork.Clock, rng Source) *RoundTimer {
	return &RoundTimer{
		clock: clock,
		epoch: clock.Now(),
		rng:   rng,
	}
}

// NewSeededRoundTimer creates a timer whose random source is seeded once
// from the system entropy pool.
func NewSeededRoundTimer(clock clockwork.Clock) *RoundTimer {
	return NewRoundTimer(clock, NewEntropySource())
}

// NewEntropySource returns a PCG generator seeded from crypto/rand, falling
// back to the wall clock if the entropy pool cannot be read.
func NewEntropySource() *rand.Rand {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1|1))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// Now returns the current counter value.
func (t *RoundTimer) Now() Millis {
	return t.base + Millis(uint32(t.clock.Since(t.epoch)/time.Millisecond))
}

// Since returns the time elapsed on the counter since start.
func (t *RoundTimer) Since(start Millis) time.Duration {
	return Elapsed(t.Now(), start)
}

// DrawDelay returns a uniform cue delay in [CueDelayMin, CueDelayMax).
func (t *RoundTimer) DrawDelay() time.Duration {
	span := int((CueDelayMax - CueDelayMin) / time.Millisecond)
	return CueDelayMin + time.Duration(t.rng.IntN(span))*time.Millisecond
}
