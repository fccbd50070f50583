package assets

import (
	"encoding/binary"
	"math"
	"time"
)

// bytesPerFrame is one 16-bit stereo sample frame, the format ebiten's
// audio players consume.
const bytesPerFrame = 4

// SquareWave renders a square wave tone as 16-bit little-endian stereo PCM.
// amplitude is clamped to [0, 1].
func SquareWave(sampleRate, freqHz int, d time.Duration, amplitude float64) []byte {
	if sampleRate <= 0 || freqHz <= 0 || d <= 0 {
		return nil
	}
	amplitude = math.Max(0, math.Min(1, amplitude))
	peak := int16(amplitude * math.MaxInt16)

	frames := int(int64(sampleRate) * int64(d) / int64(time.Second))
	buf := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		v := peak
		// Half periods elapsed at this frame; odd halves are the low level.
		if (int64(i)*2*int64(freqHz)/int64(sampleRate))%2 == 1 {
			v = -peak
		}
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], uint16(v))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(v))
	}
	return buf
}
