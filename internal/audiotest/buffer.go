// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audproc/engine"
)

// NewBuffer is a test helper that fills a buffer from a waveform function.
// waveform produces the sample value for a given frame index and channel.
func NewBuffer(frames, channels int, waveform func(frame, channel int) float32) *engine.Buffer {
	buf := engine.NewBuffer(frames, channels)
	data := buf.Interleaved()

	for frame := range frames {
		for ch := range channels {
			data[frame*channels+ch] = waveform(frame, ch)
		}
	}

	return buf
}

// NewSineBuffer creates a buffer holding a sine wave.
func NewSineBuffer(frames, channels int, sampleRate, frequency float64) *engine.Buffer {
	return NewBuffer(frames, channels, func(frame, channel int) float32 {
		t := float64(frame) / sampleRate
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantBuffer creates a buffer with a constant value on every channel.
func NewConstantBuffer(frames, channels int, value float32) *engine.Buffer {
	return NewBuffer(frames, channels, func(frame, channel int) float32 {
		return value
	})
}

// NewRampBuffer creates a buffer whose samples equal their flat storage
// index, so any misplaced frame shows up in a comparison.
func NewRampBuffer(frames, channels int) *engine.Buffer {
	return NewBuffer(frames, channels, func(frame, channel int) float32 {
		return float32(frame*channels + channel)
	})
}
