// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audproc/engine"
)

// Writer appends float32 blocks to a WAV container in IEEE float 32-bit
// layout. Blocks arrive in stream order; Close patches the header sizes.
// Closing the underlying writer stays the caller's business.
type Writer struct {
	enc      *gowav.Encoder
	channels int
	rate     int
	started  bool
}

// NewWriter prepares a float WAV stream. w is typically an *os.File; the
// container format needs seeking to finalize sizes on Close.
func NewWriter(w io.WriteSeeker, sampleRate, channels int) *Writer {
	return &Writer{
		enc:      gowav.NewEncoder(w, sampleRate, 32, channels, formatIEEEFloat),
		channels: channels,
		rate:     sampleRate,
	}
}

// WriteBlock appends one block of interleaved samples.
func (w *Writer) WriteBlock(b engine.Block) error {
	if b.Channels != w.channels {
		return fmt.Errorf("%d channel block into a %d channel stream: %w", b.Channels, w.channels, ErrWrongChannelCount)
	}

	// The encoder serializes int values at the container bit depth, so
	// float samples travel as their IEEE-754 bit patterns.
	ints := make([]int, len(b.Data))
	for i, v := range b.Data {
		ints[i] = int(int32(math.Float32bits(v)))
	}

	if err := w.enc.Write(w.intBuffer(ints)); err != nil {
		return fmt.Errorf("%w", err)
	}
	w.started = true

	return nil
}

func (w *Writer) intBuffer(data []int) *audio.IntBuffer {
	return &audio.IntBuffer{
		Data:   data,
		Format: &audio.Format{NumChannels: w.channels, SampleRate: w.rate},
	}
}

// Close finalizes the container sizes. An empty stream still comes out as
// a valid header-only file.
func (w *Writer) Close() error {
	if !w.started {
		if err := w.enc.Write(w.intBuffer(nil)); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
