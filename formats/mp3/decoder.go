// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audproc/engine"
)

// go-mp3 always emits 16-bit little-endian PCM with two channels.
const channels = 2

// Decoder loads whole MP3 streams into memory.
type Decoder struct{}

// Decode decompresses r to its end and returns the signal with its sample
// rate. The output is always stereo, matching the underlying decoder.
func (Decoder) Decode(r io.Reader) (*engine.Buffer, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return decodeAll(dec, dec.SampleRate())
}

// decodeAll drains a 16-bit PCM stream and converts whole frames to
// float32.
func decodeAll(r io.Reader, sampleRate int) (*engine.Buffer, int, error) {
	pcm, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	frames := len(pcm) / (2 * channels)
	data := make([]float32, frames*channels)
	for i := range data {
		// int16 little-endian
		v := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		data[i] = float32(v) / 32768.0
	}

	buf, err := engine.FromInterleaved(data, channels)
	if err != nil {
		return nil, 0, err
	}
	return buf, sampleRate, nil
}
