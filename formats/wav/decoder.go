// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audproc/engine"
)

// Decoder loads whole WAV streams into memory.
type Decoder struct{}

// Decode reads r to its end and returns the decoded signal together with
// its sample rate. PCM 16-bit and IEEE float 32-bit containers are
// accepted; chunks other than fmt and data are skipped.
func (Decoder) Decode(r io.Reader) (*engine.Buffer, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	d := gowav.NewDecoder(bytes.NewReader(raw))
	hdr, err := readHeader(d)
	if err != nil {
		return nil, 0, err
	}
	if err := d.FwdToPCM(); err != nil {
		return nil, 0, ErrNotWavFile
	}

	// The data chunk reader is not bounded by the chunk size, and the
	// declared size may outrun a truncated stream. Cap the read and keep
	// whole frames of whatever arrived.
	pcm, err := io.ReadAll(io.LimitReader(d.PCMChunk, int64(d.PCMSize)))
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	bpf := hdr.bytesPerFrame()
	frames := len(pcm) / bpf
	samples := frames * hdr.channels
	data := samplesFromBytes(make([]float32, samples), pcm[:frames*bpf], hdr.bits)

	buf, err := engine.FromInterleaved(data, hdr.channels)
	if err != nil {
		return nil, 0, err
	}
	return buf, hdr.rate, nil
}
