package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audproc/engine"
)

// oggReader is the slice of oggvorbis.Reader used here, split out so the
// drain loop is testable without real Ogg pages.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder loads whole Ogg Vorbis streams into memory.
type Decoder struct{}

// Decode decompresses r to its end and returns the signal with its sample
// rate. Vorbis already delivers float32, so samples pass through unscaled.
func (Decoder) Decode(r io.Reader) (*engine.Buffer, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	return drain(dec)
}

// drain reads decoded values until EOF. Read reports value counts in
// whole frames, so the result interleaves cleanly.
func drain(r oggReader) (*engine.Buffer, int, error) {
	out := make([]float32, 0, 4096)
	buf := make([]float32, 4096)

	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	b, err := engine.FromInterleaved(out, r.Channels())
	if err != nil {
		return nil, 0, err
	}
	return b, r.SampleRate(), nil
}
