package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audproc/engine"
)

// aiffReader is the slice of aiff.Decoder used by the drain loop, split
// out so it is testable without real AIFF chunks.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder loads whole AIFF streams into memory.
type Decoder struct{}

// Decode reads r to its end and returns the decoded signal with its
// sample rate. Only 16-bit PCM files are accepted.
func (Decoder) Decode(r io.Reader) (*engine.Buffer, int, error) {
	// The container needs seeking, so the stream is slurped first.
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	dec := aiff.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, 0, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, 0, ErrUnsupportedAiffLayout
	}

	data, err := drainPCM(dec, format)
	if err != nil {
		return nil, 0, err
	}

	// Whole frames only.
	frames := len(data) / format.NumChannels
	buf, err := engine.FromInterleaved(data[:frames*format.NumChannels], format.NumChannels)
	if err != nil {
		return nil, 0, err
	}
	return buf, format.SampleRate, nil
}

// drainPCM pulls 16-bit values out of the decoder until it runs dry. A
// short or empty read without a real error means the data chunk ended.
func drainPCM(dec aiffReader, format *goaudio.Format) ([]float32, error) {
	out := make([]float32, 0, 4096)
	scratch := &goaudio.IntBuffer{Data: make([]int, 4096), Format: format}

	for {
		n, err := dec.PCMBuffer(scratch)
		for _, v := range scratch.Data[:n] {
			out = append(out, float32(v)/32768.0)
		}

		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w", err)
		}
		if err == io.EOF || n < len(scratch.Data) {
			return out, nil
		}
	}
}
