// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
	"time"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audproc/engine"
)

// File is a seekable WAV signal. Frames are read and converted on demand,
// so a file much longer than memory can still drive a processing run.
type File struct {
	file *os.File
	hdr  header

	frames    int
	dataStart int64

	raw []byte
	out []float32
}

// Open validates the container at path and positions it for random access.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	d := gowav.NewDecoder(f)
	hdr, err := readHeader(d)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := d.FwdToPCM(); err != nil {
		f.Close()
		return nil, ErrNotWavFile
	}

	// The decoder leaves the descriptor at the first sample byte.
	start, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w", err)
	}

	frames := d.PCMSize / hdr.bytesPerFrame()
	if fi, err := f.Stat(); err == nil {
		// Truncated files claim more data than they carry.
		if avail := int(fi.Size()-start) / hdr.bytesPerFrame(); avail < frames {
			frames = avail
		}
	}
	if frames < 0 {
		frames = 0
	}

	return &File{
		file:      f,
		hdr:       hdr,
		frames:    frames,
		dataStart: start,
	}, nil
}

// Frames reports the signal length per channel.
func (f *File) Frames() int { return f.frames }

// Channels reports the interleaved channel count.
func (f *File) Channels() int { return f.hdr.channels }

// SampleRate reports the container sample rate in Hz.
func (f *File) SampleRate() int { return f.hdr.rate }

// Duration reports the signal length in wall time.
func (f *File) Duration() time.Duration {
	return time.Duration(float64(f.frames) / float64(f.hdr.rate) * float64(time.Second))
}

// ReadRange reads frames [start, stop) as interleaved float32 samples. The
// returned block aliases a scratch buffer owned by the file and stays valid
// until the next call.
func (f *File) ReadRange(start, stop int) (engine.Block, error) {
	if start < 0 || stop < start || stop > f.frames {
		return engine.Block{}, fmt.Errorf("[%d:%d) of %d frames: %w", start, stop, f.frames, engine.ErrBadRange)
	}

	bpf := f.hdr.bytesPerFrame()
	need := (stop - start) * bpf
	if cap(f.raw) < need {
		f.raw = make([]byte, need)
	}
	raw := f.raw[:need]

	if _, err := f.file.Seek(f.dataStart+int64(start)*int64(bpf), io.SeekStart); err != nil {
		return engine.Block{}, fmt.Errorf("%w", err)
	}
	if _, err := io.ReadFull(f.file, raw); err != nil {
		return engine.Block{}, fmt.Errorf("%w", err)
	}

	samples := (stop - start) * f.hdr.channels
	if cap(f.out) < samples {
		f.out = make([]float32, samples)
	}
	out := samplesFromBytes(f.out[:samples], raw, f.hdr.bits)

	return engine.Block{Data: out, Channels: f.hdr.channels}, nil
}

// Close releases the descriptor.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
