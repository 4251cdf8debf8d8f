// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"sync"
)

// Source is random access to a signal of known length: an in-memory
// Buffer, a file-backed reader, anything that can serve contiguous
// frame ranges.
type Source interface {
	// Frames available in total, per channel.
	Frames() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadRange returns the frames [start, stop), all channels,
	// interleaved. The block may alias internal storage and is only
	// valid until the next call. Malformed ranges fail with ErrBadRange.
	ReadRange(start, stop int) (Block, error)
}

// Processor is the streaming transform a Runner drives. It is opaque to
// the loop: one call per block, any internal state allowed, mutated
// exclusively by the processor itself between calls.
//
// end is the absolute end index of in within the nominal source timeline.
// It grows by the chunk size on every call and keeps growing past the
// nominal end while zero blocks are fed. The returned result must carry
// an entry for the main stream on every call; the loop terminates on
// that stream's position and has no fallback when it is absent.
type Processor interface {
	Process(end int, in Block) (Result, error)
}

// NewProcessorFunc builds a processor for a signal with the given channel
// count and sample rate. cfg is passed through verbatim so transforms can
// pick out their own parameters.
type NewProcessorFunc func(channels int, sampleRate float64, cfg Config) (Processor, error)

// Sink receives the main output stream block by block, in production
// order. Opening and closing the underlying destination is the caller's
// business.
type Sink interface {
	WriteBlock(b Block) error
}

// Decoder reads a complete audio stream into memory.
type Decoder interface {
	// Decode returns the decoded signal and its sample rate in Hz.
	Decode(r io.Reader) (*Buffer, int, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
// Resolving a format happens once, before any block is processed; a
// format nobody registered surfaces there and not halfway through a run.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
