// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// Assembler places reported chunks into per-stream destination buffers at
// their absolute positions.
//
// A destination buffer holds the nominal frame count. It is allocated
// lazily, zero-filled, when its stream first reports an aligned chunk
// with data, and its channel count is fixed by that first chunk. A chunk
// is written only when [End-Frames(), End) lies entirely inside the
// destination; warm-up chunks, chunks without data and chunks whose span
// sticks out past the end are skipped without error, leaving the
// untouched regions zero. The skip is a placement policy, not a failure
// mode: the final block of a signal whose length is not a chunk multiple
// lands past the nominal end and is dropped whole rather than clipped.
type Assembler struct {
	frames int
	bufs   map[string]*Buffer
}

// NewAssembler prepares reassembly into destinations of the given frame
// count.
func NewAssembler(frames int) *Assembler {
	return &Assembler{
		frames: frames,
		bufs:   make(map[string]*Buffer),
	}
}

// Add applies one step's result. Streams are independent of each other. A
// stream that changes its channel count after its buffer exists fails
// with ErrChannelMismatch; a first chunk with no usable channel count
// fails with ErrBadShape.
func (a *Assembler) Add(res Result) error {
	for name, ch := range res {
		if ch.End < 0 || ch.Data == nil {
			continue
		}

		buf, ok := a.bufs[name]
		if !ok {
			if ch.Channels < 1 {
				return fmt.Errorf("stream %q: %w", name, ErrBadShape)
			}
			buf = NewBuffer(a.frames, ch.Channels)
			a.bufs[name] = buf
		}
		if ch.Channels != buf.channels {
			return fmt.Errorf("stream %q: %w", name, ErrChannelMismatch)
		}

		n := ch.Frames()
		start := ch.End - n
		if start < 0 || ch.End > a.frames {
			// No exact window inside the destination, drop the chunk
			continue
		}
		copy(buf.data[start*buf.channels:ch.End*buf.channels], ch.Data)
	}
	return nil
}

// Buffers returns the destinations built so far, keyed by stream name.
// Streams that never reported an aligned chunk have no entry.
func (a *Assembler) Buffers() map[string]*Buffer { return a.bufs }

// Collect runs every remaining step and reassembles all streams offline.
// It fails on whatever Next fails on, and on assembly contract
// violations; the partial buffers are discarded then.
func (r *Runner) Collect() (map[string]*Buffer, error) {
	asm := NewAssembler(r.frames)
	for r.Next() {
		if err := asm.Add(r.res); err != nil {
			return nil, err
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return asm.Buffers(), nil
}
