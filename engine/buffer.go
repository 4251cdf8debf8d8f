// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// Buffer is an in-memory signal: interleaved float32 storage with a fixed
// frame and channel count. It implements Source, and the Assembler fills
// Buffers with reassembled output streams.
type Buffer struct {
	data     []float32
	channels int
}

// NewBuffer allocates a zero-filled buffer of frames x channels.
// frames must be >= 0 and channels >= 1.
func NewBuffer(frames, channels int) *Buffer {
	return &Buffer{
		data:     make([]float32, frames*channels),
		channels: channels,
	}
}

// FromInterleaved wraps data as a buffer without copying. Fails with
// ErrBadShape when channels < 1 or len(data) is not a multiple of channels.
func FromInterleaved(data []float32, channels int) (*Buffer, error) {
	if channels < 1 || len(data)%channels != 0 {
		return nil, fmt.Errorf("%d values over %d channels: %w", len(data), channels, ErrBadShape)
	}
	return &Buffer{data: data, channels: channels}, nil
}

// Frames per channel.
func (b *Buffer) Frames() int { return len(b.data) / b.channels }

// Channels count.
func (b *Buffer) Channels() int { return b.channels }

// Interleaved returns the backing storage. Mutating it mutates the buffer.
func (b *Buffer) Interleaved() []float32 { return b.data }

// At returns the sample of channel ch at frame i.
func (b *Buffer) At(i, ch int) float32 { return b.data[i*b.channels+ch] }

// Channel copies a single channel out as a fresh slice.
func (b *Buffer) Channel(ch int) []float32 {
	out := make([]float32, b.Frames())
	for i := range out {
		out[i] = b.data[i*b.channels+ch]
	}
	return out
}

// Block views the whole buffer as one block aliasing its storage.
func (b *Buffer) Block() Block {
	return Block{Data: b.data, Channels: b.channels}
}

// ReadRange returns the frames [start, stop) as a view aliasing the
// buffer. Fails with ErrBadRange when the range is negative, reversed or
// reaches past the end.
func (b *Buffer) ReadRange(start, stop int) (Block, error) {
	if start < 0 || stop < start || stop > b.Frames() {
		return Block{}, fmt.Errorf("[%d:%d) of %d frames: %w", start, stop, b.Frames(), ErrBadRange)
	}
	return Block{
		Data:     b.data[start*b.channels : stop*b.channels],
		Channels: b.channels,
	}, nil
}
