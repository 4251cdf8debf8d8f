// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"maps"
)

// ChannelParams holds the numeric transform parameters of one channel.
type ChannelParams map[string]float64

// Config carries everything a run needs. The Runner validates and reads
// ChunkSize, SampleRate, Main and TimeStats; the whole value is also
// handed to the processor factory, so transforms read their own
// parameters (Margin, PerChannel and anything encoded there) from it.
type Config struct {
	// ChunkSize is the fixed block length in frames. Required, > 0.
	ChunkSize int
	// Margin is extra room, in frames, that transforms which look
	// backward may need past the nominal end. The loop feeds zero
	// blocks until the main stream catches up no matter what Margin
	// says; the field exists for the processor's own bookkeeping.
	Margin int
	// SampleRate in Hz. Required, > 0.
	SampleRate float64
	// Main is the stream whose reported position ends the run.
	// Empty means MainOutput.
	Main string
	// TimeStats enables wall-clock measurement of processor calls.
	TimeStats bool
	// PerChannel maps "left"/"right" to transform parameters.
	PerChannel map[string]ChannelParams
}

func (c Config) validate() error {
	switch {
	case c.ChunkSize <= 0:
		return fmt.Errorf("chunk size %d: %w", c.ChunkSize, ErrBadConfig)
	case c.Margin < 0:
		return fmt.Errorf("margin %d: %w", c.Margin, ErrBadConfig)
	case c.SampleRate <= 0:
		return fmt.Errorf("sample rate %g: %w", c.SampleRate, ErrBadConfig)
	}
	return nil
}

// MainStream resolves the name of the stream that governs termination.
func (c Config) MainStream() string {
	if c.Main == "" {
		return MainOutput
	}
	return c.Main
}

// ForChannels returns the configuration adjusted for an input with the
// given channel count: a two-channel signal configured with fewer channel
// entries than channels gets "right" as a copy of "left". This is a fixed
// two-channel convention, not an N-channel rule. The receiver is left
// untouched.
func (c Config) ForChannels(channels int) Config {
	if channels != 2 || len(c.PerChannel) >= channels {
		return c
	}
	left, ok := c.PerChannel["left"]
	if !ok {
		return c
	}
	pc := maps.Clone(c.PerChannel)
	pc["right"] = maps.Clone(left)
	c.PerChannel = pc
	return c
}
