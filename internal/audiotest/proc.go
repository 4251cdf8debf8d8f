// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/audproc/engine"
)

// Passthrough is a processor double that echoes every input block under
// the main stream name, aligned to the current position.
type Passthrough struct{}

func (Passthrough) Process(end int, in engine.Block) (engine.Result, error) {
	return engine.Result{engine.MainOutput: {Block: in, End: end}}, nil
}

// NewPassthrough is an engine.NewProcessorFunc building a Passthrough.
func NewPassthrough(channels int, sampleRate float64, cfg engine.Config) (engine.Processor, error) {
	return Passthrough{}, nil
}

// Gain scales samples by per-channel factors taken from the "gain"
// configuration parameter. Channels without a configured factor pass
// through unchanged, which makes the two-channel configuration fallback
// visible in test output.
type Gain struct {
	factors []float32
}

// NewGain is an engine.NewProcessorFunc building a Gain. Channel 0 reads
// the "left" entry and channel 1 the "right" entry of cfg.PerChannel.
func NewGain(channels int, sampleRate float64, cfg engine.Config) (engine.Processor, error) {
	factors := make([]float32, channels)
	for i := range factors {
		factors[i] = 1.0
	}

	for i, name := range []string{"left", "right"} {
		if i >= channels {
			break
		}

		params, ok := cfg.PerChannel[name]
		if !ok {
			continue
		}

		if g, ok := params["gain"]; ok {
			factors[i] = float32(g)
		}
	}

	return &Gain{factors: factors}, nil
}

func (g *Gain) Process(end int, in engine.Block) (engine.Result, error) {
	out := engine.Block{
		Data:     make([]float32, len(in.Data)),
		Channels: in.Channels,
	}

	for i, v := range in.Data {
		out.Data[i] = v * g.factors[i%in.Channels]
	}

	return engine.Result{engine.MainOutput: {Block: out, End: end}}, nil
}

// Delay is a processor double that holds blocks back for a fixed number
// of calls and reports their original positions. The held tail flushes
// through the zero blocks fed past the nominal end.
type Delay struct {
	Steps int

	held []engine.Block
}

func (d *Delay) Process(end int, in engine.Block) (engine.Result, error) {
	blk := engine.Block{
		Data:     append([]float32(nil), in.Data...),
		Channels: in.Channels,
	}
	d.held = append(d.held, blk)

	if len(d.held) <= d.Steps {
		return engine.Result{engine.MainOutput: {End: -1}}, nil
	}

	out := d.held[0]
	d.held = d.held[1:]

	return engine.Result{engine.MainOutput: {Block: out, End: end - d.Steps*in.Frames()}}, nil
}

// NewDelay returns an engine.NewProcessorFunc building a Delay of the
// given depth.
func NewDelay(steps int) engine.NewProcessorFunc {
	return func(channels int, sampleRate float64, cfg engine.Config) (engine.Processor, error) {
		return &Delay{Steps: steps}, nil
	}
}
