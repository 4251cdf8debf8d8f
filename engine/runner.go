// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"time"
)

// Runner drives a Processor over a Source in fixed-size steps.
//
// Each step advances the running index by ChunkSize and feeds the
// processor either the real frames of that range or, once the range has
// passed the nominal end, a freshly allocated zero block of the same
// width. The run is over when the main stream's reported position reaches
// the nominal frame count. A stream still warming up reports no position
// and keeps the loop going; the loop never terminates on how much input
// was consumed, so transforms with latency can flush through the zero
// region.
//
// The step sequence is lazy, finite and not restartable, consumed in the
// bufio.Scanner manner:
//
//	run, err := engine.NewRunner(proc, src, cfg)
//	if err != nil {
//		...
//	}
//	for run.Next() {
//		res := run.Result()
//		...
//	}
//	if err := run.Err(); err != nil {
//		...
//	}
type Runner struct {
	proc     Processor
	src      Source
	cfg      Config
	main     string
	frames   int
	channels int

	index   int
	mainPos int
	res     Result
	timing  *Timing
	done    bool
	err     error
}

// NewRunner validates cfg and prepares a run of p over src.
func NewRunner(p Processor, src Source, cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	frames := src.Frames()
	r := &Runner{
		proc:     p,
		src:      src,
		cfg:      cfg,
		main:     cfg.MainStream(),
		frames:   frames,
		channels: src.Channels(),
		mainPos:  -1,
	}
	if cfg.TimeStats {
		budget := time.Duration(float64(cfg.ChunkSize) / cfg.SampleRate * float64(time.Second))
		signal := time.Duration(float64(frames) / cfg.SampleRate * float64(time.Second))
		r.timing = newTiming(budget, signal)
	}
	return r, nil
}

// Next advances the loop by one block. It returns false once the run is
// over, finished or failed; Err tells which. The first call always
// performs a step, even for an empty source.
func (r *Runner) Next() bool {
	if r.done || r.err != nil {
		return false
	}
	if r.timing != nil {
		r.timing.begin()
	}

	r.index += r.cfg.ChunkSize

	var in Block
	if r.index <= r.frames {
		blk, err := r.src.ReadRange(r.index-r.cfg.ChunkSize, r.index)
		if err != nil {
			r.err = fmt.Errorf("%w", err)
			return false
		}
		in = blk
	} else {
		in = Block{
			Data:     make([]float32, r.cfg.ChunkSize*r.channels),
			Channels: r.channels,
		}
	}

	var t0 time.Time
	if r.timing != nil {
		t0 = time.Now()
	}
	res, err := r.proc.Process(r.index, in)
	if r.timing != nil {
		r.timing.record(time.Since(t0))
	}
	if err != nil {
		r.err = fmt.Errorf("block ending at %d: %w", r.index, err)
		return false
	}

	main, ok := res[r.main]
	if !ok {
		r.err = fmt.Errorf("stream %q: %w", r.main, ErrNoMainOutput)
		return false
	}
	if main.End >= 0 {
		r.mainPos = main.End
	}
	r.res = res

	if r.mainPos >= 0 && r.mainPos >= r.frames {
		r.done = true
		if r.timing != nil {
			r.timing.finish()
		}
	}
	return true
}

// Result returns the last step's per-stream chunks. The mapping is valid
// until the next call to Next.
func (r *Runner) Result() Result { return r.res }

// Err returns the terminal error of the run, nil after normal completion.
func (r *Runner) Err() error { return r.err }

// Timing returns the collected call statistics, nil unless
// Config.TimeStats was set.
func (r *Runner) Timing() *Timing { return r.timing }

// Processor returns the transform instance the run drives. Callers use it
// to inspect transform state once the run is over.
func (r *Runner) Processor() Processor { return r.proc }
