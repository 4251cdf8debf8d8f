// SPDX-License-Identifier: EPL-2.0

package engine

import "time"

// rampBuffer builds a buffer whose samples equal their flat storage
// index, so a misplaced write shows up in any comparison.
func rampBuffer(frames, channels int) *Buffer {
	b := NewBuffer(frames, channels)
	data := b.Interleaved()
	for i := range data {
		data[i] = float32(i)
	}
	return b
}

func cloneBlock(b Block) Block {
	out := Block{Data: make([]float32, len(b.Data)), Channels: b.Channels}
	copy(out.Data, b.Data)
	return out
}

// passProc echoes every block back immediately under the default stream
// name.
type passProc struct{}

func (passProc) Process(end int, in Block) (Result, error) {
	return Result{MainOutput: {Block: in, End: end}}, nil
}

// namedProc echoes blocks under a custom stream name.
type namedProc struct{ name string }

func (p namedProc) Process(end int, in Block) (Result, error) {
	return Result{p.name: {Block: in, End: end}}, nil
}

// recProc echoes blocks and keeps a copy of every input it saw.
type recProc struct{ inputs []Block }

func (p *recProc) Process(end int, in Block) (Result, error) {
	p.inputs = append(p.inputs, cloneBlock(in))
	return Result{MainOutput: {Block: in, End: end}}, nil
}

// shiftProc emits the previous block at the current end index: the output
// lags the input by one block with no position compensation.
type shiftProc struct{ prev *Block }

func (p *shiftProc) Process(end int, in Block) (Result, error) {
	held := p.prev
	b := cloneBlock(in)
	p.prev = &b
	if held == nil {
		return Result{MainOutput: {End: -1}}, nil
	}
	return Result{MainOutput: {Block: *held, End: end}}, nil
}

// delayProc holds blocks back for a fixed number of steps and reports
// their original positions (latency compensated). The held tail flushes
// through the zero blocks fed past the nominal end.
type delayProc struct {
	steps int
	held  []Block
}

func (p *delayProc) Process(end int, in Block) (Result, error) {
	p.held = append(p.held, cloneBlock(in))
	if len(p.held) <= p.steps {
		return Result{MainOutput: {End: -1}}, nil
	}
	out := p.held[0]
	p.held = p.held[1:]
	return Result{MainOutput: {Block: out, End: end - p.steps*in.Frames()}}, nil
}

// sleepProc echoes blocks after a fixed pause, for timing tests.
type sleepProc struct{ pause time.Duration }

func (p sleepProc) Process(end int, in Block) (Result, error) {
	time.Sleep(p.pause)
	return Result{MainOutput: {Block: in, End: end}}, nil
}

// failProc returns a fixed error on every call.
type failProc struct{ err error }

func (p failProc) Process(int, Block) (Result, error) { return nil, p.err }

// lostProc never includes the main output entry.
type lostProc struct{}

func (lostProc) Process(end int, in Block) (Result, error) {
	return Result{"side": {Block: in, End: end}}, nil
}

// spySource wraps a Buffer and records every requested range.
type spySource struct {
	*Buffer
	ranges [][2]int
}

func (s *spySource) ReadRange(start, stop int) (Block, error) {
	s.ranges = append(s.ranges, [2]int{start, stop})
	return s.Buffer.ReadRange(start, stop)
}

// errSource fails every read.
type errSource struct {
	frames   int
	channels int
	err      error
}

func (s errSource) Frames() int   { return s.frames }
func (s errSource) Channels() int { return s.channels }

func (s errSource) ReadRange(start, stop int) (Block, error) {
	return Block{}, s.err
}

// memSink collects written blocks into one flat slice.
type memSink struct {
	data     []float32
	channels int
	writes   int
}

func (s *memSink) WriteBlock(b Block) error {
	s.data = append(s.data, b.Data...)
	s.channels = b.Channels
	s.writes++
	return nil
}

// failSink fails every write.
type failSink struct{ err error }

func (s failSink) WriteBlock(Block) error { return s.err }
