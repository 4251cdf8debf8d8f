// SPDX-License-Identifier: EPL-2.0

package audproc

import (
	"fmt"
	"os"
	"time"

	"github.com/ik5/audproc/engine"
	"github.com/ik5/audproc/formats/wav"
)

// ProcessBuffer runs a transform over an in-memory signal and reassembles
// every reported stream offline.
//
// The processor is built from newProc with the buffer's channel count,
// cfg.SampleRate and cfg exactly as given. The run feeds fixed-size
// blocks, zero-padded past the end of the signal, until the main stream
// catches up with the nominal length.
//
// Parameters:
//   - newProc: factory for the transform under test
//   - buf: the input signal
//   - cfg: run configuration; ChunkSize and SampleRate are required
//
// Returns:
//   - map[string]*engine.Buffer: destination buffers keyed by stream name,
//     each holding the input's frame count; streams that never reported an
//     aligned chunk have no entry
//   - engine.Processor: the transform instance the run drove, for callers
//     that inspect transform state afterwards
//   - error: factory, configuration or run errors
func ProcessBuffer(newProc engine.NewProcessorFunc, buf *engine.Buffer, cfg engine.Config) (map[string]*engine.Buffer, engine.Processor, error) {
	proc, err := newProc(buf.Channels(), cfg.SampleRate, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	run, err := engine.NewRunner(proc, buf, cfg)
	if err != nil {
		return nil, nil, err
	}

	outs, err := run.Collect()
	if err != nil {
		return nil, nil, err
	}

	return outs, proc, nil
}

// ProcessMono runs a transform over a one-dimensional signal and returns
// the main output as a plain sample slice.
//
// The samples are wrapped as a single-channel buffer and processed with
// ProcessBuffer; the first channel of the main stream's destination comes
// back. A run whose main stream never reported an aligned chunk fails
// with engine.ErrNoMainOutput.
func ProcessMono(newProc engine.NewProcessorFunc, samples []float32, cfg engine.Config) ([]float32, error) {
	buf, err := engine.FromInterleaved(samples, 1)
	if err != nil {
		return nil, err
	}

	outs, _, err := ProcessBuffer(newProc, buf, cfg)
	if err != nil {
		return nil, err
	}

	out, ok := outs[cfg.MainStream()]
	if !ok {
		return nil, fmt.Errorf("stream %q: %w", cfg.MainStream(), engine.ErrNoMainOutput)
	}

	return out.Channel(0), nil
}

// ProcessFile runs a transform over a WAV file and streams the main
// output into a float WAV file.
//
// The sample rate and channel count come from the input file, overriding
// cfg.SampleRate; a two-channel input configured with only a "left"
// channel entry gets "right" as a copy of "left" before the processor is
// built. Output blocks are appended in arrival order, so a transform's
// internal latency shows up as a time shift in the written file.
//
// Parameters:
//   - newProc: factory for the transform
//   - inPath: input WAV file (PCM 16-bit or IEEE float 32-bit)
//   - outPath: output WAV file, written as IEEE float 32-bit; must differ
//     from inPath (ErrSameFile otherwise, before any file is touched)
//   - cfg: run configuration; ChunkSize is required
//   - limit: stop once the main stream's position reaches this duration;
//     0 means the whole file. The block that crosses the limit is still
//     written.
func ProcessFile(newProc engine.NewProcessorFunc, inPath, outPath string, cfg engine.Config, limit time.Duration) error {
	if inPath == outPath {
		return fmt.Errorf("%q: %w", inPath, ErrSameFile)
	}

	src, err := wav.Open(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	cfg.SampleRate = float64(src.SampleRate())
	cfg = cfg.ForChannels(src.Channels())

	proc, err := newProc(src.Channels(), cfg.SampleRate, cfg)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	run, err := engine.NewRunner(proc, src, cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	w := wav.NewWriter(out, src.SampleRate(), src.Channels())

	if err := run.StreamTo(w, limit); err != nil {
		w.Close()
		out.Close()
		return err
	}

	if err := w.Close(); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
