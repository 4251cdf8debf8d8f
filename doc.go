// SPDX-License-Identifier: EPL-2.0

// Package audproc runs streaming audio transforms over long signals.
//
// A transform processes audio in fixed-size blocks and keeps internal
// state between calls. This package supplies everything around such a
// transform: it feeds the blocks in order, pads the tail with zeros so
// transforms with latency can flush, and reassembles the per-block
// outputs into sample-accurate buffers or an output file.
//
// # Processing Model
//
// The transform implements engine.Processor: one call per block, with
// the absolute end index of the block in the signal's timeline. It
// answers with named output streams, each reporting where its data
// belongs. The loop terminates when the main stream's reported position
// reaches the signal length, not when the input runs out, so output
// alignment rather than input consumption decides completion.
//
// # Quick Start
//
// The simplest path processes an in-memory signal and collects every
// output stream:
//
//	buf, rate, err := audproc.Load("speech.wav")
//	if err != nil {
//		// handle error
//	}
//
//	cfg := engine.Config{ChunkSize: 512, SampleRate: float64(rate)}
//	outs, proc, err := audproc.ProcessBuffer(NewMyTransform, buf, cfg)
//	if err != nil {
//		// handle error
//	}
//
//	result := outs[engine.MainOutput]
//	_ = proc // inspect transform state if needed
//
// One-dimensional signals have a shorthand that skips the buffer
// plumbing:
//
//	out, err := audproc.ProcessMono(NewMyTransform, samples, cfg)
//
// # File Processing
//
// ProcessFile streams a WAV file through a transform without decoding it
// into memory. The input is read range by range, the main output is
// appended to a float WAV file as it arrives, and an optional duration
// limit stops long runs early:
//
//	err := audproc.ProcessFile(NewMyTransform, "in.wav", "out.wav", cfg, 30*time.Second)
//
// The sample rate and channel count always come from the input file.
//
// # Supported Formats
//
// Load decodes whole files by extension:
//   - WAV (PCM 16-bit and IEEE float 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// File-backed processing reads WAV only; the other formats decode into
// memory first.
//
// # Performance
//
// Setting engine.Config.TimeStats collects wall-clock statistics of the
// transform calls. The collected engine.Timing reports per-block compute
// times against the real-time budget of one block:
//
//	run, _ := engine.NewRunner(proc, src, cfg)
//	// ... consume the run ...
//	fmt.Println(run.Timing())
//
// See the engine package for the scheduling core and the formats
// subpackages for the container details.
package audproc
