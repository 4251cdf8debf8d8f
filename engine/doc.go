// SPDX-License-Identifier: EPL-2.0

// Package engine drives streaming audio transforms over long signals in
// fixed-size blocks and reassembles their outputs sample-accurately.
//
// A transform is anything implementing Processor: one behavioral method,
// called once per block with the block's absolute end index. The engine
// never looks inside it. Transforms typically carry internal latency and
// report where their output actually belongs, so the loop, the placement
// of results and the termination rule all follow the positions the
// transform reports rather than the amount of input consumed.
//
// # The processing loop
//
// Runner steps through the source in ChunkSize frames per call. Past the
// nominal end it synthesizes zero blocks of the same width, so the
// transform always sees full-length blocks and can flush whatever it
// still holds. The run ends when the main output stream's reported
// position reaches the nominal frame count:
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
//
// # Sources
//
// A Source serves contiguous frame ranges of a signal of known length.
// Buffer is the in-memory implementation; formats/wav provides a
// file-backed one that seeks and reads on demand.
//
// # Offline reassembly
//
// Assembler places every reported chunk at its absolute position in a
// per-stream destination buffer, allocated lazily on the stream's first
// aligned chunk. Chunks whose span does not fit the destination exactly
// are dropped whole. Runner.Collect runs the loop and returns the
// assembled buffers in one call.
//
// # Streaming
//
// Runner.StreamTo appends the main stream's blocks to a Sink in arrival
// order, with an optional duration cap checked after each step. The cap
// is the only early exit; offline runs always reach natural termination.
//
// # Timing
//
// With Config.TimeStats set, the runner measures each transform call and
// aggregates the durations into a Timing, including how many calls
// exceeded the real-time budget of one block. Diagnostic only.
//
// # Errors
//
// Precondition violations (bad configuration, malformed ranges, bad
// shapes) fail before or at the offending call with sentinel errors.
// A result without the main stream entry fails the run with
// ErrNoMainOutput. Out-of-bounds placements are not errors; they are the
// drop policy described above.
package engine
