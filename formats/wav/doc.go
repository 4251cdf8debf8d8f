// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV containers for the processing engine.
//
// Container parsing and encoding ride on github.com/go-audio/wav. Two
// sample layouts are accepted: PCM 16-bit and IEEE float 32-bit, both
// little endian, and both converted to float32 in [-1, 1].
//
// # Reading
//
// File opens a container for random access without loading it:
//
//	src, err := wav.Open("speech.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	block, err := src.ReadRange(0, 512)
//
// File satisfies engine.Source, so a run can page through a signal far
// larger than memory.
//
// Decoder instead loads a whole stream into an engine.Buffer. It backs
// the format registry, where the input is an io.Reader with no seeking:
//
//	buf, rate, err := wav.Decoder{}.Decode(r)
//
// # Writing
//
// Writer streams float32 blocks into an IEEE float container and
// satisfies engine.Sink:
//
//	out, _ := os.Create("processed.wav")
//	defer out.Close()
//
//	sink := wav.NewWriter(out, 16000, 2)
//	// ... WriteBlock per processed block ...
//	err := sink.Close()
//
// Close patches the RIFF sizes, so the destination must seek; it leaves
// closing the destination to the caller.
//
// WriteWAV16 covers the fixture and export case where the whole signal is
// already in memory as int16 PCM. The sizes are known up front, so it
// works on any io.Writer, buffers included.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedWavLayout: the layout fields make no sense
//   - ErrUnsupportedSampleFormat: a sample format other than the two above
//   - ErrWrongChannelCount: a block or sample slice does not match the
//     container channel count
package wav
