// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams for the processing engine.
//
// Decompression rides on github.com/jfreymuth/oggvorbis, which already
// works in float32, so samples reach the engine without rescaling. The
// channel count and sample rate come from the stream itself.
//
// Decoding loads the whole signal into an engine.Buffer:
//
//	f, _ := os.Open("music.ogg")
//	defer f.Close()
//
//	buf, rate, err := vorbis.Decoder{}.Decode(f)
//
// For stereo streams the samples interleave as [L0, R0, L1, R1, ...].
//
// The package is decode only; processed output goes out through the wav
// package.
package vorbis
