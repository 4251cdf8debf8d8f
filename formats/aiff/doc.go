// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF streams for the processing engine.
//
// Container parsing rides on github.com/go-audio/aiff. Only 16-bit PCM
// files are accepted; samples come out as float32 in [-1, 1], big-endian
// source order preserved by the underlying decoder.
//
// Decoding loads the whole signal into an engine.Buffer:
//
//	f, _ := os.Open("master.aiff")
//	defer f.Close()
//
//	buf, rate, err := aiff.Decoder{}.Decode(f)
//
// The package is decode only; processed output goes out through the wav
// package.
package aiff
