// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams for the processing engine.
//
// Decompression rides on github.com/hajimehoshi/go-mp3, which emits
// 16-bit PCM at the stream's sample rate with two channels, mono inputs
// included. Decoding loads the whole signal into an engine.Buffer as
// float32 in [-1, 1]:
//
//	f, _ := os.Open("speech.mp3")
//	defer f.Close()
//
//	buf, rate, err := mp3.Decoder{}.Decode(f)
//
// The package is decode only; processed output goes out through the wav
// package.
package mp3
