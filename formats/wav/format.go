// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"math"

	gowav "github.com/go-audio/wav"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// header carries the validated layout of a parsed container.
type header struct {
	channels int
	rate     int
	bits     int
}

func (h header) bytesPerFrame() int { return h.channels * h.bits / 8 }

// readHeader parses the container info and checks that the layout is one
// this package handles: PCM 16-bit or IEEE float 32-bit, little endian.
func readHeader(d *gowav.Decoder) (header, error) {
	d.ReadInfo()
	if d.Err() != nil {
		return header{}, ErrNotWavFile
	}

	if d.NumChans < 1 || d.SampleRate == 0 {
		return header{}, ErrUnsupportedWavLayout
	}

	switch {
	case d.WavAudioFormat == formatPCM && d.BitDepth == 16:
	case d.WavAudioFormat == formatIEEEFloat && d.BitDepth == 32:
	default:
		return header{}, ErrUnsupportedSampleFormat
	}

	return header{
		channels: int(d.NumChans),
		rate:     int(d.SampleRate),
		bits:     int(d.BitDepth),
	}, nil
}

// samplesFromBytes decodes little-endian sample bytes into dst. dst must
// hold exactly len(raw) / (bits/8) values.
func samplesFromBytes(dst []float32, raw []byte, bits int) []float32 {
	if bits == 16 {
		for i := range dst {
			v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
			dst[i] = float32(v) / 32768.0
		}
		return dst
	}

	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return dst
}
