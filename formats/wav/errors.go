package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrUnsupportedWavLayout    = errors.New("unsupported WAV layout")
	ErrUnsupportedSampleFormat = errors.New("only PCM 16-bit and IEEE float 32-bit supported")
	ErrWrongChannelCount       = errors.New("channel count differs from the container")
)
