// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"

	"github.com/ik5/audproc/formats/wav"
	"github.com/ik5/audproc/utils"
)

// WritePCM16 saves interleaved samples as a 16-bit PCM WAV file, for
// tests that need real files on disk. Sample values that are multiples
// of 1/32768 survive the quantization exactly and can be compared with
// == after reading back.
func WritePCM16(path string, sampleRate, channels int, samples []float32) error {
	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WriteWAV16(f, sampleRate, channels, pcm); err != nil {
		f.Close()
		return fmt.Errorf("%w", err)
	}

	return f.Close()
}
