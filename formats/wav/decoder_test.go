// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// Helper function to create a minimal valid PCM 16-bit WAV file.
func createWAVFile(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

// Helper function to create an IEEE float 32-bit WAV file.
func createFloatWAVFile(sampleRate, channels int, samples []float32) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(32)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 4)
	riffSize := 36 + dataSize

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(3)) // IEEE float
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	wavData := createWAVFile(8000, 1, samples)

	buf, rate, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}

	if buf.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", buf.Channels())
	}

	if buf.Frames() != len(samples) {
		t.Errorf("Frames() = %d, want %d", buf.Frames(), len(samples))
	}
}

func TestDecoder_SampleValues(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, 32767, -16384, -32768}
	wavData := createWAVFile(8000, 1, samples)

	buf, _, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []float32{0.0, 0.5, 32767.0 / 32768.0, -0.5, -1.0}
	got := buf.Interleaved()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	wavData := createWAVFile(44100, 2, samples)

	buf, rate, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if rate != 44100 {
		t.Errorf("rate = %d, want 44100", rate)
	}

	if buf.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", buf.Channels())
	}

	if buf.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", buf.Frames())
	}
}

func TestDecoder_FloatWAVFile(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.25, -0.25, 1, -1, 0.123456}
	wavData := createFloatWAVFile(16000, 2, samples)

	buf, rate, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if rate != 16000 {
		t.Errorf("rate = %d, want 16000", rate)
	}

	// Float samples survive the container bit for bit.
	got := buf.Interleaved()
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	invalidData := []byte("NOT A WAV FILE DATA")

	_, _, err := Decoder{}.Decode(bytes.NewReader(invalidData))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_TruncatedHeader(t *testing.T) {
	t.Parallel()

	truncatedData := []byte("RIFF\x00")

	_, _, err := Decoder{}.Decode(bytes.NewReader(truncatedData))
	if err == nil {
		t.Error("Decode() error = nil, want error for truncated header")
	}
}

func TestDecoder_UnsupportedFormats(t *testing.T) {
	t.Parallel()

	write := func(format, channels, bits uint16) []byte {
		buf := new(bytes.Buffer)
		buf.WriteString("RIFF")
		binary.Write(buf, binary.LittleEndian, uint32(36))
		buf.WriteString("WAVE")

		buf.WriteString("fmt ")
		binary.Write(buf, binary.LittleEndian, uint32(16))
		binary.Write(buf, binary.LittleEndian, format)
		binary.Write(buf, binary.LittleEndian, channels)
		binary.Write(buf, binary.LittleEndian, uint32(8000))
		binary.Write(buf, binary.LittleEndian, uint32(16000))
		binary.Write(buf, binary.LittleEndian, uint16(2))
		binary.Write(buf, binary.LittleEndian, bits)

		buf.WriteString("data")
		binary.Write(buf, binary.LittleEndian, uint32(0))
		return buf.Bytes()
	}

	tests := []struct {
		name     string
		format   uint16
		channels uint16
		bits     uint16
		want     error
	}{
		{"8-bit PCM", 1, 1, 8, ErrUnsupportedSampleFormat},
		{"24-bit PCM", 1, 2, 24, ErrUnsupportedSampleFormat},
		{"16-bit float", 3, 1, 16, ErrUnsupportedSampleFormat},
		{"64-bit float", 3, 1, 64, ErrUnsupportedSampleFormat},
		{"a-law", 6, 1, 8, ErrUnsupportedSampleFormat},
		{"no channels", 1, 0, 16, ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Decoder{}.Decode(bytes.NewReader(write(tt.format, tt.channels, tt.bits)))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_WithUnknownChunks(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(60))
	buf.WriteString("WAVE")

	// Custom chunk, should be skipped
	buf.WriteString("LIST")
	binary.Write(buf, binary.LittleEndian, uint32(4))
	buf.Write([]byte{0, 0, 0, 0})

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(8000))
	binary.Write(buf, binary.LittleEndian, uint32(16000))
	binary.Write(buf, binary.LittleEndian, uint16(2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(4))
	binary.Write(buf, binary.LittleEndian, int16(100))
	binary.Write(buf, binary.LittleEndian, int16(200))

	decoded, _, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil (should skip unknown chunks)", err)
	}

	if decoded.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", decoded.Frames())
	}
}

func TestDecoder_TruncatedData(t *testing.T) {
	t.Parallel()

	// Stereo file whose data chunk claims 4 frames but carries 2 and a half.
	samples := []int16{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000}
	wavData := createWAVFile(8000, 2, samples)
	cut := wavData[:len(wavData)-6]

	buf, _, err := Decoder{}.Decode(bytes.NewReader(cut))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if buf.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2 (whole frames only)", buf.Frames())
	}
}

func TestDecoder_EmptyData(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, nil)

	buf, rate, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if rate != 8000 {
		t.Errorf("rate = %d, want 8000", rate)
	}

	if buf.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", buf.Frames())
	}
}

func TestDecoder_VariousSampleRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
	}{
		{"8kHz Mono", 8000, 1},
		{"16kHz Mono", 16000, 1},
		{"22.05kHz Stereo", 22050, 2},
		{"44.1kHz Stereo", 44100, 2},
		{"48kHz Stereo", 48000, 2},
		{"96kHz Mono", 96000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := []int16{100, 200, 300, 400}
			wavData := createWAVFile(tt.sampleRate, tt.channels, samples)

			buf, rate, err := Decoder{}.Decode(bytes.NewReader(wavData))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if rate != tt.sampleRate {
				t.Errorf("rate = %d, want %d", rate, tt.sampleRate)
			}

			if buf.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", buf.Channels(), tt.channels)
			}
		})
	}
}

// BenchmarkDecoder_Decode benchmarks WAV decoding.
func BenchmarkDecoder_Decode(b *testing.B) {
	samples := make([]int16, 44100) // 1 second at 44.1kHz
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	wavData := createWAVFile(44100, 2, samples)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _, _ = Decoder{}.Decode(bytes.NewReader(wavData))
	}
}
