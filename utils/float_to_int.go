package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Values scale
// by 32768 and clamp to the int16 range, mirroring the /32768
// normalization used when decoding.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v > 32767.0 {
		v = 32767.0
	} else if v < -32768.0 {
		v = -32768.0
	}

	return int16(v)
}
