package utils

// Float32ToInt8 quantizes a mixed sample to signed 8-bit PCM.
// The cast truncates toward zero and is deliberately not clamped: values
// outside [-1, 1] wrap the way a native int8 truncation would. Existing
// output streams depend on that, so do not add clamping here.
func Float32ToInt8(x float32) int8 {
	// Going through int32 keeps the wraparound well-defined; a direct
	// float-to-int8 conversion of an overflowing value is
	// implementation-dependent in Go.
	return int8(int32(x * 127))
}
