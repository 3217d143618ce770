package record

import "math"

// F32 returns the word encoding of a float32 value, for logging floats
// through the word-based entry points.
func F32(v float32) uint32 {
	return math.Float32bits(v)
}

// F64 narrows a float64 to float32 and returns its word encoding, so a
// double costs one data word like any other scalar. Callers needing full
// precision can split math.Float64bits across two words themselves.
func F64(v float64) uint32 {
	return math.Float32bits(float32(v))
}
