package quant

import "math"

// PositionBytesPerPoint is the number of bytes a single encoded position
// (all 3 components) occupies, for every container version (spec.md §4.1).
const PositionBytesPerPoint = 9

// position24Min and position24Max bound the 24-bit signed two's-complement
// range a single fixed-point component can represent.
const (
	position24Min = -(1 << 23)
	position24Max = (1 << 23) - 1
)

// EncodePositions quantizes N*3 world-space position components into the
// 24-bit-per-component fixed-point layout shared by every container
// version: each component is multiplied by 2^fractionalBits, rounded to the
// nearest integer, and stored as a little-endian signed 24-bit triplet.
//
// positions must have length n*3. The returned slice has length
// n*PositionBytesPerPoint.
func EncodePositions(positions []float32, fractionalBits int) []byte {
	n3 := len(positions)
	out := make([]byte, (n3/3)*PositionBytesPerPoint)

	scale := math.Ldexp(1, fractionalBits) // 2^fractionalBits

	for i := 0; i < n3; i++ {
		// Saturate in float64 first: converting an out-of-range float64 to
		// int32 is implementation-defined and can come out with the wrong sign.
		v := math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(float64(positions[i])*scale)))
		fixed := clampI32(int32(v), position24Min, position24Max)

		off := i * 3
		putInt24LE(out[off:off+3], fixed)
	}

	return out
}

// DecodePositions reverses EncodePositions: it reads n*3 24-bit fixed-point
// components from data and divides each by 2^fractionalBits to recover
// float32 world-space positions.
func DecodePositions(data []byte, n int, fractionalBits int) []float32 {
	out := make([]float32, n*3)
	invScale := 1.0 / math.Ldexp(1, fractionalBits)

	for i := range out {
		off := i * 3
		fixed := getInt24LE(data[off : off+3])
		out[i] = float32(float64(fixed) * invScale)
	}

	return out
}
