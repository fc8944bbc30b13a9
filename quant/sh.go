package quant

import "math"

// SHCoeffCount returns K(d), the number of non-DC SH coefficients per
// channel for degree d in {0,1,2,3}: 0, 3, 8, 15.
func SHCoeffCount(degree int) int {
	switch degree {
	case 0:
		return 0
	case 1:
		return 3
	case 2:
		return 8
	case 3:
		return 15
	default:
		return 0
	}
}

// shBand classifies a coefficient index (0-based, before the *3 RGB
// interleave) into its band: 1 for coeffs 0..2, 2 for coeffs 3..7, 3 for
// coeffs 8..14 (spec.md §4.1).
func shBand(coefIdx int) int {
	switch {
	case coefIdx < 3:
		return 1
	case coefIdx < 8:
		return 2
	default:
		return 3
	}
}

// degree3Reduced reports whether the degree-3 band uses the reduced 6-bit
// encoding. Only v3 does; v1/v2 store every band at the full 1/128 step
// spec.md §4.1 assigns to bands 1 and 2.
func degree3Reduced(version int) bool {
	return version == 3
}

// EncodeSH quantizes a point's flat, coefficient-major, RGB-interleaved SH
// array (length K(degree)*3) into signed bytes, applying the per-band step
// size from spec.md §4.1. version selects whether the degree-3 band is
// stored at reduced (6-bit) precision.
func EncodeSH(coeffs []float32, version int) []byte {
	out := make([]byte, len(coeffs))
	for i, c := range coeffs {
		coefIdx := i / 3
		band := shBand(coefIdx)

		if band == 3 && degree3Reduced(version) {
			raw := math.Round(float64(c) * 32)
			if raw < -32 {
				raw = -32
			}
			if raw > 31 {
				raw = 31
			}
			out[i] = byte(int8(raw) << 2) //nolint:gosec
			continue
		}

		out[i] = byte(roundClampI8(float64(c) * 128))
	}

	return out
}

// DecodeSH reverses EncodeSH.
func DecodeSH(data []byte, version int) []float32 {
	out := make([]float32, len(data))
	for i, b := range data {
		coefIdx := i / 3
		band := shBand(coefIdx)

		sb := int8(b) //nolint:gosec
		if band == 3 && degree3Reduced(version) {
			// Mask the low 2 bits to zero before dequantizing, per spec.md §4.1.
			masked := sb >> 2 // arithmetic shift preserves sign
			out[i] = float32(masked) / 32
			continue
		}

		out[i] = float32(sb) / 128
	}

	return out
}
