package quant

// colorScaleV2 is the v2/v3 color quantization scale from spec.md §4.1:
// byte = round(c*colorScale + 0.5), colorScale = 0.15*255.
const colorScaleV2 = 0.15 * 255

// EncodeColorsV2 quantizes N*3 linear-RGB color components using the v2/v3
// scheme (0.15 scale factor, +0.5 bias before rounding).
func EncodeColorsV2(colors []float32) []byte {
	out := make([]byte, len(colors))
	for i, c := range colors {
		out[i] = roundClampU8(float64(c)*colorScaleV2 + 0.5)
	}

	return out
}

// DecodeColorsV2 reverses EncodeColorsV2.
func DecodeColorsV2(data []byte) []float32 {
	out := make([]float32, len(data))
	for i, b := range data {
		out[i] = float32((float64(b) - 0.5) / colorScaleV2)
	}

	return out
}

// EncodeColorsV1 quantizes colors using the v1 scheme: byte = round(c*255),
// no bias, no 0.15 scale factor.
func EncodeColorsV1(colors []float32) []byte {
	out := make([]byte, len(colors))
	for i, c := range colors {
		out[i] = roundClampU8(float64(c) * 255)
	}

	return out
}

// DecodeColorsV1 reverses EncodeColorsV1.
func DecodeColorsV1(data []byte) []float32 {
	out := make([]float32, len(data))
	for i, b := range data {
		out[i] = float32(b) / 255
	}

	return out
}
