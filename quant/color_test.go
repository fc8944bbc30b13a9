package quant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeColorsV2_RoundTrip(t *testing.T) {
	colors := []float32{0, 0.25, 0.5, 0.75, 1.0}
	encoded := EncodeColorsV2(colors)
	decoded := DecodeColorsV2(encoded)

	const tolerance = 1.0 / (0.15 * 255)
	for i := range colors {
		require.InDelta(t, colors[i], decoded[i], tolerance)
	}
}

func TestEncodeDecodeColorsV1_RoundTrip(t *testing.T) {
	colors := []float32{0, 0.5, 1.0}
	encoded := EncodeColorsV1(colors)
	decoded := DecodeColorsV1(encoded)

	for i := range colors {
		require.InDelta(t, colors[i], decoded[i], 1.0/255)
	}
}
