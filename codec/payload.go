package codec

import (
	"github.com/splatcodec/spz/internal/pool"
	"github.com/splatcodec/spz/quant"
	"github.com/splatcodec/spz/scene"
)

// rotationBytesPerPoint returns the per-point byte width of the rotation
// block for a given container version: 4 bytes (one per quaternion
// component) for v1, 3 bytes ("smallest three") for v2 and v3.
func rotationBytesPerPoint(version uint32) int {
	if version == 1 {
		return quant.RotationBytesV1
	}
	return quant.RotationBytesV23
}

// packPayload quantizes s's arrays into the fixed wire order positions,
// alphas, colors, scales, rotations, spherical_harmonics (spec.md §4.4),
// assembling them into a pooled scratch buffer. The caller must return the
// buffer to the pool (pool.PutPayloadBuffer) once it has been consumed
// (e.g. written into the gzip stream).
func packPayload(s *scene.Scene) *pool.Buffer {
	buf := pool.GetPayloadBuffer()

	positions := quant.EncodePositions(s.Positions, s.FractionalBits)
	buf.Grow(len(positions))
	buf.Write(positions)

	alphas := quant.EncodeAlphas(s.Alphas)
	buf.Grow(len(alphas))
	buf.Write(alphas)

	var colors []byte
	if s.Version == scene.V1 {
		colors = quant.EncodeColorsV1(s.Colors)
	} else {
		colors = quant.EncodeColorsV2(s.Colors)
	}
	buf.Grow(len(colors))
	buf.Write(colors)

	scales := quant.EncodeScales(s.Scales)
	buf.Grow(len(scales))
	buf.Write(scales)

	var rotations []byte
	if s.Version == scene.V1 {
		rotations = quant.EncodeRotationsV1(s.Rotations)
	} else {
		rotations = quant.EncodeRotationsSmallestThree(s.Rotations)
	}
	buf.Grow(len(rotations))
	buf.Write(rotations)

	shWidth := quant.SHCoeffCount(s.SHDegree) * 3
	buf.Grow(len(s.SphericalHarmonics))
	for off := 0; off < len(s.SphericalHarmonics); off += shWidth {
		point := s.SphericalHarmonics[off : off+shWidth]
		buf.Write(quant.EncodeSH(point, int(s.Version)))
	}

	return buf
}

// unpackPayload splits data into its six fixed-order sections per h and
// dequantizes each into float32 arrays.
func unpackPayload(h Header, data []byte) (positions, scales, rotations, alphas, colors, sh []float32) {
	n := int(h.NumPoints)
	shDegree := int(h.SHDegree)
	shWidth := quant.SHCoeffCount(shDegree) * 3
	rotBytes := rotationBytesPerPoint(h.Version)

	off := 0

	positionBytes := n * quant.PositionBytesPerPoint
	positions = quant.DecodePositions(data[off:off+positionBytes], n, int(h.FractionalBits))
	off += positionBytes

	alphaBytes := n
	alphas = quant.DecodeAlphas(data[off : off+alphaBytes])
	off += alphaBytes

	colorBytes := n * 3
	if h.Version == 1 {
		colors = quant.DecodeColorsV1(data[off : off+colorBytes])
	} else {
		colors = quant.DecodeColorsV2(data[off : off+colorBytes])
	}
	off += colorBytes

	scaleBytes := n * 3
	scales = quant.DecodeScales(data[off : off+scaleBytes])
	off += scaleBytes

	rotationBytes := n * rotBytes
	if h.Version == 1 {
		rotations = quant.DecodeRotationsV1(data[off : off+rotationBytes])
	} else {
		rotations = quant.DecodeRotationsSmallestThree(data[off : off+rotationBytes])
	}
	off += rotationBytes

	shBytes := n * shWidth
	sh = make([]float32, 0, shBytes)
	for pointOff := off; pointOff < off+shBytes; pointOff += shWidth {
		decoded := quant.DecodeSH(data[pointOff:pointOff+shWidth], int(h.Version))
		sh = append(sh, decoded...)
	}

	return positions, scales, rotations, alphas, colors, sh
}

// payloadSize returns the exact number of uncompressed payload bytes h
// describes, used to validate the decompressed payload length before
// slicing it up.
func payloadSize(h Header) int {
	n := int(h.NumPoints)
	shWidth := quant.SHCoeffCount(int(h.SHDegree)) * 3

	return n*quant.PositionBytesPerPoint + n + n*3 + n*3 + n*rotationBytesPerPoint(h.Version) + n*shWidth
}
