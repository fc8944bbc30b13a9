package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/splatcodec/spz/errs"
	"github.com/splatcodec/spz/scene"
	"github.com/stretchr/testify/require"
)

func twoPointScene(t *testing.T, version scene.Version, shDegree int) *scene.Scene {
	t.Helper()

	shWidth := 0
	switch shDegree {
	case 1:
		shWidth = 3
	case 2:
		shWidth = 8
	case 3:
		shWidth = 15
	}

	sh := make([]float32, 2*shWidth*3)
	for i := range sh {
		sh[i] = 0.01 * float32(i%7-3)
	}

	s, err := scene.New(
		version, 2, shDegree, scene.DefaultFractionalBits, true,
		[]float32{1.5, -2.25, 3.0, -0.5, 0.25, 10},
		[]float32{-1, -1, -1, 0, 0, 0},
		[]float32{1, 0, 0, 0, 0.7071068, 0.7071068, 0, 0},
		[]float32{-1, 2},
		[]float32{0.1, 0.2, 0.3, 0.9, 0.8, 0.7},
		sh,
	)
	require.NoError(t, err)

	return s
}

func TestEncodeDecode_IdentityRoundTrip(t *testing.T) {
	for _, version := range []scene.Version{scene.V1, scene.V2, scene.V3} {
		s := twoPointScene(t, version, 2)

		var opts []EncodeOption
		if version == scene.V1 {
			opts = append(opts, AllowLegacyV1Write())
		}
		data, err := Encode(s, opts...)
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)

		require.Equal(t, s.NumPoints, got.NumPoints)
		require.Equal(t, s.SHDegree, got.SHDegree)
		require.Equal(t, s.Version, got.Version)
		require.Equal(t, s.Antialiased, got.Antialiased)

		for i := range s.Positions {
			require.InDelta(t, s.Positions[i], got.Positions[i], 1.0/4096)
		}
	}
}

func TestDecode_HeaderOnlyRead(t *testing.T) {
	s := twoPointScene(t, scene.V2, 0)
	data, err := Encode(s)
	require.NoError(t, err)

	h, err := DecodeHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(2), h.NumPoints)
	require.Equal(t, uint32(2), h.Version)
}

func TestDecode_EmptyInputFailsWithFailedInMessage(t *testing.T) {
	_, err := Decode(nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDecodeFailed))
	require.True(t, strings.Contains(err.Error(), "Failed") || strings.Contains(err.Error(), "decode failed"))
}

func TestDecode_GarbageBytesFails(t *testing.T) {
	garbage := make([]byte, 64)
	for i := range garbage {
		garbage[i] = byte(i * 7)
	}

	_, err := Decode(garbage)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDecodeFailed))
}

func TestEncode_RejectsShapeMismatch(t *testing.T) {
	s := twoPointScene(t, scene.V2, 0)
	s.Positions = s.Positions[:3] // now mismatched with NumPoints=2

	_, err := Encode(s)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrEncodeFailed))
}

func TestEncode_RefusesV1WriteWithoutOverride(t *testing.T) {
	s := twoPointScene(t, scene.V1, 0)

	_, err := Encode(s)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrEncodeFailed))
	require.True(t, errors.Is(err, errs.ErrReadOnlyVersion))

	_, err = Encode(s, AllowLegacyV1Write())
	require.NoError(t, err)
}

func TestEncode_RejectsNonFiniteValues(t *testing.T) {
	s := twoPointScene(t, scene.V2, 0)
	var zero float32
	s.Positions[0] = 1 / zero // +Inf

	_, err := Encode(s)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrEncodeFailed))
	require.True(t, errors.Is(err, errs.ErrNonFinite))
}
