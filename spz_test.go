package spz

import (
	"errors"
	"strings"
	"testing"

	"github.com/splatcodec/spz/coord"
	"github.com/splatcodec/spz/errs"
	"github.com/splatcodec/spz/scene"
	"github.com/stretchr/testify/require"
)

func threePointScene(t *testing.T) *scene.Scene {
	t.Helper()

	s, err := scene.New(
		scene.V2, 3, 0, scene.DefaultFractionalBits, false,
		[]float32{1, 2, 3, 4, 5, 6, 7, 8, 9},
		[]float32{-5, -5, -5, -5, -5, -5, -5, -5, -5},
		[]float32{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
		[]float32{0, 0, 0},
		[]float32{0, 0, 0, 0, 0, 0, 0, 0, 0},
		nil,
	)
	require.NoError(t, err)

	return s
}

func TestScenario1_IdentityRoundTrip(t *testing.T) {
	s := threePointScene(t)

	data, err := ToBytes(s)
	require.NoError(t, err)

	got, err := FromBytes(data)
	require.NoError(t, err)

	for i := range s.Positions {
		require.InDelta(t, s.Positions[i], got.Positions[i], 2.4e-4)
	}
}

func TestScenario2_HeaderOnlyRead(t *testing.T) {
	s, err := scene.New(
		scene.V3, 25, 0, scene.DefaultFractionalBits, false,
		make([]float32, 25*3), make([]float32, 25*3), make([]float32, 25*4),
		make([]float32, 25), make([]float32, 25*3), nil,
	)
	require.NoError(t, err)

	dir := t.TempDir()
	path := dir + "/scene.spz"
	require.NoError(t, Save(s, path))

	h, err := ReadHeader(path)
	require.NoError(t, err)
	require.Equal(t, uint32(25), h.NumPoints)
	require.Equal(t, uint32(3), h.Version)
	require.Equal(t, uint8(0), h.SHDegree)
	require.Equal(t, uint8(scene.DefaultFractionalBits), h.FractionalBits)
	require.False(t, h.Antialiased)
	require.True(t, h.IsValid())
}

func TestScenario3_CoordIdentityIsBitExact(t *testing.T) {
	s := threePointScene(t)
	want := append([]float32(nil), s.Positions...)

	ConvertCoordinates(s, coord.Unspecified, coord.Unspecified)
	require.Equal(t, want, s.Positions)
}

func TestScenario4_CoordNontrivialChangesPositions(t *testing.T) {
	s := &scene.Scene{NumPoints: 1, Positions: []float32{1, 0, 0}}

	ConvertCoordinates(s, coord.RUB, coord.RDF)
	require.NotEqual(t, []float32{1, 0, 0}, s.Positions)
}

func TestScenario5_SinglePointBBoxCenter(t *testing.T) {
	s := &scene.Scene{NumPoints: 1, Positions: []float32{5, 10, 15}}

	center := s.BoundingBox().Center()
	require.InDelta(t, 5, center[0], 0.1)
	require.InDelta(t, 10, center[1], 0.1)
	require.InDelta(t, 15, center[2], 0.1)
}

func TestScenario6_SHWidthEnforcementFailsAtConstruction(t *testing.T) {
	_, err := scene.New(
		scene.V2, 1, 2, scene.DefaultFractionalBits, false,
		[]float32{0, 0, 0},
		[]float32{0, 0, 0},
		[]float32{1, 0, 0, 0},
		[]float32{0},
		[]float32{0, 0, 0},
		make([]float32, 3*3), // width for degree 1, not degree 2
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrShapeMismatch) || errors.Is(err, errs.ErrInvalidSHWidth))
}

func TestScenario7_InvalidBytesFailWithFailedMessage(t *testing.T) {
	_, err := FromBytes([]byte{})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "Failed") || strings.Contains(err.Error(), "failed"))

	_, err = FromBytes([]byte("not valid spz data"))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "Failed") || strings.Contains(err.Error(), "failed"))
}

func TestSaveLoad_RoundTripThroughFilesystem(t *testing.T) {
	s := threePointScene(t)
	dir := t.TempDir()
	path := dir + "/scene.spz"

	require.NoError(t, Save(s, path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, s.NumPoints, got.NumPoints)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load("/nonexistent/path/scene.spz")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDecodeFailed))
}
