package scene

import (
	"errors"
	"testing"

	"github.com/splatcodec/spz/errs"
	"github.com/stretchr/testify/require"
)

func oneValidPoint() (positions, scales, rotations, alphas, colors, sh []float32) {
	return []float32{1, 2, 3},
		[]float32{-1, -1, -1},
		[]float32{1, 0, 0, 0},
		[]float32{0},
		[]float32{0.5, 0.5, 0.5},
		nil
}

func TestNew_ValidSinglePoint(t *testing.T) {
	positions, scales, rotations, alphas, colors, sh := oneValidPoint()

	s, err := New(V2, 1, 0, DefaultFractionalBits, false, positions, scales, rotations, alphas, colors, sh)
	require.NoError(t, err)
	require.Equal(t, 1, s.NumPoints)
}

func TestCheckSizes_RejectsShapeMismatch(t *testing.T) {
	positions, scales, rotations, alphas, colors, sh := oneValidPoint()
	positions = append(positions, 99) // now length 4, not a multiple of 3 for numPoints=1

	_, err := New(V2, 1, 0, DefaultFractionalBits, false, positions, scales, rotations, alphas, colors, sh)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestCheckSizes_RejectsSHWidthMismatch(t *testing.T) {
	positions, scales, rotations, alphas, colors, _ := oneValidPoint()
	wrongWidthSH := make([]float32, 5) // sh_degree=1 wants 3 coeffs * 3 channels = 9

	_, err := New(V2, 1, 1, DefaultFractionalBits, false, positions, scales, rotations, alphas, colors, wrongWidthSH)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrShapeMismatch) || errors.Is(err, errs.ErrInvalidSHWidth))
}

func TestNew_AcceptsCorrectSHWidthForNonZeroDegree(t *testing.T) {
	positions, scales, rotations, alphas, colors, _ := oneValidPoint()
	sh := make([]float32, 3*3) // sh_degree=1: 3 coeffs * 3 channels per point

	s, err := New(V2, 1, 1, DefaultFractionalBits, false, positions, scales, rotations, alphas, colors, sh)
	require.NoError(t, err)
	require.Len(t, s.SphericalHarmonics, 9)
}

func TestCheckSizes_RejectsOutOfRangeSHDegree(t *testing.T) {
	positions, scales, rotations, alphas, colors, sh := oneValidPoint()

	_, err := New(V2, 1, 4, DefaultFractionalBits, false, positions, scales, rotations, alphas, colors, sh)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidSHDegree))
}

func TestSHCoeffCount(t *testing.T) {
	require.Equal(t, 0, SHCoeffCount(0))
	require.Equal(t, 3, SHCoeffCount(1))
	require.Equal(t, 8, SHCoeffCount(2))
	require.Equal(t, 15, SHCoeffCount(3))
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "v1", V1.String())
	require.Equal(t, "v2", V2.String())
	require.Equal(t, "v3", V3.String())
}
