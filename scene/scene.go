// Package scene holds the in-memory Gaussian splat data model: flat,
// columnar float32 arrays plus the small header fields that describe their
// shape (spec.md §3). Scene is the type every other package in this module
// converges on — quant and coord operate on its arrays directly, codec
// produces and consumes it at the container boundary.
package scene

import (
	"fmt"

	"github.com/splatcodec/spz/errs"
)

// Version identifies the on-disk .spz container revision a Scene was
// decoded from, or will be encoded as.
type Version uint8

const (
	V1 Version = 1
	V2 Version = 2
	V3 Version = 3
)

// String implements fmt.Stringer.
func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	case V3:
		return "v3"
	default:
		return fmt.Sprintf("v?(%d)", uint8(v))
	}
}

// Scene is a decoded Gaussian splat point cloud: NumPoints points, each
// carrying a position, a log-scale, a rotation quaternion, an opacity
// logit, a base color, and SHDegree bands of spherical-harmonic color
// coefficients. Every slice is owned exclusively by the Scene; nothing in
// this module aliases or pools them (spec.md §3 "Scene exclusively owns
// its six arrays").
type Scene struct {
	Version        Version
	NumPoints      int
	SHDegree       int
	Antialiased    bool
	FractionalBits int

	// Positions is x,y,z per point (len == NumPoints*3).
	Positions []float32
	// Scales is log-scale x,y,z per point (len == NumPoints*3).
	Scales []float32
	// Rotations is w,x,y,z per point (len == NumPoints*4).
	Rotations []float32
	// Alphas is an opacity logit per point (len == NumPoints).
	Alphas []float32
	// Colors is base RGB per point (len == NumPoints*3).
	Colors []float32
	// SphericalHarmonics is coefficient-major, 3 channels per coefficient,
	// SHCoeffCount(SHDegree) coefficients per point (len ==
	// NumPoints*SHCoeffCount(SHDegree)*3).
	SphericalHarmonics []float32
}

// DefaultFractionalBits is the fractional-bits value used when a caller
// doesn't specify one (spec.md §4.1).
const DefaultFractionalBits = 12

// New builds a Scene from its component arrays and validates their shapes
// against numPoints and shDegree via CheckSizes. The returned error, if
// any, wraps errs.ErrShapeMismatch or one of its siblings.
func New(version Version, numPoints, shDegree int, fractionalBits int, antialiased bool,
	positions, scales, rotations, alphas, colors, sh []float32,
) (*Scene, error) {
	s := &Scene{
		Version:            version,
		NumPoints:          numPoints,
		SHDegree:           shDegree,
		Antialiased:        antialiased,
		FractionalBits:     fractionalBits,
		Positions:          positions,
		Scales:             scales,
		Rotations:          rotations,
		Alphas:             alphas,
		Colors:             colors,
		SphericalHarmonics: sh,
	}

	if err := s.CheckSizes(); err != nil {
		return nil, err
	}

	return s, nil
}

// SHCoeffCount returns the number of spherical-harmonics coefficients a
// point carries at the given band degree (0 through 3).
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

// CheckSizes validates that every array's length matches NumPoints and
// SHDegree, and that SHDegree and FractionalBits fall in their legal
// ranges. It is the single place shape invariants are enforced; New (and
// through it codec.Decode) and codec.Encode route through it.
func (s *Scene) CheckSizes() error {
	if s.SHDegree < 0 || s.SHDegree > 3 {
		return fmt.Errorf("%w: sh_degree %d outside [0,3]", errs.ErrInvalidSHDegree, s.SHDegree)
	}

	if s.FractionalBits < 0 || s.FractionalBits > 24 {
		return fmt.Errorf("%w: fractional_bits %d outside [0,24]", errs.ErrInvalidFractionalBits, s.FractionalBits)
	}

	n := s.NumPoints
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"positions", len(s.Positions), n * 3},
		{"scales", len(s.Scales), n * 3},
		{"rotations", len(s.Rotations), n * 4},
		{"alphas", len(s.Alphas), n},
		{"colors", len(s.Colors), n * 3},
		{"spherical_harmonics", len(s.SphericalHarmonics), n * SHCoeffCount(s.SHDegree) * 3},
	}

	for _, c := range checks {
		if c.name == "spherical_harmonics" && c.got != c.want {
			return fmt.Errorf("%w: spherical_harmonics width %d doesn't match sh_degree %d (want %d)",
				errs.ErrInvalidSHWidth, c.got, s.SHDegree, c.want)
		}
		if c.got != c.want {
			return fmt.Errorf("%w: %s has %d elements, want %d for %d points",
				errs.ErrShapeMismatch, c.name, c.got, c.want, n)
		}
	}

	return nil
}
