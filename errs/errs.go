// Package errs defines the sentinel error values returned across the spz
// module's core packages (quant, coord, scene, codec) and the root facade.
//
// Every sentinel below maps to exactly one of the five kinds named at the
// API boundary: IoError, DecodeError, EncodeError, ShapeError, and
// UnsupportedVersion. Call sites wrap a sentinel with fmt.Errorf("%w: ...",
// ...) to attach detail without losing errors.Is comparability.
//
// The core never logs. Every failure is returned upward as an error value;
// callers (including the root facade) decide how to surface it.
package errs

import "errors"

// Structural/decode errors: bad container bytes. No partial Scene is ever
// constructed when one of these is returned.
var (
	ErrShortInput       = errors.New("spz: input too short to contain a header")
	ErrBadMagic         = errors.New("spz: bad magic number")
	ErrUnknownVersion   = errors.New("spz: unknown container version")
	ErrTruncatedPayload = errors.New("spz: declared sizes exceed remaining bytes")
	ErrGzip             = errors.New("spz: gzip stream error")
	ErrInvalidHeader    = errors.New("spz: invalid header")
	ErrEmptyPayload     = errors.New("spz: num_points is zero but payload is non-empty")
)

// Semantic errors: a Scene's shape or field values are invalid.
var (
	ErrShapeMismatch         = errors.New("spz: array length does not match num_points")
	ErrInvalidSHWidth        = errors.New("spz: spherical harmonics width does not match sh_degree")
	ErrInvalidSHDegree       = errors.New("spz: sh_degree out of range, must be 0..3")
	ErrInvalidFractionalBits = errors.New("spz: fractional_bits out of range, must be 0..24")
	ErrNonFinite             = errors.New("spz: non-finite value in scene arrays")
)

// Encode/version errors.
var (
	ErrUnsupportedVersion = errors.New("spz: unsupported write version")
	ErrReadOnlyVersion    = errors.New("spz: version is read-only")
)

// ErrDecodeFailed is wrapped around any of the structural errors above when
// surfaced at the facade boundary, so that callers matching on "Failed" (the
// convention spec.md §8 scenario 7 exercises) always find it in the message.
var ErrDecodeFailed = errors.New("spz: decode failed")

// ErrEncodeFailed mirrors ErrDecodeFailed for the encode path.
var ErrEncodeFailed = errors.New("spz: encode failed")
