// Package spz is the facade for reading, writing, and converting .spz
// Gaussian splat scenes. It composes scene.Scene (the data model), codec
// (the binary container), and coord (coordinate-system conversion) into
// the small set of entry points most callers need: Load, Save, ToBytes,
// FromBytes, ReadHeader, and ConvertCoordinates.
//
// The facade never logs. Every failure is returned as an error wrapping one
// of errs.ErrDecodeFailed, errs.ErrEncodeFailed, or a more specific sentinel
// from errs — callers that need to distinguish IoError/DecodeError/
// EncodeError/ShapeError/UnsupportedVersion (spec.md §6) do so with
// errors.Is against the errs package.
package spz

import (
	"fmt"
	"io"
	"os"

	"github.com/splatcodec/spz/codec"
	"github.com/splatcodec/spz/coord"
	"github.com/splatcodec/spz/errs"
	"github.com/splatcodec/spz/internal/options"
	"github.com/splatcodec/spz/scene"
)

// assumedSourceCoordinateSystem is the basis Load infers a decoded scene was
// authored in, absent any other information, since no coordinate system is
// persisted in the container (SPEC_FULL.md §6, resolving spec.md §9's
// reserved-byte open question). It matches the common renderer convention:
// right-handed, Y up, Z back.
const assumedSourceCoordinateSystem = coord.RUB

// LoadOption configures Load and FromBytes.
type LoadOption = options.Option[*loadConfig]

type loadConfig struct {
	sourceCoordinateSystem coord.CoordinateSystem
	targetCoordinateSystem coord.CoordinateSystem
}

func newLoadConfig() *loadConfig {
	return &loadConfig{
		sourceCoordinateSystem: assumedSourceCoordinateSystem,
		targetCoordinateSystem: coord.Unspecified,
	}
}

// WithSourceCoordinateSystem overrides the basis Load/FromBytes assumes the
// decoded scene was authored in. Only meaningful together with
// WithTargetCoordinateSystem.
func WithSourceCoordinateSystem(cs coord.CoordinateSystem) LoadOption {
	return options.NoError(func(c *loadConfig) { c.sourceCoordinateSystem = cs })
}

// WithTargetCoordinateSystem requests that Load/FromBytes convert the
// decoded scene into cs before returning it. The default, coord.Unspecified,
// performs no conversion.
func WithTargetCoordinateSystem(cs coord.CoordinateSystem) LoadOption {
	return options.NoError(func(c *loadConfig) { c.targetCoordinateSystem = cs })
}

// SaveOption configures Save and ToBytes.
type SaveOption = options.Option[*saveConfig]

type saveConfig struct {
	targetCoordinateSystem coord.CoordinateSystem
	allowV1                bool
}

func newSaveConfig() *saveConfig {
	return &saveConfig{targetCoordinateSystem: coord.Unspecified}
}

// WithSaveCoordinateSystem requests that Save/ToBytes convert the scene from
// assumedSourceCoordinateSystem into cs before writing it. The default,
// coord.Unspecified, writes the scene's arrays unchanged.
func WithSaveCoordinateSystem(cs coord.CoordinateSystem) SaveOption {
	return options.NoError(func(c *saveConfig) { c.targetCoordinateSystem = cs })
}

// WithLegacyV1Write permits Save/ToBytes to write a v1 container, which
// codec.Encode otherwise refuses (spec.md §4.4 marks v1 read-only).
func WithLegacyV1Write() SaveOption {
	return options.NoError(func(c *saveConfig) { c.allowV1 = true })
}

// Load reads a .spz file from path and decodes it into a Scene.
func Load(path string, opts ...LoadOption) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	return FromBytes(data, opts...)
}

// FromBytes decodes a complete in-memory .spz byte stream into a Scene.
func FromBytes(data []byte, opts ...LoadOption) (*scene.Scene, error) {
	cfg := newLoadConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	s, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	if cfg.targetCoordinateSystem != coord.Unspecified {
		ConvertCoordinates(s, cfg.sourceCoordinateSystem, cfg.targetCoordinateSystem)
	}

	return s, nil
}

// Save encodes s and writes it to path.
func Save(s *scene.Scene, path string, opts ...SaveOption) error {
	data, err := ToBytes(s, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrEncodeFailed, err)
	}

	return nil
}

// ToBytes encodes s into a complete in-memory .spz byte stream.
func ToBytes(s *scene.Scene, opts ...SaveOption) ([]byte, error) {
	cfg := newSaveConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncodeFailed, err)
	}

	if cfg.targetCoordinateSystem != coord.Unspecified {
		ConvertCoordinates(s, assumedSourceCoordinateSystem, cfg.targetCoordinateSystem)
	}

	var encOpts []codec.EncodeOption
	if cfg.allowV1 {
		encOpts = append(encOpts, codec.AllowLegacyV1Write())
	}

	return codec.Encode(s, encOpts...)
}

// ReadHeader reads only the 16-byte header of the .spz file at path,
// without decompressing or dequantizing its payload (spec.md §8 scenario
// 2).
func ReadHeader(path string) (codec.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return codec.Header{}, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}
	defer f.Close()

	data := make([]byte, codec.HeaderSize)
	n, err := io.ReadFull(f, data)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return codec.Header{}, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	return codec.DecodeHeader(data[:n])
}

// ConvertCoordinates transforms s's positions, rotations, and spherical
// harmonics in place from basis `from` to basis `to`. Scales are unaffected
// (coord.Transform.ApplyScales is a documented no-op for every named
// basis). Converting between an identical pair, or involving
// coord.Unspecified, is a bit-exact no-op.
func ConvertCoordinates(s *scene.Scene, from, to coord.CoordinateSystem) {
	transform := coord.Derive(from, to)
	if transform.IsIdentity() {
		return
	}

	transform.ApplyPositions(s.Positions)
	transform.ApplyRotations(s.Rotations)
	transform.ApplyScales(s.Scales)
	transform.ApplySH(s.SphericalHarmonics, s.SHDegree)
}
