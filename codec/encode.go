package codec

import (
	"fmt"
	"math"

	"github.com/splatcodec/spz/errs"
	"github.com/splatcodec/spz/internal/options"
	"github.com/splatcodec/spz/internal/pool"
	"github.com/splatcodec/spz/scene"
)

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

type encodeConfig struct {
	allowV1 bool
}

// AllowLegacyV1Write permits Encode to write a v1 container. spec.md §4.4
// marks v1 read-only and lets the write path refuse it; Encode refuses by
// default and this option opts back in for callers that must produce a v1
// file for a legacy reader.
func AllowLegacyV1Write() EncodeOption {
	return options.NoError(func(c *encodeConfig) { c.allowV1 = true })
}

// Encode serializes s into the complete .spz byte stream: header, then
// gzip-wrapped quantized payload.
func Encode(s *scene.Scene, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncodeFailed, err)
	}

	if err := s.CheckSizes(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncodeFailed, err)
	}

	if s.Version < scene.V1 || s.Version > scene.V3 {
		return nil, fmt.Errorf("%w: %w version %d", errs.ErrEncodeFailed, errs.ErrUnsupportedVersion, s.Version)
	}

	if s.Version == scene.V1 && !cfg.allowV1 {
		return nil, fmt.Errorf("%w: %w, pass AllowLegacyV1Write to override", errs.ErrEncodeFailed, errs.ErrReadOnlyVersion)
	}

	if err := checkFinite(s); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncodeFailed, err)
	}

	header := FromScene(s)
	buf := packPayload(s)
	defer pool.PutPayloadBuffer(buf)

	compressed, err := gzipCompress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncodeFailed, err)
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

func checkFinite(s *scene.Scene) error {
	for _, field := range [][]float32{s.Positions, s.Scales, s.Rotations, s.Alphas, s.Colors, s.SphericalHarmonics} {
		for _, v := range field {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return errs.ErrNonFinite
			}
		}
	}

	return nil
}
