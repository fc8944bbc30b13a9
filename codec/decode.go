package codec

import (
	"fmt"

	"github.com/splatcodec/spz/errs"
	"github.com/splatcodec/spz/internal/options"
	"github.com/splatcodec/spz/scene"
)

// DecodeOption configures Decode.
type DecodeOption = options.Option[*decodeConfig]

type decodeConfig struct {
	// no knobs yet; reserved for future strict-mode/header-only toggles.
}

// Decode parses a complete .spz byte stream into a Scene.
func Decode(data []byte, opts ...DecodeOption) (*scene.Scene, error) {
	cfg := &decodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	header, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	payload, err := gzipDecompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	want := payloadSize(header)
	if header.NumPoints == 0 && len(payload) > 0 {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, errs.ErrEmptyPayload)
	}
	if len(payload) < want {
		return nil, fmt.Errorf("%w: %w (have %d bytes, need %d)",
			errs.ErrDecodeFailed, errs.ErrTruncatedPayload, len(payload), want)
	}

	positions, scales, rotations, alphas, colors, sh := unpackPayload(header, payload)

	s, err := scene.New(
		scene.Version(header.Version),
		int(header.NumPoints),
		int(header.SHDegree),
		int(header.FractionalBits),
		header.Antialiased,
		positions, scales, rotations, alphas, colors, sh,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	return s, nil
}

// DecodeHeader parses only the 16-byte header, without decompressing or
// dequantizing the payload (spec.md §8 scenario 2).
func DecodeHeader(data []byte) (Header, error) {
	h, err := Parse(data)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", errs.ErrDecodeFailed, err)
	}

	return h, nil
}
