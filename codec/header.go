// Package codec implements the .spz container: a 16-byte header followed by
// a gzip-compressed, version-dependent payload of quantized point arrays
// (spec.md §4.4). It is the seam between scene.Scene and raw bytes; quant
// supplies the per-field codecs, coord is applied by callers before or
// after, never inside codec itself.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/splatcodec/spz/errs"
	"github.com/splatcodec/spz/scene"
)

// HeaderSize is the fixed byte length of a .spz header.
const HeaderSize = 16

// Magic is the fixed 4-byte magic number ("NGSP" read little-endian),
// spec.md §4.4.
const Magic uint32 = 0x5053474e

const flagAntialiased = 1 << 0

// Header is the 16-byte fixed structure at the start of every .spz
// payload, already parsed out of (or about to be serialized into) its
// little-endian wire form.
type Header struct {
	Magic          uint32
	Version        uint32
	NumPoints      uint32
	SHDegree       uint8
	FractionalBits uint8
	Antialiased    bool
	// Reserved is always zero on write and ignored on read; no coordinate
	// system or other metadata is persisted in it (see SPEC_FULL.md notes
	// on the reserved-byte open question).
	Reserved uint8
}

// Parse reads a Header from the first HeaderSize bytes of data.
func Parse(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrShortInput, len(data), HeaderSize)
	}

	h := Header{
		Magic:          binary.LittleEndian.Uint32(data[0:4]),
		Version:        binary.LittleEndian.Uint32(data[4:8]),
		NumPoints:      binary.LittleEndian.Uint32(data[8:12]),
		SHDegree:       data[12],
		FractionalBits: data[13],
		Antialiased:    data[14]&flagAntialiased != 0,
		Reserved:       data[15],
	}

	if h.Magic != Magic {
		return Header{}, fmt.Errorf("%w: got 0x%08x, want 0x%08x", errs.ErrBadMagic, h.Magic, Magic)
	}

	if h.Version < 1 || h.Version > 3 {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnknownVersion, h.Version)
	}

	if !h.IsValid() {
		return Header{}, fmt.Errorf("%w: sh_degree=%d fractional_bits=%d reserved=%d",
			errs.ErrInvalidHeader, h.SHDegree, h.FractionalBits, h.Reserved)
	}

	return h, nil
}

// Bytes serializes h into its 16-byte little-endian wire form.
func (h Header) Bytes() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint32(buf[8:12], h.NumPoints)
	buf[12] = h.SHDegree
	buf[13] = h.FractionalBits

	var flags uint8
	if h.Antialiased {
		flags |= flagAntialiased
	}
	buf[14] = flags
	buf[15] = 0 // reserved, always zero on write

	return buf
}

// IsValid reports whether h has a recognized magic number and version, a
// legal sh_degree and fractional_bits, and clear reserved bits (spec.md
// §4.4). A Header returned by Parse is always valid; the method exists so
// callers that built a Header by other means (tests, future streaming
// readers) can check it explicitly.
func (h Header) IsValid() bool {
	return h.Magic == Magic &&
		h.Version >= 1 && h.Version <= 3 &&
		h.SHDegree <= 3 &&
		h.FractionalBits <= 24 &&
		h.Reserved == 0
}

// FromScene builds the wire Header describing s.
func FromScene(s *scene.Scene) Header {
	return Header{
		Magic:          Magic,
		Version:        uint32(s.Version),
		NumPoints:      uint32(s.NumPoints),
		SHDegree:       uint8(s.SHDegree),
		FractionalBits: uint8(s.FractionalBits),
		Antialiased:    s.Antialiased,
	}
}
