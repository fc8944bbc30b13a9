package coord

import "strings"

// CoordinateSystem names a signed-axis basis: a letter for left/right (the
// sign of the X axis), one for down/up (sign of Y), and one for back/front
// (sign of Z), plus Unspecified for "no transform requested" (spec.md §6).
type CoordinateSystem uint8

const (
	Unspecified CoordinateSystem = iota
	LDB
	RDB
	LUB
	RUB
	LDF
	RDF
	LUF
	RUF
)

// axisSigns returns the (signX, signY, signZ) triple spec.md §4.2 assigns to
// each named basis: +1 for R/U/F, -1 for L/D/B. ok is false for Unspecified,
// which carries no axis signs of its own.
func (c CoordinateSystem) axisSigns() (sx, sy, sz int8, ok bool) {
	switch c {
	case LDB:
		return -1, -1, -1, true
	case RDB:
		return 1, -1, -1, true
	case LUB:
		return -1, 1, -1, true
	case RUB:
		return 1, 1, -1, true
	case LDF:
		return -1, -1, 1, true
	case RDF:
		return 1, -1, 1, true
	case LUF:
		return -1, 1, 1, true
	case RUF:
		return 1, 1, 1, true
	default:
		return 0, 0, 0, false
	}
}

// ShortName returns the uppercase 3-letter code (e.g. "RUB"), or
// "UNSPECIFIED".
func (c CoordinateSystem) ShortName() string {
	switch c {
	case LDB:
		return "LDB"
	case RDB:
		return "RDB"
	case LUB:
		return "LUB"
	case RUB:
		return "RUB"
	case LDF:
		return "LDF"
	case RDF:
		return "RDF"
	case LUF:
		return "LUF"
	case RUF:
		return "RUF"
	default:
		return "UNSPECIFIED"
	}
}

// String returns the dashed display name (e.g. "Right-Up-Back"), matching
// the convention the Python bindings' repr/str use (see
// original_source/.../test_spz.py).
func (c CoordinateSystem) String() string {
	names := [3]string{}
	sx, sy, sz, ok := c.axisSigns()
	if !ok {
		return "Unspecified"
	}

	names[0] = lrName(sx)
	names[1] = udName(sy)
	names[2] = fbName(sz)

	return strings.Join(names[:], "-")
}

func lrName(sign int8) string {
	if sign > 0 {
		return "Right"
	}

	return "Left"
}

func udName(sign int8) string {
	if sign > 0 {
		return "Up"
	}

	return "Down"
}

func fbName(sign int8) string {
	if sign > 0 {
		return "Front"
	}

	return "Back"
}

// FromString parses a coordinate system name. It accepts the 3-letter form
// case-insensitively ("rub", "RUB"), underscore form ("RIGHT_UP_BACK"), and
// dashed form ("Right-Up-Back"). Any unrecognized string maps to
// Unspecified, matching spec.md §6's "unknown strings map to UNSPECIFIED".
func FromString(s string) CoordinateSystem {
	normalized := strings.ToUpper(strings.NewReplacer("-", "", "_", "").Replace(s))

	switch normalized {
	case "LDB", "LEFTDOWNBACK":
		return LDB
	case "RDB", "RIGHTDOWNBACK":
		return RDB
	case "LUB", "LEFTUPBACK":
		return LUB
	case "RUB", "RIGHTUPBACK":
		return RUB
	case "LDF", "LEFTDOWNFRONT":
		return LDF
	case "RDF", "RIGHTDOWNFRONT":
		return RDF
	case "LUF", "LEFTUPFRONT":
		return LUF
	case "RUF", "RIGHTUPFRONT":
		return RUF
	default:
		return Unspecified
	}
}
