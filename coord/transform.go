package coord

import "math"

// Transform is the signed diagonal matrix T = M_B * M_A^-1 that converts a
// vector expressed in basis A into the equivalent vector expressed in basis
// B (spec.md §4.2). Every named CoordinateSystem assigns the same world axis
// to the same slot (x stays ±X, y stays ±Y, z stays ±Z; see basis.go), so T
// never permutes components: it only negates them. SX, SY, SZ hold those
// per-axis signs.
type Transform struct {
	SX, SY, SZ int8
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1, SZ: 1}
}

// IsIdentity reports whether t leaves every component unchanged.
func (t Transform) IsIdentity() bool {
	return t.SX == 1 && t.SY == 1 && t.SZ == 1
}

// Derive computes the transform that converts a scene from basis `from` to
// basis `to`. Either side being Unspecified yields the identity transform,
// per spec.md §6 ("no coordinate conversion is attempted").
func Derive(from, to CoordinateSystem) Transform {
	fx, fy, fz, fok := from.axisSigns()
	tx, ty, tz, tok := to.axisSigns()
	if !fok || !tok {
		return Identity()
	}

	return Transform{SX: fx * tx, SY: fy * ty, SZ: fz * tz}
}

// ApplyPositions negates position components in place according to t.
// positions is a flat x,y,z,x,y,z,... array.
func (t Transform) ApplyPositions(positions []float32) {
	if t.IsIdentity() {
		return
	}

	sx, sy, sz := float32(t.SX), float32(t.SY), float32(t.SZ)
	for i := 0; i+2 < len(positions); i += 3 {
		positions[i] *= sx
		positions[i+1] *= sy
		positions[i+2] *= sz
	}
}

// ApplyScales is a no-op: every named basis keeps each axis in its own
// slot, so log-scale magnitudes never need to move between x, y, and z. The
// method exists so callers can apply a Transform uniformly across every
// scene field without special-casing scales.
func (t Transform) ApplyScales(_ []float32) {}

// ApplyRotations conjugates each quaternion's rotation matrix by t: for a
// rotation matrix R, the rotation expressed in the new basis is T*R*T^-1.
// Because T is a diagonal sign matrix, T^-1 == T, and the conjugation
// reduces to negating R's off-diagonal entries in pairs: R'[i][j] =
// t[i]*t[j]*R[i][j]. The result is always a proper rotation (determinant
// 1) even when t itself is a reflection, since conjugation preserves
// determinant. rotations is a flat w,x,y,z,w,x,y,z,... array.
func (t Transform) ApplyRotations(rotations []float32) {
	if t.IsIdentity() {
		return
	}

	signs := [3]float64{float64(t.SX), float64(t.SY), float64(t.SZ)}
	for i := 0; i+3 < len(rotations); i += 4 {
		w := float64(rotations[i])
		x := float64(rotations[i+1])
		y := float64(rotations[i+2])
		z := float64(rotations[i+3])

		m := quatToMatrix(w, x, y, z)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				m[r][c] *= signs[r] * signs[c]
			}
		}

		w, x, y, z = matrixToQuat(m)
		rotations[i] = float32(w)
		rotations[i+1] = float32(x)
		rotations[i+2] = float32(y)
		rotations[i+3] = float32(z)
	}
}

// shTermParity holds, per coefficient within a band, which of x, y, z the
// coefficient's real spherical-harmonics basis polynomial depends on with
// odd degree. A coefficient flips sign exactly when an odd-degree axis is
// negated (spec.md §4.2: "degree-l coefficients acquire parity (-1)^l under
// reflection" generalizes, per term, to this per-axis parity).
var shTermParity = [3][]struct{ x, y, z bool }{
	1: { // band 1: y, z, x
		{x: false, y: true, z: false},
		{x: false, y: false, z: true},
		{x: true, y: false, z: false},
	},
	2: { // band 2: xy, yz, z^2-term, xz, x^2-y^2
		{x: true, y: true, z: false},
		{x: false, y: true, z: true},
		{x: false, y: false, z: false},
		{x: true, y: false, z: true},
		{x: false, y: false, z: false},
	},
}

var shBand3Parity = []struct{ x, y, z bool }{
	{x: false, y: true, z: false},
	{x: true, y: true, z: true},
	{x: false, y: true, z: false},
	{x: false, y: false, z: true},
	{x: true, y: false, z: false},
	{x: false, y: false, z: true},
	{x: true, y: false, z: false},
}

// ApplySH flips per-coefficient signs according to t. coeffs holds every
// point's coefficients back to back; within a point they are laid out
// coefficient-major, 3 channels per coefficient (R,G,B), matching the
// payload order quant.EncodeSH expects.
func (t Transform) ApplySH(coeffs []float32, degree int) {
	if t.IsIdentity() || degree < 1 {
		return
	}

	signs := [3]float32{float32(t.SX), float32(t.SY), float32(t.SZ)}

	apply := func(base int, parity struct{ x, y, z bool }) {
		sign := float32(1)
		if parity.x {
			sign *= signs[0]
		}
		if parity.y {
			sign *= signs[1]
		}
		if parity.z {
			sign *= signs[2]
		}
		if sign == 1 {
			return
		}
		coeffs[base] *= sign
		coeffs[base+1] *= sign
		coeffs[base+2] *= sign
	}

	stride := ((degree+1)*(degree+1) - 1) * 3
	for p := 0; p+stride <= len(coeffs); p += stride {
		for band := 1; band <= 2 && band <= degree; band++ {
			offset := 0
			if band == 2 {
				offset = 3
			}
			for i, parity := range shTermParity[band] {
				apply(p+(offset+i)*3, parity)
			}
		}

		if degree >= 3 {
			for i, parity := range shBand3Parity {
				apply(p+(8+i)*3, parity)
			}
		}
	}
}

// quatToMatrix converts a unit quaternion (w,x,y,z) to a row-major rotation
// matrix.
func quatToMatrix(w, x, y, z float64) [3][3]float64 {
	return [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// matrixToQuat converts a proper rotation matrix to a unit quaternion using
// Shepperd's method, picking the numerically largest branch.
func matrixToQuat(m [3][3]float64) (w, x, y, z float64) {
	tr := m[0][0] + m[1][1] + m[2][2]

	switch {
	case tr > 0:
		s := math.Sqrt(tr+1.0) * 2
		w = 0.25 * s
		x = (m[2][1] - m[1][2]) / s
		y = (m[0][2] - m[2][0]) / s
		z = (m[1][0] - m[0][1]) / s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1.0+m[0][0]-m[1][1]-m[2][2]) * 2
		w = (m[2][1] - m[1][2]) / s
		x = 0.25 * s
		y = (m[0][1] + m[1][0]) / s
		z = (m[0][2] + m[2][0]) / s
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1.0+m[1][1]-m[0][0]-m[2][2]) * 2
		w = (m[0][2] - m[2][0]) / s
		x = (m[0][1] + m[1][0]) / s
		y = 0.25 * s
		z = (m[1][2] + m[2][1]) / s
	default:
		s := math.Sqrt(1.0+m[2][2]-m[0][0]-m[1][1]) * 2
		w = (m[1][0] - m[0][1]) / s
		x = (m[0][2] + m[2][0]) / s
		y = (m[1][2] + m[2][1]) / s
		z = 0.25 * s
	}

	return w, x, y, z
}
