package math4

import "math"

// Mat4 is a 4x4 matrix stored column-major, m[col*4+row].
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// Poses are expected to be rigid: an orthonormal rotation block plus a
// translation in the last column.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// RotationY is yaw, about the vertical axis.
func RotationY(radians float64) Mat4 {
	m := Identity()
	c, s := math.Cos(radians), math.Sin(radians)
	m[0] = c
	m[8] = s
	m[2] = -s
	m[10] = c
	return m
}

// RotationX is pitch, about the horizontal axis.
func RotationX(radians float64) Mat4 {
	m := Identity()
	c, s := math.Cos(radians), math.Sin(radians)
	m[5], m[9] = c, -s
	m[6], m[10] = s, c
	return m
}

// RotationZ is roll, about the forward axis.
func RotationZ(radians float64) Mat4 {
	m := Identity()
	c, s := math.Cos(radians), math.Sin(radians)
	m[0], m[4] = c, -s
	m[1], m[5] = s, c
	return m
}

func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mul returns m·b. The result applies b first, then m.
func (m Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[0*4+row]*b[c*4+0] +
				m[1*4+row]*b[c*4+1] +
				m[2*4+row]*b[c*4+2] +
				m[3*4+row]*b[c*4+3]
		}
	}
	return r
}

// InverseRigid inverts a rotation+translation by transposing the rotation
// and pushing the negated translation through it. The result is wrong for
// matrices with scale or shear.
func (m Mat4) InverseRigid() Mat4 {
	var inv Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[c*4+r] = m[r*4+c]
		}
	}

	inv[12] = -(inv[0]*m[12] + inv[4]*m[13] + inv[8]*m[14])
	inv[13] = -(inv[1]*m[12] + inv[5]*m[13] + inv[9]*m[14])
	inv[14] = -(inv[2]*m[12] + inv[6]*m[13] + inv[10]*m[14])
	inv[15] = 1.0
	return inv
}

// Position is the translation column as a point.
func (m Mat4) Position() Vec4 {
	return Point(m[12], m[13], m[14])
}

// WithoutRotation keeps the translation and resets everything else to
// identity.
func (m Mat4) WithoutRotation() Mat4 {
	return Translation(m[12], m[13], m[14])
}

// ApproxEqual compares element-wise within eps.
func (m Mat4) ApproxEqual(b Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
