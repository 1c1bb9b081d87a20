package linalg

import "numbench/rng"

// Matrices are column-major: X, Y, Z, W are columns.

// Mat2 is a 2x2 matrix with columns X and Y.
type Mat2 struct{ X, Y Vec2 }

// Mat3 is a 3x3 matrix with columns X, Y and Z.
type Mat3 struct{ X, Y, Z Vec3 }

// Mat4 is a 4x4 matrix with columns X, Y, Z and W.
type Mat4 struct{ X, Y, Z, W Vec4 }

// ───────────────────────────── Mat2 ──────────────────────────────

// MulVec returns m·v.
func (m *Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		m.X.X*v.X + m.Y.X*v.Y,
		m.X.Y*v.X + m.Y.Y*v.Y,
	}
}

// Mul returns the product m·n.
func (m *Mat2) Mul(n *Mat2) Mat2 { return Mat2{m.MulVec(n.X), m.MulVec(n.Y)} }

// Determinant returns det(m).
func (m Mat2) Determinant() float32 { return m.X.X*m.Y.Y - m.Y.X*m.X.Y }

// Transpose transposes m in place.
func (m *Mat2) Transpose() { m.X.Y, m.Y.X = m.Y.X, m.X.Y }

// Randomize fills m column by column.
func (m *Mat2) Randomize(src *rng.Source) {
	m.X.Randomize(src)
	m.Y.Randomize(src)
}

// ───────────────────────────── Mat3 ──────────────────────────────

// MulVec returns m·v.
func (m *Mat3) MulVec(v Vec3) Vec3 {
	return m.X.Scale(v.X).Add(m.Y.Scale(v.Y)).Add(m.Z.Scale(v.Z))
}

// Mul returns the product m·n.
func (m *Mat3) Mul(n *Mat3) Mat3 { return Mat3{m.MulVec(n.X), m.MulVec(n.Y), m.MulVec(n.Z)} }

// Determinant returns det(m) as the scalar triple product of the columns.
func (m Mat3) Determinant() float32 { return m.X.Dot(m.Y.Cross(m.Z)) }

// Transpose transposes m in place.
func (m *Mat3) Transpose() {
	m.X.Y, m.Y.X = m.Y.X, m.X.Y
	m.X.Z, m.Z.X = m.Z.X, m.X.Z
	m.Y.Z, m.Z.Y = m.Z.Y, m.Y.Z
}

// Randomize fills m column by column.
func (m *Mat3) Randomize(src *rng.Source) {
	m.X.Randomize(src)
	m.Y.Randomize(src)
	m.Z.Randomize(src)
}

// ───────────────────────────── Mat4 ──────────────────────────────

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		Vec4{1, 0, 0, 0},
		Vec4{0, 1, 0, 0},
		Vec4{0, 0, 1, 0},
		Vec4{0, 0, 0, 1},
	}
}

// MulVec returns m·v.
func (m *Mat4) MulVec(v Vec4) Vec4 {
	return m.X.Scale(v.X).Add(m.Y.Scale(v.Y)).Add(m.Z.Scale(v.Z)).Add(m.W.Scale(v.W))
}

// Mul returns the product m·n.
func (m *Mat4) Mul(n *Mat4) Mat4 {
	return Mat4{m.MulVec(n.X), m.MulVec(n.Y), m.MulVec(n.Z), m.MulVec(n.W)}
}

// MulMat4 is the free-function form of (*Mat4).Mul.
func MulMat4(a, b *Mat4) Mat4 { return a.Mul(b) }

// Transpose transposes m in place.
func (m *Mat4) Transpose() {
	m.X.Y, m.Y.X = m.Y.X, m.X.Y
	m.X.Z, m.Z.X = m.Z.X, m.X.Z
	m.X.W, m.W.X = m.W.X, m.X.W
	m.Y.Z, m.Z.Y = m.Z.Y, m.Y.Z
	m.Y.W, m.W.Y = m.W.Y, m.Y.W
	m.Z.W, m.W.Z = m.W.Z, m.Z.W
}

// Transposed returns the transpose of m, leaving m unchanged.
func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// cofactors returns the 2x2 sub-determinants shared by Determinant and
// Inverse (Laplace expansion over the first two and last two rows).
func (m *Mat4) cofactors() (s, c [6]float32) {
	a := [4][4]float32{
		{m.X.X, m.Y.X, m.Z.X, m.W.X},
		{m.X.Y, m.Y.Y, m.Z.Y, m.W.Y},
		{m.X.Z, m.Y.Z, m.Z.Z, m.W.Z},
		{m.X.W, m.Y.W, m.Z.W, m.W.W},
	}
	s[0] = a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s[1] = a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s[2] = a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s[3] = a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s[4] = a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s[5] = a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c[5] = a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c[4] = a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c[3] = a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c[2] = a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c[1] = a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c[0] = a[2][0]*a[3][1] - a[3][0]*a[2][1]
	return s, c
}

// Determinant returns det(m).
func (m *Mat4) Determinant() float32 {
	s, c := m.cofactors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse returns m⁻¹ and false when m is singular.
func (m *Mat4) Inverse() (Mat4, bool) {
	s, c := m.cofactors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		return Mat4{}, false
	}
	inv := 1 / det
	a := [4][4]float32{
		{m.X.X, m.Y.X, m.Z.X, m.W.X},
		{m.X.Y, m.Y.Y, m.Z.Y, m.W.Y},
		{m.X.Z, m.Y.Z, m.Z.Z, m.W.Z},
		{m.X.W, m.Y.W, m.Z.W, m.W.W},
	}
	var b [4][4]float32
	b[0][0] = (a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]) * inv
	b[0][1] = (-a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]) * inv
	b[0][2] = (a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]) * inv
	b[0][3] = (-a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]) * inv

	b[1][0] = (-a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]) * inv
	b[1][1] = (a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]) * inv
	b[1][2] = (-a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]) * inv
	b[1][3] = (a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]) * inv

	b[2][0] = (a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]) * inv
	b[2][1] = (-a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]) * inv
	b[2][2] = (a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]) * inv
	b[2][3] = (-a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]) * inv

	b[3][0] = (-a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]) * inv
	b[3][1] = (a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]) * inv
	b[3][2] = (-a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]) * inv
	b[3][3] = (a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]) * inv

	return Mat4{
		Vec4{b[0][0], b[1][0], b[2][0], b[3][0]},
		Vec4{b[0][1], b[1][1], b[2][1], b[3][1]},
		Vec4{b[0][2], b[1][2], b[2][2], b[3][2]},
		Vec4{b[0][3], b[1][3], b[2][3], b[3][3]},
	}, true
}

// Randomize fills m column by column.
func (m *Mat4) Randomize(src *rng.Source) {
	m.X.Randomize(src)
	m.Y.Randomize(src)
	m.Z.Randomize(src)
	m.W.Randomize(src)
}
