package linalg

import (
	"math"
	"testing"

	"numbench/rng"
)

const eps = 1e-4

func near(a, b float32) bool { return math.Abs(float64(a-b)) <= eps }

func nearVec4(a, b Vec4) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) && near(a.W, b.W)
}

func nearMat4(a, b Mat4) bool {
	return nearVec4(a.X, b.X) && nearVec4(a.Y, b.Y) && nearVec4(a.Z, b.Z) && nearVec4(a.W, b.W)
}

func TestVec3Basics(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 5, 6}
	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if got := Dot3(&a, &b); got != 32 {
		t.Errorf("Dot3 = %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross = %+v", got)
	}
	if got := Cross3(&a, &b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross3 = %+v", got)
	}
	if got := Length3(&Vec3{3, 4, 0}); got != 5 {
		t.Errorf("Length3 = %v", got)
	}
}

func TestVec3InPlace(t *testing.T) {
	v := Vec3{1, -2, 3}
	v.Neg()
	if v != (Vec3{-1, 2, -3}) {
		t.Errorf("Neg = %+v", v)
	}
	u := Vec3{2, 6, -3}
	if got := v.Distance(&u); !near(got, 5) || v != (Vec3{-1, 2, -3}) || u != (Vec3{2, 6, -3}) {
		t.Errorf("Distance = %v, v = %+v, u = %+v", got, v, u)
	}
	w := Vec3{0, 3, 4}
	w.Normalize()
	if !near(w.Length(), 1) {
		t.Errorf("Normalize length = %v", w.Length())
	}
	var z Vec3
	z.Normalize()
	if z != (Vec3{}) {
		t.Errorf("zero vector changed: %+v", z)
	}
}

func TestVec2AndVec4(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{3, 4}
	if a.Add(b) != (Vec2{4, 6}) || b.Sub(a) != (Vec2{2, 2}) || a.Dot(b) != 11 || a.Perp(b) != -2 {
		t.Error("Vec2 arithmetic wrong")
	}
	v := Vec4{2, 0, 0, 0}
	if v.Normalized() != (Vec4{1, 0, 0, 0}) {
		t.Errorf("Normalized = %+v", v.Normalized())
	}
	if (Vec4{}).Normalized() != (Vec4{}) {
		t.Error("zero Vec4 changed by Normalized")
	}
}

func TestQuat(t *testing.T) {
	id := Quat{W: 1}
	q := Quat{1, 2, 3, 4}
	if got := id.Mul(&q); got != q {
		t.Errorf("identity * q = %+v", got)
	}
	i, j := Quat{X: 1}, Quat{Y: 1}
	if got := i.Mul(&j); got != (Quat{Z: 1}) {
		t.Errorf("i*j = %+v, want k", got)
	}
	q.Normalize()
	if !near(q.Dot(q), 1) {
		t.Errorf("normalized norm² = %v", q.Dot(q))
	}
	// 90° about Z maps X to Y.
	h := float32(math.Sqrt(0.5))
	rz := Quat{W: h, Z: h}
	if got := rz.Rotate(Vec3{1, 0, 0}); !near(got.X, 0) || !near(got.Y, 1) || !near(got.Z, 0) {
		t.Errorf("Rotate = %+v", got)
	}
	if c := (Quat{1, 2, 3, 4}).Conjugate(); c != (Quat{1, -2, -3, -4}) {
		t.Errorf("Conjugate = %+v", c)
	}
}

func TestMat2Mat3(t *testing.T) {
	m := Mat2{Vec2{1, 3}, Vec2{2, 4}} // [[1 2] [3 4]]
	if m.Determinant() != -2 {
		t.Errorf("Mat2 det = %v", m.Determinant())
	}
	id := Mat2{Vec2{1, 0}, Vec2{0, 1}}
	if m.Mul(&id) != m {
		t.Error("Mat2 * I != Mat2")
	}
	m.Transpose()
	if m != (Mat2{Vec2{1, 2}, Vec2{3, 4}}) {
		t.Errorf("Mat2 transpose = %+v", m)
	}

	n := Mat3{Vec3{2, 0, 0}, Vec3{0, 3, 0}, Vec3{0, 0, 4}}
	if n.Determinant() != 24 {
		t.Errorf("Mat3 det = %v", n.Determinant())
	}
	if got := n.MulVec(Vec3{1, 1, 1}); got != (Vec3{2, 3, 4}) {
		t.Errorf("Mat3 MulVec = %+v", got)
	}
	k := Mat3{Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9}}
	if got := n.Mul(&k); got.X != (Vec3{2, 6, 12}) {
		t.Errorf("Mat3 Mul first column = %+v", got.X)
	}
	k.Transpose()
	if k.X != (Vec3{1, 4, 7}) {
		t.Errorf("Mat3 transpose first column = %+v", k.X)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	src := rng.New(5)
	gen := rng.Of[Mat4]()
	for i := 0; i < 64; i++ {
		m := gen(src)
		// Diagonal dominance keeps the sample well conditioned.
		m.X.X += 4
		m.Y.Y += 4
		m.Z.Z += 4
		m.W.W += 4
		inv, ok := m.Inverse()
		if !ok {
			t.Fatalf("sample %d reported singular", i)
		}
		if got := m.Mul(&inv); !nearMat4(got, Identity4()) {
			t.Fatalf("sample %d: m * m⁻¹ = %+v", i, got)
		}
	}
}

func TestMat4Singular(t *testing.T) {
	var m Mat4
	if _, ok := m.Inverse(); ok {
		t.Fatal("zero matrix reported invertible")
	}
	if m.Determinant() != 0 {
		t.Fatal("zero matrix has non-zero determinant")
	}
}

func TestMat4DeterminantAndTranspose(t *testing.T) {
	m := Identity4()
	m.X.X, m.Y.Y, m.Z.Z, m.W.W = 2, 3, 4, 5
	if got := m.Determinant(); got != 120 {
		t.Errorf("det = %v, want 120", got)
	}
	n := Mat4{Vec4{1, 2, 3, 4}, Vec4{5, 6, 7, 8}, Vec4{9, 10, 11, 12}, Vec4{13, 14, 15, 16}}
	tr := n.Transposed()
	if tr.X != (Vec4{1, 5, 9, 13}) || tr.W != (Vec4{4, 8, 12, 16}) {
		t.Errorf("Transposed = %+v", tr)
	}
	if n.X != (Vec4{1, 2, 3, 4}) {
		t.Error("Transposed mutated its receiver")
	}
	id := Identity4()
	if MulMat4(&n, &id) != n {
		t.Error("n * I != n")
	}
	if got := n.MulVec(Vec4{1, 0, 0, 0}); got != n.X {
		t.Errorf("MulVec(e1) = %+v", got)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a, b := rng.New(11), rng.New(11)
	var q1, q2 Quat
	var m1, m2 Mat3
	var v1, v2 Vec2
	q1.Randomize(a)
	q2.Randomize(b)
	m1.Randomize(a)
	m2.Randomize(b)
	v1.Randomize(a)
	v2.Randomize(b)
	if q1 != q2 || m1 != m2 || v1 != v2 {
		t.Fatal("Randomize not deterministic for equal seeds")
	}
	var m Mat2
	m.Randomize(a)
	for _, x := range []float32{m.X.X, m.X.Y, m.Y.X, m.Y.Y} {
		if x < -1 || x >= 1 {
			t.Fatalf("component %v outside [-1,1)", x)
		}
	}
}
