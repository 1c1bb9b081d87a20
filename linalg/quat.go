package linalg

import "numbench/rng"

// Quat is a quaternion W + Xi + Yj + Zk.
type Quat struct{ W, X, Y, Z float32 }

// Conjugate returns q with its vector part negated.
func (q Quat) Conjugate() Quat { return Quat{q.W, -q.X, -q.Y, -q.Z} }

// Dot returns the four-component scalar product of q and p.
func (q Quat) Dot(p Quat) float32 { return q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z }

// Mul returns the Hamilton product q*p.
func (q *Quat) Mul(p *Quat) Quat {
	return Quat{
		q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Normalize scales q to unit norm in place. The zero quaternion is left
// unchanged.
func (q *Quat) Normalize() {
	if n := sqrt(q.Dot(*q)); n != 0 {
		inv := 1 / n
		q.W *= inv
		q.X *= inv
		q.Y *= inv
		q.Z *= inv
	}
}

// Rotate applies q to v, assuming q has unit norm.
func (q *Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Randomize fills q with components in [-1, 1). The result is not normalized.
func (q *Quat) Randomize(src *rng.Source) {
	q.W, q.X, q.Y, q.Z = rng.Float32s(src), rng.Float32s(src), rng.Float32s(src), rng.Float32s(src)
}
