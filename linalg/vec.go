// Package linalg holds small float32 value types for graphics-style math:
// vectors, quaternions and square column-major matrices.
//
// All types are plain arrays of float32 with no padding, so corpora of them
// fingerprint and copy byte-for-byte.
package linalg

import (
	"math"

	"numbench/rng"
)

// Vec2 is a 2D vector.
type Vec2 struct{ X, Y float32 }

// Vec3 is a 3D vector.
type Vec3 struct{ X, Y, Z float32 }

// Vec4 is a 4D vector, also used as a matrix column.
type Vec4 struct{ X, Y, Z, W float32 }

// ───────────────────────────── Vec2 ──────────────────────────────

// Add returns v+u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

// Sub returns v-u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

// Dot returns the scalar product of v and u.
func (v Vec2) Dot(u Vec2) float32 { return v.X*u.X + v.Y*u.Y }

// Perp is the 2D cross product (z of the 3D cross).
func (v Vec2) Perp(u Vec2) float32 { return v.X*u.Y - v.Y*u.X }

// Randomize fills v with components in [-1, 1).
func (v *Vec2) Randomize(src *rng.Source) {
	v.X, v.Y = rng.Float32s(src), rng.Float32s(src)
}

// ───────────────────────────── Vec3 ──────────────────────────────

// Add returns v+u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v-u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the scalar product of v and u.
func (v Vec3) Dot(u Vec3) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns the right-handed cross product v×u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 { return sqrt(v.Dot(v)) }

// Distance returns |v-u| without modifying either operand.
func (v *Vec3) Distance(u *Vec3) float32 {
	dx, dy, dz := v.X-u.X, v.Y-u.Y, v.Z-u.Z
	return sqrt(dx*dx + dy*dy + dz*dz)
}

// Neg flips the sign of every component in place.
func (v *Vec3) Neg() {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
}

// Normalize scales v to unit length in place. The zero vector is left
// unchanged.
func (v *Vec3) Normalize() {
	if l := v.Length(); l != 0 {
		inv := 1 / l
		v.X *= inv
		v.Y *= inv
		v.Z *= inv
	}
}

// Randomize fills v with components in [-1, 1).
func (v *Vec3) Randomize(src *rng.Source) {
	v.X, v.Y, v.Z = rng.Float32s(src), rng.Float32s(src), rng.Float32s(src)
}

// Dot3 and Cross3 are the free-function forms used by by-reference callers.
func Dot3(a, b *Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross3 returns a×b.
func Cross3(a, b *Vec3) Vec3 { return a.Cross(*b) }

// Length3 returns |a|.
func Length3(a *Vec3) float32 { return a.Length() }

// ───────────────────────────── Vec4 ──────────────────────────────

// Add returns v+u.
func (v Vec4) Add(u Vec4) Vec4 { return Vec4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W} }

// Scale returns v multiplied by s.
func (v Vec4) Scale(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the scalar product of v and u.
func (v Vec4) Dot(u Vec4) float32 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W }

// Length returns the Euclidean norm of v.
func (v Vec4) Length() float32 { return sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length; the zero vector maps to itself.
func (v Vec4) Normalized() Vec4 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return v
}

// Randomize fills v with components in [-1, 1).
func (v *Vec4) Randomize(src *rng.Source) {
	v.X, v.Y, v.Z, v.W = rng.Float32s(src), rng.Float32s(src), rng.Float32s(src), rng.Float32s(src)
}

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }
