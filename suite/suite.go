// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: suite.go — Declared benchmark cases over linalg
//
// Purpose:
//   - One place where every measured operation is declared with its shape.
//   - Rebuilt on demand so the runner can apply corpus bits and seed.
//
// Notes:
//   - Names are unique; a duplicate is a declaration bug and panics at
//     Declare time, long before any timer runs.
// ─────────────────────────────────────────────────────────────────────────────

package suite

import (
	"regexp"

	"numbench/bench"
	"numbench/linalg"
	"numbench/rng"
)

// Suite is an ordered, name-unique set of cases.
type Suite struct {
	cases []*bench.Case
	index map[string]int
}

// New returns an empty suite.
func New() *Suite {
	return &Suite{index: make(map[string]int)}
}

// Add appends c. It panics if a case with the same name is present.
func (s *Suite) Add(c *bench.Case) {
	if _, dup := s.index[c.Name()]; dup {
		panic("suite: duplicate case name " + c.Name())
	}
	s.index[c.Name()] = len(s.cases)
	s.cases = append(s.cases, c)
}

// Cases returns the cases in declaration order.
func (s *Suite) Cases() []*bench.Case { return s.cases }

// Len returns the number of cases.
func (s *Suite) Len() int { return len(s.cases) }

// Lookup returns the case called name.
func (s *Suite) Lookup(name string) (*bench.Case, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.cases[i], true
}

// Select returns the cases whose name matches any pattern, in declaration
// order. No patterns selects everything.
func (s *Suite) Select(patterns []*regexp.Regexp) []*bench.Case {
	if len(patterns) == 0 {
		return s.cases
	}
	var out []*bench.Case
	for _, c := range s.cases {
		for _, re := range patterns {
			if re.MatchString(c.Name()) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

var (
	vec2 = rng.Of[linalg.Vec2]()
	vec3 = rng.Of[linalg.Vec3]()
	vec4 = rng.Of[linalg.Vec4]()
	quat = rng.Of[linalg.Quat]()
	mat2 = rng.Of[linalg.Mat2]()
	mat3 = rng.Of[linalg.Mat3]()
	mat4 = rng.Of[linalg.Mat4]()
)

func inverse4(m *linalg.Mat4) linalg.Mat4 {
	inv, _ := m.Inverse()
	return inv
}

func mulF64(a, b float64) float64 { return a * b }

func divF64(a, b *float64) float64 { return *a / *b }

// Declare builds a fresh suite; opts apply to every case.
func Declare(opts ...bench.Option) *Suite {
	s := New()

	// f(&a, &b)
	s.Add(bench.BinaryFn("vec3_dot", vec3, vec3, linalg.Dot3, opts...))
	s.Add(bench.BinaryFn("vec3_cross", vec3, vec3, linalg.Cross3, opts...))
	s.Add(bench.BinaryFn("mat4_mul_fn", mat4, mat4, linalg.MulMat4, opts...))
	s.Add(bench.BinaryFn("f64_div", rng.Float64s, rng.Float64s, divF64, opts...))

	// f(a, b)
	s.Add(bench.BinaryFnByValue("vec2_perp", vec2, vec2, linalg.Vec2.Perp, opts...))
	s.Add(bench.BinaryFnByValue("vec3_add", vec3, vec3, linalg.Vec3.Add, opts...))
	s.Add(bench.BinaryFnByValue("vec3_sub", vec3, vec3, linalg.Vec3.Sub, opts...))
	s.Add(bench.BinaryFnByValue("vec4_dot", vec4, vec4, linalg.Vec4.Dot, opts...))
	s.Add(bench.BinaryFnByValue("f64_mul", rng.Float64s, rng.Float64s, mulF64, opts...))

	// f(&a)
	s.Add(bench.UnaryFn("vec3_length", vec3, linalg.Length3, opts...))
	s.Add(bench.UnaryFn("mat4_determinant", mat4, (*linalg.Mat4).Determinant, opts...))
	s.Add(bench.UnaryFn("mat4_inverse", mat4, inverse4, opts...))

	// f(a)
	s.Add(bench.UnaryFnByValue("vec4_normalized", vec4, linalg.Vec4.Normalized, opts...))
	s.Add(bench.UnaryFnByValue("quat_conjugate", quat, linalg.Quat.Conjugate, opts...))
	s.Add(bench.UnaryFnByValue("mat2_determinant", mat2, linalg.Mat2.Determinant, opts...))
	s.Add(bench.UnaryFnByValue("mat3_determinant", mat3, linalg.Mat3.Determinant, opts...))
	s.Add(bench.UnaryFnByValue("mat4_transposed", mat4, linalg.Mat4.Transposed, opts...))

	// a.op(&b)
	s.Add(bench.BinaryOp("vec3_distance", vec3, vec3, (*linalg.Vec3).Distance, opts...))
	s.Add(bench.BinaryOp("quat_mul", quat, quat, (*linalg.Quat).Mul, opts...))
	s.Add(bench.BinaryOp("mat2_mul", mat2, mat2, (*linalg.Mat2).Mul, opts...))
	s.Add(bench.BinaryOp("mat3_mul", mat3, mat3, (*linalg.Mat3).Mul, opts...))
	s.Add(bench.BinaryOp("mat4_mul", mat4, mat4, (*linalg.Mat4).Mul, opts...))

	// a.op(b)
	s.Add(bench.BinaryOpByValue("mat2_mul_vec2", mat2, vec2, (*linalg.Mat2).MulVec, opts...))
	s.Add(bench.BinaryOpByValue("mat3_mul_vec3", mat3, vec3, (*linalg.Mat3).MulVec, opts...))
	s.Add(bench.BinaryOpByValue("mat4_mul_vec4", mat4, vec4, (*linalg.Mat4).MulVec, opts...))
	s.Add(bench.BinaryOpByValue("quat_rotate_vec3", quat, vec3, (*linalg.Quat).Rotate, opts...))

	// a.op()
	s.Add(bench.UnaryOpInPlace("vec3_neg", vec3, (*linalg.Vec3).Neg, opts...))
	s.Add(bench.UnaryOpInPlace("vec3_normalize", vec3, (*linalg.Vec3).Normalize, opts...))
	s.Add(bench.UnaryOpInPlace("quat_normalize", quat, (*linalg.Quat).Normalize, opts...))
	s.Add(bench.UnaryOpInPlace("mat2_transpose", mat2, (*linalg.Mat2).Transpose, opts...))
	s.Add(bench.UnaryOpInPlace("mat3_transpose", mat3, (*linalg.Mat3).Transpose, opts...))
	s.Add(bench.UnaryOpInPlace("mat4_transpose", mat4, (*linalg.Mat4).Transpose, opts...))

	return s
}
