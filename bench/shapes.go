// ============================================================================
// SHAPE CONSTRUCTORS
// ============================================================================
//
// One constructor per invocation pattern. Each owns its corpora and cursor,
// fetches operands through the masked corpus accessor and hands the result
// to the barrier. Type and operation compatibility is checked by the
// compiler through the generic signatures; the only declaration-time panics
// are bad options and empty names.

package bench

import (
	"numbench/blackbox"
	"numbench/corpus"
	"numbench/rng"
)

func sinkOf[R any](cfg config) blackbox.Barrier[R] {
	switch s := cfg.sink.(type) {
	case nil:
		return blackbox.For[R]()
	case blackbox.Barrier[R]:
		return s
	}
	panic("bench: sink does not accept the case result type")
}

// binary declares a two-operand case. Both corpora come from one source,
// first operand then second, and share one cursor. loop receives them and
// returns the measured loop, which calls the operation and the barrier
// directly.
func binary[A, B any](name string, shape Shape, cfg config, ga rng.Gen[A], gb rng.Gen[B],
	loop func(ca *corpus.Corpus[A], cb *corpus.Corpus[B], cur *corpus.Cursor) func(int)) *Case {
	return newCase(name, shape, cfg, func(src *rng.Source) runner {
		n := 1 << cfg.bits
		ca := corpus.New(n, src, ga)
		cb := corpus.New(n, src, gb)
		cur := corpus.NewCursor(n)
		return runner{
			loop:    loop(ca, cb, &cur),
			cur:     &cur,
			corpora: []corpus.View{ca, cb},
		}
	})
}

// unary is binary for a single operand.
func unary[A any](name string, shape Shape, cfg config, g rng.Gen[A],
	loop func(ca *corpus.Corpus[A], cur *corpus.Cursor) func(int)) *Case {
	return newCase(name, shape, cfg, func(src *rng.Source) runner {
		n := 1 << cfg.bits
		ca := corpus.New(n, src, g)
		cur := corpus.NewCursor(n)
		return runner{
			loop:    loop(ca, &cur),
			cur:     &cur,
			corpora: []corpus.View{ca},
		}
	})
}

// BinaryFn declares f(&a, &b).
func BinaryFn[A, B, R any](name string, ga rng.Gen[A], gb rng.Gen[B], f func(*A, *B) R, opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[R](cfg)
	return binary(name, BinaryFunction, cfg, ga, gb, func(ca *corpus.Corpus[A], cb *corpus.Corpus[B], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				i := cur.Next()
				sink(f(ca.Slot(i), cb.Slot(i)))
			}
		}
	})
}

// BinaryFnByValue declares f(a, b) over copies of the operands.
func BinaryFnByValue[A, B, R any](name string, ga rng.Gen[A], gb rng.Gen[B], f func(A, B) R, opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[R](cfg)
	return binary(name, BinaryFunctionByValue, cfg, ga, gb, func(ca *corpus.Corpus[A], cb *corpus.Corpus[B], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				i := cur.Next()
				sink(f(*ca.Slot(i), *cb.Slot(i)))
			}
		}
	})
}

// UnaryFn declares f(&a).
func UnaryFn[A, R any](name string, g rng.Gen[A], f func(*A) R, opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[R](cfg)
	return unary(name, UnaryFunction, cfg, g, func(ca *corpus.Corpus[A], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				sink(f(ca.Slot(cur.Next())))
			}
		}
	})
}

// UnaryFnByValue declares f(a) over a copy of the operand.
func UnaryFnByValue[A, R any](name string, g rng.Gen[A], f func(A) R, opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[R](cfg)
	return unary(name, UnaryFunctionByValue, cfg, g, func(ca *corpus.Corpus[A], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				sink(f(*ca.Slot(cur.Next())))
			}
		}
	})
}

// BinaryOp declares the method-style a.op(&b). op is normally a method
// expression such as (*linalg.Mat4).Mul; the receiver slot may be mutated.
func BinaryOp[A, B, R any](name string, ga rng.Gen[A], gb rng.Gen[B], op func(*A, *B) R, opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[R](cfg)
	return binary(name, BinaryOperator, cfg, ga, gb, func(ca *corpus.Corpus[A], cb *corpus.Corpus[B], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				i := cur.Next()
				sink(op(ca.Slot(i), cb.Slot(i)))
			}
		}
	})
}

// BinaryOpByValue declares a.op(b): receiver by reference, argument copied.
func BinaryOpByValue[A, B, R any](name string, ga rng.Gen[A], gb rng.Gen[B], op func(*A, B) R, opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[R](cfg)
	return binary(name, BinaryOperator, cfg, ga, gb, func(ca *corpus.Corpus[A], cb *corpus.Corpus[B], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				i := cur.Next()
				sink(op(ca.Slot(i), *cb.Slot(i)))
			}
		}
	})
}

// UnaryOpInPlace declares a.op() mutating the corpus slot. The barrier
// receives the pointer to the mutated slot.
func UnaryOpInPlace[A any](name string, g rng.Gen[A], op func(*A), opts ...Option) *Case {
	cfg := newConfig(opts)
	sink := sinkOf[*A](cfg)
	return unary(name, UnaryOperatorInPlace, cfg, g, func(ca *corpus.Corpus[A], cur *corpus.Cursor) func(int) {
		return func(n int) {
			for ; n > 0; n-- {
				a := ca.Slot(cur.Next())
				op(a)
				sink(a)
			}
		}
	})
}
