// Package blackbox provides the optimization barrier used by measured loops.
//
// Consume is never inlined, so the compiler must materialize its argument
// and cannot prove the value unused, however predictable the inputs are.
// The call itself costs a few cycles; it is the same for every case and
// therefore cancels out when comparing operations.
package blackbox

// Consume observably uses v.
//
//go:noinline
func Consume[T any](v T) {
	_ = v
}

// Barrier is the shape of an injected barrier for results of type T.
type Barrier[T any] func(T)

// For returns Consume instantiated for T as a Barrier value.
func For[T any]() Barrier[T] { return Consume[T] }
