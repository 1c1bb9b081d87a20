// corpus.go
//
// Pre-generated operand pool reused cyclically during timing.
//
// The pool is filled once, before the timer starts, and never resized. Slot
// access is a single pointer add over the backing array: the index is masked
// with len-1 inside Slot, which is what keeps every access in bounds, so no
// bounds check is emitted on the measured path.

package corpus

import (
	"unsafe"

	"golang.org/x/crypto/sha3"

	"numbench/rng"
)

// View is the type-erased face of a corpus, used for inspection and
// fingerprinting by code that does not know the element type.
type View interface {
	Len() int
	Fingerprint() [32]byte
}

// Corpus is a fixed power-of-two pool of values of T.
type Corpus[T any] struct {
	base unsafe.Pointer // &buf[0]
	mask uintptr        // len(buf) - 1
	size uintptr        // unsafe.Sizeof(T)
	buf  []T            // keeps base reachable
}

// New generates exactly n values with gen, in order, from src. It panics
// unless n is a positive power of two.
func New[T any](n int, src *rng.Source, gen rng.Gen[T]) *Corpus[T] {
	checkLen(n)
	buf := make([]T, n)
	for i := range buf {
		buf[i] = gen(src)
	}
	return wrap(buf)
}

// FromSlice copies vals into a new corpus. len(vals) must be a positive
// power of two.
func FromSlice[T any](vals []T) *Corpus[T] {
	checkLen(len(vals))
	buf := make([]T, len(vals))
	copy(buf, vals)
	return wrap(buf)
}

func wrap[T any](buf []T) *Corpus[T] {
	var zero T
	return &Corpus[T]{
		base: unsafe.Pointer(unsafe.SliceData(buf)),
		mask: uintptr(len(buf) - 1),
		size: unsafe.Sizeof(zero),
		buf:  buf,
	}
}

// Slot returns a pointer to element i&(Len()-1). Any i is accepted; the
// mask keeps the address inside the backing array.
//
//go:nosplit
//go:inline
func (c *Corpus[T]) Slot(i uintptr) *T {
	return (*T)(unsafe.Add(c.base, (i&c.mask)*c.size))
}

// Len returns the number of slots.
func (c *Corpus[T]) Len() int { return len(c.buf) }

// Snapshot returns a copy of the current contents.
func (c *Corpus[T]) Snapshot() []T {
	out := make([]T, len(c.buf))
	copy(out, c.buf)
	return out
}

// Fingerprint hashes the raw bytes of the backing array with SHA3-256.
// It is only meaningful for pointer-free T (numeric scalars, arrays and
// structs of them); padding bytes are part of the digest.
func (c *Corpus[T]) Fingerprint() [32]byte {
	raw := unsafe.Slice((*byte)(c.base), uintptr(len(c.buf))*c.size)
	return sha3.Sum256(raw)
}
