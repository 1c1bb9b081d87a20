// ============================================================================
// DETERMINISTIC OPERAND GENERATION
// ============================================================================
//
// Fixed-seed pseudorandom source used to fill benchmark corpora.
//
// Core capabilities:
//   - Source: PCG generator (math/rand/v2) fully determined by one seed
//   - Gen[T]: "produce a random value of type T" capability
//   - Of[T, PT]: adapts a type's own Randomize method into a Gen
//
// Reproducibility model:
//   - The algorithm is pinned to PCG; math/rand/v2 guarantees its output
//     sequence, so a corpus is identical across processes and releases
//   - Generators draw strictly in call order; corpora built from the same
//     seed in the same order are identical element-wise

package rng

import (
	"math/rand/v2"

	"numbench/constants"
	"numbench/utils"
)

// Source is a deterministic pseudorandom stream. It is not safe for
// concurrent use; each benchmark case owns its own Source.
type Source struct {
	r    *rand.Rand
	seed uint64
}

// New returns a Source whose sequence is fully determined by seed.
func New(seed uint64) *Source {
	return &Source{
		r:    rand.New(rand.NewPCG(seed, utils.Mix64(seed)^constants.SeedStream)),
		seed: seed,
	}
}

// Default returns a Source seeded with constants.DefaultSeed.
func Default() *Source { return New(constants.DefaultSeed) }

// Seed reports the seed the Source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Source) Uint64() uint64 { return s.r.Uint64() }

// Int64 returns a non-negative 63-bit value.
func (s *Source) Int64() int64 { return s.r.Int64() }

// IntN returns a value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int { return s.r.IntN(n) }

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Float32 returns a value in [0, 1).
func (s *Source) Float32() float32 { return s.r.Float32() }

// Float32Range returns a value in [lo, hi).
func (s *Source) Float32Range(lo, hi float32) float32 {
	return lo + s.r.Float32()*(hi-lo)
}

// ============================================================================
// GENERATORS
// ============================================================================

// Gen produces one value of T per call, drawing from src.
type Gen[T any] func(src *Source) T

// Randomizer is implemented by pointer types that can fill themselves.
type Randomizer[T any] interface {
	*T
	Randomize(src *Source)
}

// Of returns the Gen backed by T's own Randomize method.
func Of[T any, PT Randomizer[T]]() Gen[T] {
	return func(src *Source) T {
		var v T
		PT(&v).Randomize(src)
		return v
	}
}

// Float32s draws scalars in [-1, 1).
func Float32s(src *Source) float32 { return src.Float32Range(-1, 1) }

// Float64s draws scalars in [-1, 1).
func Float64s(src *Source) float64 { return 2*src.Float64() - 1 }

// Int64s draws non-negative 63-bit integers.
func Int64s(src *Source) int64 { return src.Int64() }

// Uint64s draws full-width 64-bit integers.
func Uint64s(src *Source) uint64 { return src.Uint64() }

// Cycle replays vals in order, wrapping at the end, and never draws from
// src. It pins corpus contents for test-scale scenarios. The replay
// restarts from vals[0] whenever a different Source is passed in, so one
// Cycle shared by several declarations gives each of them the same corpus.
// Operands generated from one Source continue a single replay.
func Cycle[T any](vals ...T) Gen[T] {
	if len(vals) == 0 {
		panic("rng: Cycle needs at least one value")
	}
	var last *Source
	i := 0
	return func(src *Source) T {
		if src != last {
			last, i = src, 0
		}
		v := vals[i]
		i++
		if i == len(vals) {
			i = 0
		}
		return v
	}
}
