// ============================================================================
// BENCHMARK CASE
// ============================================================================
//
// A Case is one declared, repeatable timing unit: a name, a Shape, the
// corpus geometry and a builder that produces the measured loop.
//
// Lifecycle:
//   - declared: options resolved, nothing allocated
//   - built:    first Prepare/Step/Benchmark generates the corpora
//   - cycling:  Step advances the shared cursor and feeds the barrier
//
// Corpora are generated once per Case and reused by every later
// invocation; the cursor is rewound by Prepare. A Case is not safe for
// concurrent use.

package bench

import (
	"testing"

	"numbench/corpus"
	"numbench/rng"
)

// runner is the built, steady-state form of a case.
type runner struct {
	loop    func(n int)
	cur     *corpus.Cursor
	corpora []corpus.View
}

// Case is a named benchmark bound to one Shape, its operand corpora and
// one operation.
type Case struct {
	name  string
	shape Shape
	cfg   config
	build func(src *rng.Source) runner
	run   *runner
}

func newCase(name string, shape Shape, cfg config, build func(*rng.Source) runner) *Case {
	if name == "" {
		panic("bench: case name must not be empty")
	}
	return &Case{name: name, shape: shape, cfg: cfg, build: build}
}

// Name returns the declared case name.
func (c *Case) Name() string { return c.name }

// Shape returns the operation shape of the case.
func (c *Case) Shape() Shape { return c.shape }

// Len returns the corpus length.
func (c *Case) Len() int { return 1 << c.cfg.bits }

// Seed returns the generator seed the corpora are drawn from.
func (c *Case) Seed() uint64 { return c.cfg.seed }

// Built reports whether the corpora have been generated.
func (c *Case) Built() bool { return c.run != nil }

func (c *Case) ensure() *runner {
	if c.run == nil {
		r := c.build(rng.New(c.cfg.seed))
		c.run = &r
	}
	return c.run
}

// Prepare generates the corpora on first use and rewinds the cursor to 0.
func (c *Case) Prepare() {
	c.ensure().cur.Rewind()
}

// Step runs n measured iterations starting from the current cursor.
func (c *Case) Step(n int) {
	c.ensure().loop(n)
}

// Cursor returns the current cursor position.
func (c *Case) Cursor() int {
	return int(c.ensure().cur.Pos())
}

// Corpora returns the operand corpora in operand order. Callers may type
// assert to *corpus.Corpus[T] for the declared operand type.
func (c *Case) Corpora() []corpus.View {
	return c.ensure().corpora
}

// Benchmark is the testing driver entry point. Corpus generation happens
// before the timer is reset and is never part of the measurement.
func (c *Case) Benchmark(b *testing.B) {
	c.Prepare()
	b.ReportAllocs()
	b.ResetTimer()
	c.Step(b.N)
}

// Run registers the case as a sub-benchmark of b.
func (c *Case) Run(b *testing.B) bool {
	return b.Run(c.name, c.Benchmark)
}
