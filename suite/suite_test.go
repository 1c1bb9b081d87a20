package suite

import (
	"regexp"
	"testing"

	"numbench/bench"
	"numbench/rng"
)

func TestDeclareCoversEveryShape(t *testing.T) {
	seen := make(map[bench.Shape]int)
	for _, c := range Declare().Cases() {
		seen[c.Shape()]++
	}
	for _, s := range []bench.Shape{
		bench.BinaryFunction, bench.BinaryFunctionByValue,
		bench.UnaryFunction, bench.UnaryFunctionByValue,
		bench.BinaryOperator, bench.UnaryOperatorInPlace,
	} {
		if seen[s] == 0 {
			t.Errorf("no case declared with shape %v", s)
		}
	}
}

func TestDeclareDoesNotBuildCorpora(t *testing.T) {
	for _, c := range Declare().Cases() {
		if c.Built() {
			t.Fatalf("%s built at declaration", c.Name())
		}
	}
}

func TestEveryCaseRunsFullCycles(t *testing.T) {
	s := Declare(bench.WithBits(4))
	for _, c := range s.Cases() {
		t.Run(c.Name(), func(t *testing.T) {
			c.Prepare()
			c.Step(3 * c.Len())
			if c.Cursor() != 0 {
				t.Fatalf("cursor after whole cycles = %d, want 0", c.Cursor())
			}
			if got := len(c.Corpora()); got != c.Shape().Arity() {
				t.Fatalf("%d corpora for %v", got, c.Shape())
			}
		})
	}
}

func TestOnlyInPlaceCasesMutateCorpora(t *testing.T) {
	for _, c := range Declare(bench.WithBits(5)).Cases() {
		if c.Shape() == bench.UnaryOperatorInPlace {
			continue
		}
		c.Prepare()
		before := make([][32]byte, 0, 2)
		for _, v := range c.Corpora() {
			before = append(before, v.Fingerprint())
		}
		c.Step(4 * c.Len())
		for j, v := range c.Corpora() {
			if v.Fingerprint() != before[j] {
				t.Errorf("%s changed corpus %d while running", c.Name(), j)
			}
		}
	}
}

func TestRedeclarationIsIdentical(t *testing.T) {
	a := Declare(bench.WithBits(6), bench.WithSeed(99))
	b := Declare(bench.WithBits(6), bench.WithSeed(99))
	if a.Len() != b.Len() {
		t.Fatalf("suite sizes differ: %d vs %d", a.Len(), b.Len())
	}
	for i, ca := range a.Cases() {
		cb := b.Cases()[i]
		if ca.Name() != cb.Name() {
			t.Fatalf("case %d: %s vs %s", i, ca.Name(), cb.Name())
		}
		va, vb := ca.Corpora(), cb.Corpora()
		for j := range va {
			if va[j].Fingerprint() != vb[j].Fingerprint() {
				t.Fatalf("%s corpus %d differs", ca.Name(), j)
			}
		}
	}
}

func TestSeedChangesCorpora(t *testing.T) {
	a, _ := Declare(bench.WithBits(6), bench.WithSeed(1)).Lookup("mat4_mul")
	b, _ := Declare(bench.WithBits(6), bench.WithSeed(2)).Lookup("mat4_mul")
	if a.Corpora()[0].Fingerprint() == b.Corpora()[0].Fingerprint() {
		t.Fatal("seed had no effect on the corpus")
	}
}

func TestLookup(t *testing.T) {
	s := Declare()
	c, ok := s.Lookup("vec3_cross")
	if !ok || c.Shape() != bench.BinaryFunction {
		t.Fatalf("Lookup(vec3_cross) = %v, %v", c, ok)
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Fatal("Lookup found an undeclared case")
	}
}

func TestSelect(t *testing.T) {
	s := Declare()
	if got := s.Select(nil); len(got) != s.Len() {
		t.Fatalf("Select(nil) = %d cases, want %d", len(got), s.Len())
	}
	got := s.Select([]*regexp.Regexp{regexp.MustCompile(`^mat4_`), regexp.MustCompile(`^quat_mul$`)})
	if len(got) == 0 {
		t.Fatal("Select matched nothing")
	}
	for _, c := range got {
		if c.Name() != "quat_mul" && c.Name()[:5] != "mat4_" {
			t.Fatalf("unexpected selection %s", c.Name())
		}
	}
	if none := s.Select([]*regexp.Regexp{regexp.MustCompile(`^zzz`)}); len(none) != 0 {
		t.Fatalf("Select matched %d cases for ^zzz", len(none))
	}
}

func TestAddDuplicatePanics(t *testing.T) {
	s := New()
	id := func(a float64) float64 { return a }
	s.Add(bench.UnaryFnByValue("dup", rng.Float64s, id))
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate name accepted")
		}
	}()
	s.Add(bench.UnaryFnByValue("dup", rng.Float64s, id))
}

// BenchmarkSuite is the `go test -bench` entry point for every declared case.
func BenchmarkSuite(b *testing.B) {
	for _, c := range Declare().Cases() {
		c.Run(b)
	}
}
