// ============================================================================
// CURSOR WRAPAROUND VALIDATION
// ============================================================================
//
// Verifies the masked cursor visits every slot exactly once per period,
// repeats with period n, and rejects non power-of-two lengths.

package corpus

import (
	"fmt"
	"testing"
)

func TestCursorVisitsEverySlotOncePerPeriod(t *testing.T) {
	for bits := 0; bits <= 13; bits++ {
		n := 1 << bits
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			c := NewCursor(n)
			seen := make([]int, n)
			for step := 0; step < n; step++ {
				p := c.Next()
				if p >= uintptr(n) {
					t.Fatalf("step %d: position %d out of range", step, p)
				}
				seen[p]++
			}
			for i, hits := range seen {
				if hits != 1 {
					t.Fatalf("slot %d visited %d times in one period", i, hits)
				}
			}
		})
	}
}

func TestCursorPeriodic(t *testing.T) {
	const n = 64
	c := NewCursor(n)
	first := make([]uintptr, n)
	for i := range first {
		first[i] = c.Next()
	}
	for round := 0; round < 3; round++ {
		for i := range first {
			if p := c.Next(); p != first[i] {
				t.Fatalf("round %d step %d: got %d, want %d", round, i, p, first[i])
			}
		}
	}
}

func TestCursorOrder(t *testing.T) {
	c := NewCursor(8)
	want := []uintptr{1, 2, 3, 4, 5, 6, 7, 0, 1}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Fatalf("advance %d: got %d, want %d", i+1, got, w)
		}
	}
}

func TestCursorRewind(t *testing.T) {
	c := NewCursor(4)
	c.Next()
	c.Next()
	if c.Pos() != 2 {
		t.Fatalf("Pos() = %d, want 2", c.Pos())
	}
	c.Rewind()
	if c.Pos() != 0 {
		t.Fatalf("Pos() after Rewind = %d, want 0", c.Pos())
	}
	if got := c.Next(); got != 1 {
		t.Fatalf("first Next after Rewind = %d, want 1", got)
	}
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}
}

func TestCursorSingleSlot(t *testing.T) {
	c := NewCursor(1)
	for i := 0; i < 5; i++ {
		if p := c.Next(); p != 0 {
			t.Fatalf("single-slot cursor moved to %d", p)
		}
	}
}

func TestNewCursorRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, -1, -8, 3, 6, 100, 8191} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewCursor(%d) did not panic", n)
				}
			}()
			NewCursor(n)
		})
	}
}
