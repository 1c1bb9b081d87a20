// cursor.go
//
// Wrapping index over a power-of-two corpus. Advancing is one add and one
// AND; the sequence 1, 2, …, n-1, 0, 1, … has period n and touches every
// slot exactly once per period.

package corpus

// Cursor is a masked position into a corpus of n slots.
type Cursor struct {
	pos  uintptr
	mask uintptr
}

// NewCursor returns a cursor at position 0 for a corpus of n slots. It
// panics unless n is a positive power of two so that masking stays valid.
func NewCursor(n int) Cursor {
	checkLen(n)
	return Cursor{mask: uintptr(n - 1)}
}

// Next advances the cursor and returns the new position.
//
//go:nosplit
//go:inline
func (c *Cursor) Next() uintptr {
	c.pos = (c.pos + 1) & c.mask
	return c.pos
}

// Pos returns the current position without advancing.
//
//go:nosplit
//go:inline
func (c *Cursor) Pos() uintptr { return c.pos }

// Len returns the period of the cursor.
//
//go:nosplit
//go:inline
func (c *Cursor) Len() int { return int(c.mask) + 1 }

// Rewind moves the cursor back to position 0.
//
//go:nosplit
//go:inline
func (c *Cursor) Rewind() { c.pos = 0 }

func checkLen(n int) {
	if n <= 0 || n&(n-1) != 0 {
		panic("corpus: length must be >0 and a power of two")
	}
}
