package game

import (
	"fmt"
	"strings"
)

// Cursor is a (row, column) position on a Board.
type Cursor struct {
	Row int
	Col int
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Up moves one row up, stopping at the first row.
func (c Cursor) Up() Cursor {
	c.Row = max(0, c.Row-1)
	return c
}

// Down moves one row down, stopping at the last row of b.
func (c Cursor) Down(b Board) Cursor {
	c.Row = min(c.Row+1, b.LineBreaks())
	return c
}

// Left moves one column left, stopping at column 0.
func (c Cursor) Left() Cursor {
	c.Col = max(0, c.Col-1)
	return c
}

// Right moves one column right without looking at the text.
func (c Cursor) Right() Cursor {
	c.Col++
	return c
}

// Advance moves one column right, or to the start of the next row when the
// next cell is the row's line break.
func (c Cursor) Advance(b Board) Cursor {
	if b.IsBreakAt(c.Row, c.Col+1) {
		return Cursor{Row: min(c.Row+1, b.LineBreaks()), Col: 0}
	}
	c.Col++
	return c
}

// Variant selects between the two cursor and highlight behaviors.
type Variant int

const (
	// Enhanced wraps at line ends, advances after typing and underlines the cursor.
	Enhanced Variant = iota
	// Legacy moves right without wrapping, never moves on typing and uses a flat highlight.
	Legacy
)

func (v Variant) String() string {
	switch v {
	case Legacy:
		return "legacy"
	default:
		return "enhanced"
	}
}

// ParseVariant converts a config value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "", "enhanced":
		return Enhanced, nil
	case "legacy":
		return Legacy, nil
	}
	return Enhanced, fmt.Errorf("invalid variant %q", s)
}
