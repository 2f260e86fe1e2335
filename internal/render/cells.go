package render

import (
	"strings"

	"github.com/cryptogram/cryptogram/internal/game"
)

// State is the display state of one cell.
type State int

const (
	Default State = iota
	Guessed
	Highlighted
)

// Cell is one rune of the puzzle as it should be drawn.
type Cell struct {
	Rune  rune
	State State
	// Newline marks a line break. Under the cursor it is drawn as a
	// highlighted space instead.
	Newline bool
	Row     int
	Col     int
}

// Cells walks text and decides how each rune is drawn.
// Cursor beats guessed, guessed beats default.
func Cells(text string, cur game.Cursor, guesses *game.GuessTable) []Cell {
	cells := make([]Cell, 0, len(text))
	row, col := 0, 0

	for _, r := range text {
		atCursor := row == cur.Row && col == cur.Col

		if r == '\n' {
			c := Cell{Rune: '\n', Newline: true, Row: row, Col: col}
			if atCursor {
				c.Rune = ' '
				c.State = Highlighted
			}
			cells = append(cells, c)
			row++
			col = 0
			continue
		}

		c := Cell{Rune: r, Row: row, Col: col}
		guess, guessed := guesses.Lookup(r)
		if guessed {
			c.Rune = guess
		}
		switch {
		case atCursor:
			c.State = Highlighted
		case guessed:
			c.State = Guessed
		}
		cells = append(cells, c)
		col++
	}
	return cells
}

// DisplayText returns the text the cells spell out, line breaks included.
func DisplayText(cells []Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Newline {
			b.WriteByte('\n')
			continue
		}
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Lines splits cells into rows. A highlighted line break stays at the end
// of its row; other line breaks are dropped.
func Lines(cells []Cell) [][]Cell {
	lines := [][]Cell{nil}
	for _, c := range cells {
		if c.Newline {
			if c.State == Highlighted {
				lines[len(lines)-1] = append(lines[len(lines)-1], c)
			}
			lines = append(lines, nil)
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], c)
	}
	return lines
}
