package game

import "strings"

// Board indexes puzzle text by (row, column). Rows are split on line
// breaks and columns count runes since the start of the row.
type Board struct {
	text  string
	lines [][]rune
}

// NewBoard indexes text.
func NewBoard(text string) Board {
	rows := strings.Split(text, "\n")
	lines := make([][]rune, len(rows))
	for i, r := range rows {
		lines[i] = []rune(r)
	}
	return Board{text: text, lines: lines}
}

// Text returns the text the board was built from.
func (b Board) Text() string {
	return b.text
}

// LineBreaks returns the number of line breaks in the text, which is also
// the largest valid cursor row.
func (b Board) LineBreaks() int {
	return len(b.lines) - 1
}

// CharAt returns the rune at (row, col). ok is false when the position is
// past the end of the row, on a line break, or outside the text.
func (b Board) CharAt(row, col int) (r rune, ok bool) {
	if row < 0 || row >= len(b.lines) || col < 0 {
		return 0, false
	}
	line := b.lines[row]
	if col >= len(line) {
		return 0, false
	}
	return line[col], true
}

// IsBreakAt reports whether (row, col) is the line break that ends row.
func (b Board) IsBreakAt(row, col int) bool {
	return row >= 0 && row < b.LineBreaks() && col == len(b.lines[row])
}
