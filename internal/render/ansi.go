package render

import (
	"bufio"
	"io"

	"github.com/cryptogram/cryptogram/internal/game"
)

// ANSI escape codes
const (
	ClearHome = "\x1b[2J\x1b[1;1H"
	Reset     = "\x1b[0m"
	Gray      = "\x1b[90m"
	BoldWhite = "\x1b[1;97m"
	White     = "\x1b[97m"
	Underline = "\x1b[4m"
)

// ANSI repaints the whole puzzle with SGR escape codes.
type ANSI struct {
	// CursorCodes are written before the cell under the cursor.
	CursorCodes []string
	// Color disables all SGR codes when false. The clear/home prefix is
	// always written.
	Color bool
}

// NewANSI returns the renderer for a variant. The enhanced variant
// underlines the cursor cell.
func NewANSI(v game.Variant) *ANSI {
	codes := []string{White}
	if v == game.Enhanced {
		codes = append(codes, Underline)
	}
	return &ANSI{CursorCodes: codes, Color: true}
}

// Render clears the screen, homes the cursor and writes every cell.
func (a *ANSI) Render(w io.Writer, cells []Cell) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(ClearHome)

	for _, c := range cells {
		if c.Newline && c.State != Highlighted {
			bw.WriteByte('\n')
			continue
		}
		switch c.State {
		case Highlighted:
			a.style(bw, c.Rune, a.CursorCodes...)
		case Guessed:
			a.style(bw, c.Rune, BoldWhite)
		default:
			a.style(bw, c.Rune, Gray)
		}
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func (a *ANSI) style(w *bufio.Writer, r rune, codes ...string) {
	if !a.Color {
		w.WriteRune(r)
		return
	}
	for _, c := range codes {
		w.WriteString(c)
	}
	w.WriteRune(r)
	w.WriteString(Reset)
}
