package term

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cryptogram/cryptogram/internal/game"
	"github.com/cryptogram/cryptogram/internal/render"
)

// Renderer draws a full frame.
type Renderer interface {
	Render(w io.Writer, cells []render.Cell) error
}

// Run draws the puzzle, then reads one event at a time from in, applies it
// to s and redraws. It returns nil when in is exhausted, ctx.Err() when ctx
// is done between events, or the first read or write error.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *game.Session, r Renderer) error {
	dec := NewDecoder(in)
	draw := func() error {
		cells := render.Cells(s.Board().Text(), s.Cursor(), s.Guesses())
		if err := r.Render(out, cells); err != nil {
			return fmt.Errorf("drawing puzzle: %w", err)
		}
		return nil
	}

	if err := draw(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		s.Handle(ev)
		if err := draw(); err != nil {
			return err
		}
	}
}
