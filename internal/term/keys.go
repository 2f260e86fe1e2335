package term

import (
	"bufio"
	"io"

	"github.com/cryptogram/cryptogram/internal/game"
)

// Input bytes
const (
	keyEsc    = 0x1b
	keyDelete = 0x7f
)

// Decoder turns a raw terminal byte stream into input events.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder reads from r one byte at a time.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, 16)}
}

// Next blocks until one event has been read. Arrow keys arrive as
// ESC [ A|B|C|D; any other escape sequence of that length is ignored.
func (d *Decoder) Next() (game.Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return game.Event{}, err
	}

	switch {
	case b == keyEsc:
		return d.arrow()
	case b == keyDelete:
		return game.Event{Kind: game.EventDelete}, nil
	default:
		return game.LetterEvent(rune(b)), nil
	}
}

func (d *Decoder) arrow() (game.Event, error) {
	var seq [2]byte
	if _, err := io.ReadFull(d.r, seq[:]); err != nil {
		return game.Event{}, err
	}
	if seq[0] != '[' {
		return game.Event{}, nil
	}
	switch seq[1] {
	case 'A':
		return game.Event{Kind: game.EventUp}, nil
	case 'B':
		return game.Event{Kind: game.EventDown}, nil
	case 'C':
		return game.Event{Kind: game.EventRight}, nil
	case 'D':
		return game.Event{Kind: game.EventLeft}, nil
	}
	return game.Event{}, nil
}
