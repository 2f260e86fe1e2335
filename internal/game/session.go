package game

import (
	"github.com/rs/zerolog"

	"github.com/cryptogram/cryptogram/internal/puzzle"
)

// Session owns the mutable state of one puzzle: the cursor and the guesses.
type Session struct {
	puzzle  puzzle.Puzzle
	variant Variant
	board   Board
	cursor  Cursor
	guesses *GuessTable
	log     zerolog.Logger
}

// NewSession starts a session on p with the cursor at the top-left.
func NewSession(p puzzle.Puzzle, v Variant, log zerolog.Logger) *Session {
	return &Session{
		puzzle:  p,
		variant: v,
		board:   NewBoard(p.Text),
		guesses: NewGuessTable(),
		log:     log,
	}
}

func (s *Session) Puzzle() puzzle.Puzzle { return s.puzzle }
func (s *Session) Variant() Variant      { return s.variant }
func (s *Session) Board() Board          { return s.board }
func (s *Session) Cursor() Cursor        { return s.cursor }
func (s *Session) Guesses() *GuessTable  { return s.guesses }

// Coverage returns how many distinct cipher letters have a guess.
func (s *Session) Coverage() (guessed, total int) {
	return puzzle.Coverage(s.puzzle.Text, s.guesses.Has)
}

// Handle applies one input event.
func (s *Session) Handle(ev Event) {
	switch ev.Kind {
	case EventUp:
		s.cursor = s.cursor.Up()
	case EventDown:
		s.cursor = s.cursor.Down(s.board)
	case EventLeft:
		s.cursor = s.cursor.Left()
	case EventRight:
		if s.variant == Legacy {
			s.cursor = s.cursor.Right()
		} else {
			s.cursor = s.cursor.Advance(s.board)
		}
	case EventLetter:
		s.guess(ev.Letter)
	case EventDelete:
		s.unguess()
	default:
		return
	}

	s.log.Debug().
		Stringer("event", ev.Kind).
		Str("letter", letterString(ev.Letter)).
		Stringer("cursor", s.cursor).
		Msg("input")
}

func (s *Session) guess(letter rune) {
	if c, ok := s.board.CharAt(s.cursor.Row, s.cursor.Col); ok && puzzle.IsLetter(c) {
		if err := s.guesses.Assign(c, letter); err != nil {
			s.log.Warn().Err(err).Msg("guess rejected")
		} else {
			s.log.Debug().Str("cipher", string(c)).Str("guess", letterString(letter)).Msg("guess assigned")
		}
	}
	if s.variant == Enhanced {
		s.cursor = s.cursor.Advance(s.board)
	}
}

func (s *Session) unguess() {
	c, ok := s.board.CharAt(s.cursor.Row, s.cursor.Col)
	if !ok {
		return
	}
	if s.guesses.Remove(c) {
		s.log.Debug().Str("cipher", string(c)).Msg("guess removed")
	}
}

func letterString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}
