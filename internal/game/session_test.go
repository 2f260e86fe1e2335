package game

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/cryptogram/cryptogram/internal/puzzle"
)

func newTestSession(t *testing.T, v Variant) *Session {
	t.Helper()
	m := make(puzzle.LetterMap)
	for _, c := range puzzle.Alphabet {
		m[c] = c
	}
	for from, to := range map[rune]rune{'A': 'Z', 'B': 'Y', 'C': 'X', 'D': 'W', 'Z': 'A', 'Y': 'B', 'X': 'C', 'W': 'D'} {
		m[from] = to
	}
	p, err := puzzle.New("AB\nCD", m)
	if err != nil {
		t.Fatal(err)
	}
	if p.Text != "ZY\nXW" {
		t.Fatalf("puzzle text = %q", p.Text)
	}
	return NewSession(p, v, zerolog.Nop())
}

func TestTypingAssignsAndAdvances(t *testing.T) {
	s := newTestSession(t, Enhanced)
	s.Handle(LetterEvent('a'))

	if r, ok := s.Guesses().Lookup('Z'); !ok || r != 'A' {
		t.Errorf("Lookup(Z) = %q, %v; want 'A'", r, ok)
	}
	if s.Cursor() != (Cursor{0, 1}) {
		t.Errorf("cursor = %v, want (0,1)", s.Cursor())
	}
}

func TestTypingWrapsAtRowEnd(t *testing.T) {
	s := newTestSession(t, Enhanced)
	s.Handle(Event{Kind: EventRight})
	s.Handle(LetterEvent('B'))

	if r, _ := s.Guesses().Lookup('Y'); r != 'B' {
		t.Errorf("Lookup(Y) = %q, want 'B'", r)
	}
	if s.Cursor() != (Cursor{1, 0}) {
		t.Errorf("cursor = %v, want (1,0)", s.Cursor())
	}
}

func TestRightWraps(t *testing.T) {
	s := newTestSession(t, Enhanced)
	s.Handle(Event{Kind: EventRight})
	if s.Cursor() != (Cursor{0, 1}) {
		t.Fatalf("cursor = %v, want (0,1)", s.Cursor())
	}
	s.Handle(Event{Kind: EventRight})
	if s.Cursor() != (Cursor{1, 0}) {
		t.Errorf("cursor = %v, want (1,0)", s.Cursor())
	}
}

func TestLegacyRightDoesNotWrap(t *testing.T) {
	s := newTestSession(t, Legacy)
	s.Handle(Event{Kind: EventRight})
	s.Handle(Event{Kind: EventRight})
	if s.Cursor() != (Cursor{0, 2}) {
		t.Errorf("cursor = %v, want (0,2)", s.Cursor())
	}

	// Typing on the line break cell does nothing and does not move.
	s.Handle(LetterEvent('Q'))
	if s.Guesses().Len() != 0 || s.Cursor() != (Cursor{0, 2}) {
		t.Errorf("guesses %v, cursor %v", s.Guesses(), s.Cursor())
	}
}

func TestDeleteRemovesGuessInPlace(t *testing.T) {
	s := newTestSession(t, Enhanced)
	s.Handle(LetterEvent('A'))
	s.Handle(Event{Kind: EventLeft})
	s.Handle(Event{Kind: EventDelete})

	if s.Guesses().Len() != 0 {
		t.Errorf("guesses = %v, want empty", s.Guesses())
	}
	if s.Cursor() != (Cursor{0, 0}) {
		t.Errorf("cursor = %v, want (0,0)", s.Cursor())
	}

	// Deleting again, or past the end of a row, changes nothing.
	s.Handle(Event{Kind: EventDelete})
	s.Handle(Event{Kind: EventDown})
	s.Handle(Event{Kind: EventRight})
	s.Handle(Event{Kind: EventRight})
	s.Handle(Event{Kind: EventDelete})
	if s.Guesses().Len() != 0 {
		t.Errorf("guesses = %v, want empty", s.Guesses())
	}
}

func TestGuessAppliesToAllOccurrences(t *testing.T) {
	s := newTestSession(t, Enhanced)
	s.Handle(LetterEvent('E'))
	guessed, total := s.Coverage()
	if guessed != 1 || total != 4 {
		t.Errorf("Coverage() = %d/%d, want 1/4", guessed, total)
	}
}

func TestNoneEventIgnored(t *testing.T) {
	s := newTestSession(t, Enhanced)
	s.Handle(LetterEvent('1'))
	s.Handle(Event{})
	if s.Cursor() != (Cursor{}) || s.Guesses().Len() != 0 {
		t.Errorf("state changed: cursor %v, guesses %v", s.Cursor(), s.Guesses())
	}
}
