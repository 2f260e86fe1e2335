package tui

import (
	"fmt"

	"github.com/cryptogram/cryptogram/internal/game"
)

func coverageText(s *game.Session) string {
	if s == nil {
		return ""
	}

	guessed, total := s.Coverage()
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("Guessed: %d/%d letters", guessed, total)
}

func guessListText(s *game.Session) string {
	if s == nil || s.Guesses().Len() == 0 {
		return "No guesses yet"
	}
	return s.Guesses().String()
}
