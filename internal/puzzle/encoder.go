package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnmappedLetter means a letter had no entry in the LetterMap.
	ErrUnmappedLetter = errors.New("letter missing from letter map")
	// ErrEmptyText is returned for source text with nothing to show.
	ErrEmptyText = errors.New("source text is empty")
)

// Encode uppercases text and substitutes every letter through m.
// Everything that is not A-Z is copied as is.
func Encode(text string, m LetterMap) (string, error) {
	var b strings.Builder
	upper := strings.ToUpper(text)
	b.Grow(len(upper))

	for _, r := range upper {
		if !IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		c, ok := m[r]
		if !ok {
			return "", fmt.Errorf("encoding %q: %w", r, ErrUnmappedLetter)
		}
		b.WriteRune(c)
	}
	return b.String(), nil
}

// New encodes source with m.
func New(source string, m LetterMap) (Puzzle, error) {
	if strings.TrimSpace(source) == "" {
		return Puzzle{}, ErrEmptyText
	}
	text, err := Encode(source, m)
	if err != nil {
		return Puzzle{}, err
	}
	return Puzzle{
		Plain: strings.ToUpper(source),
		Text:  text,
	}, nil
}
