package game

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode"

	"github.com/cryptogram/cryptogram/internal/puzzle"
)

// ErrNotLetter is returned when a guess involves something other than A-Z.
var ErrNotLetter = errors.New("not a letter")

// GuessTable maps ciphertext letters to the player's plaintext guesses.
// A guess applies to every occurrence of its cipher letter.
type GuessTable struct {
	m map[rune]rune
}

// NewGuessTable returns an empty table.
func NewGuessTable() *GuessTable {
	return &GuessTable{m: make(map[rune]rune)}
}

// Assign sets the guess for cipher, replacing any earlier guess.
func (g *GuessTable) Assign(cipher, guess rune) error {
	guess = unicode.ToUpper(guess)
	if !puzzle.IsLetter(cipher) {
		return fmt.Errorf("cipher %q: %w", cipher, ErrNotLetter)
	}
	if !puzzle.IsLetter(guess) {
		return fmt.Errorf("guess %q: %w", guess, ErrNotLetter)
	}
	g.m[cipher] = guess
	return nil
}

// Remove deletes the guess for cipher. It reports whether there was one.
func (g *GuessTable) Remove(cipher rune) bool {
	if _, ok := g.m[cipher]; !ok {
		return false
	}
	delete(g.m, cipher)
	return true
}

// Lookup returns the guess for cipher.
func (g *GuessTable) Lookup(cipher rune) (rune, bool) {
	if g == nil {
		return 0, false
	}
	r, ok := g.m[cipher]
	return r, ok
}

// Has reports whether cipher has a guess.
func (g *GuessTable) Has(cipher rune) bool {
	_, ok := g.Lookup(cipher)
	return ok
}

// Len returns the number of guessed cipher letters.
func (g *GuessTable) Len() int {
	if g == nil {
		return 0
	}
	return len(g.m)
}

// Letters returns the guessed cipher letters in order.
func (g *GuessTable) Letters() []rune {
	if g == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(g.m))
}

// Equal reports whether both tables hold the same guesses.
func (g *GuessTable) Equal(other *GuessTable) bool {
	return maps.Equal(g.m, other.m)
}

// String lists the guesses as "Z=A Y=B".
func (g *GuessTable) String() string {
	var b []byte
	for i, c := range g.Letters() {
		if i > 0 {
			b = append(b, ' ')
		}
		b = fmt.Appendf(b, "%c=%c", c, g.m[c])
	}
	return string(b)
}
