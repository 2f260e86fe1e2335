package puzzle

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidLetterMap is returned when a map is not a permutation of the alphabet.
var ErrInvalidLetterMap = errors.New("letter map is not a permutation of A-Z")

// LetterMap maps each plaintext letter to its ciphertext letter.
type LetterMap map[rune]rune

// NewLetterMap shuffles the alphabet with r and pairs it with the ordered alphabet.
func NewLetterMap(r *rand.Rand) LetterMap {
	jumbled := []rune(Alphabet)
	r.Shuffle(len(jumbled), func(i, j int) {
		jumbled[i], jumbled[j] = jumbled[j], jumbled[i]
	})

	m := make(LetterMap, len(jumbled))
	for i, c := range Alphabet {
		m[c] = jumbled[i]
	}
	return m
}

// RandomLetterMap returns a LetterMap drawn from a freshly seeded generator.
func RandomLetterMap() LetterMap {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return NewLetterMap(rand.New(rand.NewChaCha8(seed)))
}

// Validate checks that m is total over A-Z and that no two letters share a value.
func (m LetterMap) Validate() error {
	if len(m) != len(Alphabet) {
		return fmt.Errorf("%w: %d entries", ErrInvalidLetterMap, len(m))
	}
	seen := make(map[rune]rune, len(m))
	for _, c := range Alphabet {
		v, ok := m[c]
		if !ok {
			return fmt.Errorf("%w: %c is unmapped", ErrInvalidLetterMap, c)
		}
		if !IsLetter(v) {
			return fmt.Errorf("%w: %c maps to %q", ErrInvalidLetterMap, c, v)
		}
		if prev, dup := seen[v]; dup {
			return fmt.Errorf("%w: %c and %c both map to %c", ErrInvalidLetterMap, prev, c, v)
		}
		seen[v] = c
	}
	return nil
}

// Inverse returns the ciphertext-to-plaintext map.
func (m LetterMap) Inverse() LetterMap {
	inv := make(LetterMap, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

// String renders the map as the 26 ciphertext letters in alphabet order.
func (m LetterMap) String() string {
	out := make([]rune, 0, len(Alphabet))
	for _, c := range Alphabet {
		if v, ok := m[c]; ok {
			out = append(out, v)
		} else {
			out = append(out, ' ')
		}
	}
	return string(out)
}
