package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
)

// DefaultText is the verse used when no other source is configured.
const DefaultText = "In the forest deep and green,\n" +
	"Lies a world we've never seen."

// TextSource supplies the plaintext a puzzle is built from.
type TextSource interface {
	Text() (string, error)
}

// StaticSource returns a fixed string.
type StaticSource string

func (s StaticSource) Text() (string, error) {
	text := Normalize(string(s))
	if err := Validate(text); err != nil {
		return "", err
	}
	return text, nil
}

// FileSource reads the text from a file on every call.
type FileSource struct {
	Path string
}

func (s FileSource) Text() (string, error) {
	if s.Path == "" {
		return "", errors.New("no text file configured")
	}
	return ReadTextFile(s.Path)
}

// QuoteSource picks a random quote from the JSON collections in Dir of FS,
// or from File when it is set.
type QuoteSource struct {
	FS   fs.FS
	Dir  string
	File string
	Tag  string
	Rand *rand.Rand
}

func (s QuoteSource) Text() (string, error) {
	q, err := s.Quote()
	if err != nil {
		return "", err
	}
	return q.Text, nil
}

// Quote returns the picked quote including its attribution.
func (s QuoteSource) Quote() (Quote, error) {
	quotes, err := s.load()
	if err != nil {
		return Quote{}, err
	}
	if s.Tag != "" {
		quotes = GetQuotesWithTag(quotes, s.Tag)
	}
	if len(quotes) == 0 {
		return Quote{}, fmt.Errorf("no quotes found in %s", s.origin())
	}
	idx := rand.IntN(len(quotes))
	if s.Rand != nil {
		idx = s.Rand.IntN(len(quotes))
	}
	return quotes[idx], nil
}

func (s QuoteSource) load() ([]Quote, error) {
	if s.File != "" {
		return LoadQuotesFromFile(s.File)
	}
	return LoadQuotesFromFS(s.FS, s.Dir)
}

func (s QuoteSource) origin() string {
	if s.File != "" {
		return s.File
	}
	return s.Dir
}
