package main

import (
	"github.com/cryptogram/cryptogram/assets"
	"github.com/cryptogram/cryptogram/internal/config"
	"github.com/cryptogram/cryptogram/internal/puzzle"
)

// loadText returns the plaintext for the configured source and, for
// quotes, its author.
func loadText(cfg config.Config) (text, attribution string, err error) {
	switch cfg.Source {
	case "quotes":
		src := puzzle.QuoteSource{FS: assets.FS, Dir: assets.QuotesDir, File: cfg.QuoteFile, Tag: cfg.QuoteTag}
		q, err := src.Quote()
		if err != nil {
			return "", "", err
		}
		return q.Text, q.Author, nil
	case "file":
		text, err = puzzle.FileSource{Path: cfg.TextFile}.Text()
	default:
		text, err = puzzle.StaticSource(puzzle.DefaultText).Text()
	}
	return text, "", err
}
