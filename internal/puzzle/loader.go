package puzzle

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// ReadTextFile reads a source text file from disk.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	text := Normalize(string(data))
	if err := Validate(text); err != nil {
		return "", fmt.Errorf("text file %s: %w", path, err)
	}
	return text, nil
}

// LoadQuotesFromFile loads a quote collection from a JSON file on disk.
func LoadQuotesFromFile(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quote file: %w", err)
	}
	var quotes []Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("parsing quote file: %w", err)
	}
	return usableQuotes(quotes), nil
}

// LoadQuotesFromFS loads every JSON quote file in dir of fsys (e.g., embed.FS).
// Quotes with no letters are skipped.
func LoadQuotesFromFS(fsys fs.FS, dir string) ([]Quote, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading quotes dir: %w", err)
	}

	var all []Quote
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := entry.Name()
		if dir != "." {
			path = dir + "/" + path
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", entry.Name(), err)
		}
		var quotes []Quote
		if err := json.Unmarshal(data, &quotes); err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", entry.Name(), err)
		}
		all = append(all, usableQuotes(quotes)...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})

	return all, nil
}

// usableQuotes normalizes quote texts and drops the ones with nothing to show.
func usableQuotes(quotes []Quote) []Quote {
	out := quotes[:0]
	for _, q := range quotes {
		q.Text = Normalize(q.Text)
		if Validate(q.Text) != nil {
			continue
		}
		out = append(out, q)
	}
	return out
}

// GetQuotesWithTag returns the quotes carrying tag.
func GetQuotesWithTag(quotes []Quote, tag string) []Quote {
	var result []Quote
	for _, q := range quotes {
		for _, t := range q.Tags {
			if t == tag {
				result = append(result, q)
				break
			}
		}
	}
	return result
}
