package puzzle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize strips a UTF-8 BOM, converts CRLF and CR line endings to LF and
// drops trailing newlines.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimRight(text, "\n")
}

// Validate checks that text is printable UTF-8. Newlines and tabs are allowed.
func Validate(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("text is not valid UTF-8")
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	for i, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("text has control character %U at byte %d", r, i)
		}
	}
	return nil
}
