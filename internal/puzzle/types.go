package puzzle

// Alphabet is the ordered set of letters a LetterMap permutes.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Puzzle is an encoded source text, fixed for the lifetime of a session.
type Puzzle struct {
	Plain string // uppercased source text
	Text  string // ciphertext shown to the player
}

// Quote is one entry of a quote collection file.
type Quote struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// IsLetter reports whether r is an uppercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
