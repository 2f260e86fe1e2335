package puzzle

// Coverage counts the distinct cipher letters in text and how many of them
// isGuessed reports as having a guess.
func Coverage(text string, isGuessed func(rune) bool) (guessed, total int) {
	var seen [26]bool
	for _, r := range text {
		if !IsLetter(r) || seen[r-'A'] {
			continue
		}
		seen[r-'A'] = true
		total++
		if isGuessed(r) {
			guessed++
		}
	}
	return guessed, total
}
