package domain

import (
	"strings"
	"unicode/utf8"
)

// Normalize strips boilerplate lines from extracted syllabus text before it
// is sent to the model: blank lines, page-number-only lines, and fragments of
// two characters or fewer. Length is counted in runes, not bytes, so short
// non-ASCII fragments are dropped too. Surviving lines keep their original
// order. An all-noise input yields the empty string, which callers treat as
// a failure to proceed.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) <= 2 || allDigits(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
