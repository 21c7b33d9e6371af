// Package locality derives a coarse same-area signal from two free-text addresses.
//
// The score counts positional mismatches between the normalized strings up to the
// length of the longer one. It is not an edit distance: an insertion near the start
// shifts every following character and scores as highly dissimilar.
package locality

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Score is symmetric and zero for inputs that normalize to the same string.
func Score(a, b string) int {
	na := Normalize(a)
	nb := Normalize(b)

	longer := max(len(na), len(nb))
	distance := 0
	for i := range longer {
		if i >= len(na) || i >= len(nb) || na[i] != nb[i] {
			distance++
		}
	}
	return distance
}

// Normalize lower-cases s and keeps only ASCII letters and digits.
// Accented and other non-ASCII characters are dropped, not transliterated.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range lower.String(s) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
