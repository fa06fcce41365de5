// Package match decides whether a guess counts as the current word.
// Guesses arrive with accents, stray punctuation and typos, so both sides
// are canonicalized before an edit-distance comparison.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ligatures = strings.NewReplacer("œ", "oe", "æ", "ae")

// Normalize lowercases, maps the French ligatures, strips diacritics and
// everything outside [a-z0-9 ], and collapses whitespace runs.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = ligatures.Replace(s)

	// Canonical decomposition, then drop the combining marks (accents).
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// levenshtein is the classic three-operation edit distance
// (substitution, insertion, deletion, unit cost), computed over runes.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for j := 0; j <= len(ra); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = min(prev[j-1], min(curr[j-1], prev[j])) + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// tolerance scales with the normalized answer length: short words leave
// little room for typos, long words a bit more.
func tolerance(answerLen int) int {
	switch {
	case answerLen > 10:
		return 3
	case answerLen > 5:
		return 2
	default:
		return 1
	}
}

// IsMatch reports whether guess is close enough to answer. Exact equality
// after normalization always matches; otherwise the edit distance must stay
// within the length-scaled tolerance. No phonetic or synonym heuristics.
func IsMatch(guess, answer string) bool {
	g := Normalize(guess)
	a := Normalize(answer)

	if g == a {
		return true
	}

	return levenshtein(g, a) <= tolerance(len([]rune(a)))
}
