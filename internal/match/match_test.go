package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected string
	}{
		{desc: "lowercases and trims", input: "  ChIeN  ", expected: "chien"},
		{desc: "strips accents", input: "éléphant", expected: "elephant"},
		{desc: "oe ligature", input: "œuf", expected: "oeuf"},
		{desc: "ae ligature", input: "cæcum", expected: "caecum"},
		{desc: "drops punctuation", input: "l'arc-en-ciel !", expected: "larcenciel"},
		{desc: "collapses inner spaces", input: "sac   à   dos", expected: "sac a dos"},
		{desc: "keeps digits", input: "Boeing 747", expected: "boeing 747"},
		{desc: "empty", input: "", expected: ""},
		{desc: "only punctuation", input: "?!...", expected: ""},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.expected, Normalize(tC.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  ChIeN  ", "éléphant", "œuf", "sac   à   dos", "Noël !", "", "chien "}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("chien", "chien"))
	assert.Equal(t, 1, levenshtein("chien", "chiens"))
	assert.Equal(t, 1, levenshtein("chien", "chieb"))
	assert.Equal(t, 3, levenshtein("chien", "chat"))
	assert.Equal(t, 5, levenshtein("", "chien"))
	assert.Equal(t, 1, levenshtein("ornithorynque", "ornithorinque"))
}

func TestIsMatch(t *testing.T) {
	testCases := []struct {
		desc     string
		guess    string
		answer   string
		expected bool
	}{
		{desc: "exact", guess: "chien", answer: "chien", expected: true},
		{desc: "case and trailing space", guess: "chien ", answer: "Chien", expected: true},
		{desc: "plural within tolerance", guess: "chien", answer: "chiens", expected: true},
		{desc: "different word", guess: "chien", answer: "chat", expected: false},
		{desc: "long word substitution", guess: "ornithorinque", answer: "ornithorynque", expected: true},
		{desc: "accents ignored", guess: "elephant", answer: "éléphant", expected: true},
		{desc: "two typos on medium word", guess: "parraplui", answer: "parapluie", expected: true},
		{desc: "short word stays strict", guess: "lit", answer: "lac", expected: false},
		{desc: "empty guess", guess: "", answer: "chien", expected: false},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.expected, IsMatch(tC.guess, tC.answer))
		})
	}
}
