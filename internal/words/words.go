// Package words holds the categorized vocabulary the coordinator draws from.
package words

import "math/rand"

type Difficulty string

const (
	DIFFICULTY_FACILE    Difficulty = "facile"
	DIFFICULTY_MOYEN     Difficulty = "moyen"
	DIFFICULTY_DIFFICILE Difficulty = "difficile"
)

type WordEntry struct {
	Word       string
	Category   string
	Difficulty Difficulty
}

// Count returns the bank size, optionally restricted to one difficulty.
func Count(difficulty Difficulty) int {
	if difficulty == "" {
		return len(bank)
	}
	n := 0
	for _, entry := range bank {
		if entry.Difficulty == difficulty {
			n++
		}
	}
	return n
}

// Draw picks one unused entry uniformly at random. An empty difficulty means
// no difficulty filter. Returns false when the filtered pool is exhausted;
// the bank is large enough that this never happens in a normal game.
func Draw(used map[string]struct{}, difficulty Difficulty) (WordEntry, bool) {
	available := make([]WordEntry, 0, len(bank))
	for _, entry := range bank {
		if _, taken := used[entry.Word]; taken {
			continue
		}
		if difficulty != "" && entry.Difficulty != difficulty {
			continue
		}
		available = append(available, entry)
	}

	if len(available) == 0 {
		return WordEntry{}, false
	}

	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	return available[0], true
}
