package domain

import (
	"math/rand/v2"
)

// SeededRNG returns an RNG that is a pure function of seed: replaying
// the same seed against the same exclusion set reproduces the same
// card, so a reshuffle is simply a fresh seed.
func SeededRNG(seed int64) RNG {
	return seededRNG{rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// DrawCard samples uniformly from the deck until it finds a card whose
// name is not in exclude. Errors with ErrAllCardsDrawn once the
// exclusion set covers the whole deck.
func DrawCard(deck Deck, exclude []string, rng RNG) (Card, error) {
	used := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		used[name] = true
	}

	remaining := 0
	for _, c := range deck.Cards {
		if !used[c.Name] {
			remaining++
		}
	}
	if remaining == 0 {
		return Card{}, ErrAllCardsDrawn
	}

	for {
		card := deck.Cards[rng.Intn(len(deck.Cards))]
		if !used[card.Name] {
			return card, nil
		}
	}
}

// SampleDistinct picks k distinct elements from items using a partial
// Fisher-Yates shuffle. Returns fewer than k when items is short.
func SampleDistinct(items []string, k int, rng RNG) []string {
	picked := make([]string, len(items))
	copy(picked, items)
	for i := len(picked) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		picked[i], picked[j] = picked[j], picked[i]
	}
	if k > len(picked) {
		k = len(picked)
	}
	return picked[:k]
}
