package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/msull/emilytarot/internal/domain"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func testDeck(n int) domain.Deck {
	cards := make([]domain.Card, n)
	for i := range n {
		cards[i] = domain.Card{
			ID:   fmt.Sprintf("card_%02d", i),
			Name: fmt.Sprintf("Card %02d", i),
		}
	}
	return domain.Deck{ID: "test", Name: "Test Deck", Cards: cards}
}

func TestDrawCard_SkipsExcluded(t *testing.T) {
	deck := testDeck(5)
	// First two samples hit excluded cards, third lands on an unused one.
	rng := &deterministicRNG{values: []int{0, 1, 2}}

	card, err := domain.DrawCard(deck, []string{"Card 00", "Card 01"}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Name != "Card 02" {
		t.Errorf("expected Card 02, got %s", card.Name)
	}
}

func TestDrawCard_LastRemainingCard(t *testing.T) {
	deck := testDeck(78)
	exclude := make([]string, 0, 77)
	for i := range 77 {
		exclude = append(exclude, fmt.Sprintf("Card %02d", i))
	}

	// With 77 of 78 excluded, any seed must deterministically yield the
	// one remaining card.
	for _, seed := range []int64{1, 42, 999} {
		card, err := domain.DrawCard(deck, exclude, domain.SeededRNG(seed))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if card.Name != "Card 77" {
			t.Errorf("seed %d: expected Card 77, got %s", seed, card.Name)
		}
	}
}

func TestDrawCard_DeterministicForSeed(t *testing.T) {
	deck := testDeck(78)
	exclude := []string{"Card 03", "Card 11"}

	first, err := domain.DrawCard(deck, exclude, domain.SeededRNG(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.DrawCard(deck, exclude, domain.SeededRNG(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Name != second.Name {
		t.Errorf("same seed produced different cards: %s vs %s", first.Name, second.Name)
	}
}

func TestDrawCard_AllCardsDrawn(t *testing.T) {
	deck := testDeck(3)
	exclude := []string{"Card 00", "Card 01", "Card 02"}

	_, err := domain.DrawCard(deck, exclude, domain.SeededRNG(1))
	if !errors.Is(err, domain.ErrAllCardsDrawn) {
		t.Errorf("expected ErrAllCardsDrawn, got %v", err)
	}
}

func TestDrawCard_NeverDuplicates(t *testing.T) {
	deck := testDeck(10)
	var drawn []string
	for seed := int64(0); seed < 10; seed++ {
		card, err := domain.DrawCard(deck, drawn, domain.SeededRNG(seed))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		for _, prev := range drawn {
			if prev == card.Name {
				t.Fatalf("duplicate draw: %s", card.Name)
			}
		}
		drawn = append(drawn, card.Name)
	}
}

func TestSampleDistinct(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	rng := &deterministicRNG{values: []int{0, 1, 2, 3}}

	picked := domain.SampleDistinct(items, 4, rng)
	if len(picked) != 4 {
		t.Fatalf("expected 4 items, got %d", len(picked))
	}
	seen := make(map[string]bool)
	for _, p := range picked {
		if seen[p] {
			t.Errorf("duplicate pick: %s", p)
		}
		seen[p] = true
	}
}

func TestSampleDistinct_ShortInput(t *testing.T) {
	picked := domain.SampleDistinct([]string{"only"}, 4, &deterministicRNG{values: []int{0}})
	if len(picked) != 1 {
		t.Errorf("expected 1 item, got %d", len(picked))
	}
}
