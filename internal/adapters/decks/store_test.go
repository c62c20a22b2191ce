package decks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msull/emilytarot/internal/adapters/decks"
	"github.com/msull/emilytarot/internal/domain"
)

func TestEmbeddedStore_RiderWaite(t *testing.T) {
	store, err := decks.NewEmbeddedStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deck, err := store.GetDeck(context.Background(), "rider_waite")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(deck.Cards) != 78 {
		t.Fatalf("expected 78 cards, got %d", len(deck.Cards))
	}

	names := make(map[string]bool, len(deck.Cards))
	for _, c := range deck.Cards {
		if c.ID == "" || c.Name == "" {
			t.Errorf("card with empty id or name: %+v", c)
		}
		if names[c.Name] {
			t.Errorf("duplicate card name: %s", c.Name)
		}
		names[c.Name] = true
	}

	for _, want := range []string{"The Fool", "The World", "Ace of Wands", "King of Pentacles"} {
		if !names[want] {
			t.Errorf("deck missing %q", want)
		}
	}
}

func TestEmbeddedStore_UnknownDeck(t *testing.T) {
	store, err := decks.NewEmbeddedStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.GetDeck(context.Background(), "thoth")
	if !errors.Is(err, domain.ErrDeckNotFound) {
		t.Errorf("expected ErrDeckNotFound, got %v", err)
	}
}
