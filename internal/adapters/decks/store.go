// Package decks serves the embedded Rider-Waite deck.
package decks

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/msull/emilytarot/internal/domain"
)

//go:embed data/rider_waite.json
var riderWaiteJSON []byte

const riderWaiteID = "rider_waite"

// EmbeddedStore holds the single built-in deck, parsed once at startup.
type EmbeddedStore struct {
	deck domain.Deck
}

func NewEmbeddedStore() (*EmbeddedStore, error) {
	var cards []domain.Card
	if err := json.Unmarshal(riderWaiteJSON, &cards); err != nil {
		return nil, fmt.Errorf("parse embedded deck %s: %w", riderWaiteID, err)
	}
	return &EmbeddedStore{deck: domain.Deck{
		ID:    riderWaiteID,
		Name:  "Rider-Waite",
		Cards: cards,
	}}, nil
}

func (s *EmbeddedStore) GetDeck(_ context.Context, deckID string) (domain.Deck, error) {
	if deckID != s.deck.ID {
		return domain.Deck{}, domain.ErrDeckNotFound
	}
	return s.deck, nil
}
