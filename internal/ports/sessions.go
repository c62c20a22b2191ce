package ports

import (
	"context"

	"github.com/msull/emilytarot/internal/domain"
)

// SessionStore persists DialogueState keyed by session id. Load returns
// an error wrapping domain.ErrSessionNotFound for missing or unreadable
// sessions; callers treat that as "no session" and start fresh.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (domain.DialogueState, error)
	Save(ctx context.Context, state domain.DialogueState) error
}
