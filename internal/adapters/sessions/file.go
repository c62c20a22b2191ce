// Package sessions provides DialogueState persistence backends.
package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/msull/emilytarot/internal/domain"
)

// FileStore persists one JSON object per session at <dir>/<id>.json.
// Writes are last-writer-wins with no locking.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads a session file. Missing, unreadable, or corrupt files all
// surface as domain.ErrSessionNotFound so the caller falls back to a
// fresh session instead of crashing on a bad file.
func (s *FileStore) Load(_ context.Context, sessionID string) (domain.DialogueState, error) {
	if err := validateID(sessionID); err != nil {
		return domain.DialogueState{}, err
	}

	raw, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		return domain.DialogueState{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}

	var state domain.DialogueState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.DialogueState{}, fmt.Errorf("%w: %s: %v", domain.ErrSessionNotFound, sessionID, err)
	}

	return state, nil
}

func (s *FileStore) Save(_ context.Context, state domain.DialogueState) error {
	if err := validateID(state.SessionID); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", state.SessionID, err)
	}
	if err := os.WriteFile(s.path(state.SessionID), raw, 0o644); err != nil {
		return fmt.Errorf("write session %s: %w", state.SessionID, err)
	}
	return nil
}

func (s *FileStore) path(sessionID string) string {
	return filepath.Join(s.dir, sessionID+".json")
}

// validateID rejects ids that would escape the session directory.
func validateID(sessionID string) error {
	if sessionID == "" || strings.ContainsAny(sessionID, `/\.`) {
		return fmt.Errorf("%w: invalid session id %q", domain.ErrSessionNotFound, sessionID)
	}
	return nil
}
