package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/msull/emilytarot/internal/domain"
	"github.com/msull/emilytarot/internal/ports"
	"github.com/msull/emilytarot/internal/prompts"
)

// maxAttempts bounds the completion retry loop: a reply that fails
// directive extraction is discarded and regenerated up to this many
// times before the cycle is abandoned.
const maxAttempts = 3

const headerImageCount = 3

// ReadingService is the turn controller: it validates user submissions,
// advances the transcript, and runs the completion/moderation cycle.
// It takes a DialogueState and returns the advanced state; the caller
// owns loading and persisting it.
type ReadingService struct {
	decks     ports.DeckStore
	completer ports.Completer
	moderator ports.Moderator
	images    ports.ImageLibrary
	rng       domain.RNG
	logger    *slog.Logger
	deckID    string
}

func NewReadingService(
	decks ports.DeckStore,
	completer ports.Completer,
	moderator ports.Moderator,
	images ports.ImageLibrary,
	rng domain.RNG,
	logger *slog.Logger,
	deckID string,
) *ReadingService {
	return &ReadingService{
		decks:     decks,
		completer: completer,
		moderator: moderator,
		images:    images,
		rng:       rng,
		logger:    logger,
		deckID:    deckID,
	}
}

// StartSession creates a fresh reading: a new session id, one of the
// scripted intros as the opening persona turn, and a set of decorative
// images chosen without replacement.
func (s *ReadingService) StartSession(ctx context.Context) domain.DialogueState {
	now := time.Now()
	id := domain.NewSessionID(now, s.rng)
	intro := prompts.RandomIntro(s.rng)

	var header []string
	var persona string
	if available, err := s.images.List(ctx); err != nil {
		s.logger.WarnContext(ctx, "image library unavailable", "error", err)
	} else if picked := domain.SampleDistinct(available, headerImageCount+1, s.rng); len(picked) == headerImageCount+1 {
		header = picked[:headerImageCount]
		persona = picked[headerImageCount]
	}

	state := domain.NewState(id, intro, header, persona, now)
	s.logger.InfoContext(ctx, "starting new session", "session_id", id)
	return state
}

// SwitchDrawMode sets how cards are selected and clears any in-progress
// virtual draw.
func (s *ReadingService) SwitchDrawMode(state domain.DialogueState, mode domain.DrawMode) (domain.DialogueState, error) {
	if state.Flagged {
		return state, domain.ErrSessionFlagged
	}
	if mode != domain.DrawVirtual && mode != domain.DrawPhysical {
		return state, fmt.Errorf("%w: unknown draw mode %q", domain.ErrInvalidSubmission, mode)
	}
	state.DrawMode = mode
	state.PendingCards = nil
	return state, nil
}

// DrawVirtualCard draws one card deterministically from seed, excluding
// everything already drawn this session. Replaying the same seed against
// the same exclusion set reproduces the same card; a reshuffle is just a
// fresh seed.
func (s *ReadingService) DrawVirtualCard(ctx context.Context, state domain.DialogueState, seed int64) (domain.DialogueState, error) {
	if state.Flagged {
		return state, domain.ErrSessionFlagged
	}
	if state.DrawMode != domain.DrawVirtual {
		return state, fmt.Errorf("%w: virtual draw requires virtual draw mode", domain.ErrInvalidSubmission)
	}

	cmds, err := state.LatestCommands()
	if err != nil {
		return state, fmt.Errorf("inspect transcript: %w", err)
	}
	if len(state.PendingCards) >= cmds.DrawCount {
		return state, domain.ErrDrawComplete
	}

	deck, err := s.decks.GetDeck(ctx, s.deckID)
	if err != nil {
		return state, fmt.Errorf("get deck: %w", err)
	}

	exclude := make([]string, 0, len(state.AllCards)+len(state.PendingCards))
	exclude = append(exclude, state.AllCards...)
	exclude = append(exclude, state.PendingCards...)

	card, err := domain.DrawCard(deck, exclude, domain.SeededRNG(seed))
	if err != nil {
		return state, err
	}

	state.PendingCards = append(state.PendingCards, card.Name)
	return state, nil
}

// SubmitTurn runs one submission cycle: validate the answers and cards
// against the latest persona turn's commands, moderate the answer text,
// append the user-side turns, then generate the next persona reply with
// a bounded retry around directive extraction.
//
// The returned state must be persisted by the caller even when the
// error is non-nil: a moderation flag and the user-side appends survive
// a failed generation.
func (s *ReadingService) SubmitTurn(ctx context.Context, state domain.DialogueState, answers, cards []string) (domain.DialogueState, error) {
	if state.Flagged {
		return state, domain.ErrSessionFlagged
	}
	if state.DrawMode == "" {
		return state, fmt.Errorf("%w: a draw mode must be chosen before the first exchange", domain.ErrInvalidSubmission)
	}

	cmds, err := state.LatestCommands()
	if err != nil {
		return state, fmt.Errorf("inspect transcript: %w", err)
	}
	if len(cmds.Questions) == 0 && cmds.DrawCount == 0 {
		return state, fmt.Errorf("%w: the reading has concluded", domain.ErrInvalidSubmission)
	}

	if err := validateAnswers(answers, len(cmds.Questions)); err != nil {
		return state, err
	}
	if err := validateCards(cards, cmds.DrawCount, state.AllCards); err != nil {
		return state, err
	}

	if len(answers) > 0 {
		joined := strings.Join(answers, "\n")
		flagged, err := s.moderator.Moderate(ctx, joined)
		if err != nil {
			return state, fmt.Errorf("moderate answers: %w", err)
		}
		if flagged {
			state.Flagged = true
			s.logger.WarnContext(ctx, "session flagged by moderation", "session_id", state.SessionID)
			return state, domain.ErrSessionFlagged
		}
		state.AppendUser(joined)
	}

	if len(cards) > 0 {
		state.AppendCardNote(cards)
		state.AllCards = append(state.AllCards, cards...)
		state.PendingCards = nil
	}

	messages := buildMessages(state)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		completion, err := s.completer.Complete(ctx, messages)
		if err != nil {
			lastErr = err
			s.logger.WarnContext(ctx, "completion call failed",
				"session_id", state.SessionID, "attempt", attempt, "error", err)
			continue
		}

		// Usage counts against the session even when the reply is
		// discarded below.
		state.TokensUsed += completion.Tokens

		if _, err := domain.ExtractCommands(completion.Text); err != nil {
			lastErr = err
			s.logger.WarnContext(ctx, "discarding malformed reply",
				"session_id", state.SessionID, "attempt", attempt, "error", err)
			continue
		}

		state.AppendPersona(completion.Text)
		return state, nil
	}

	return state, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, lastErr)
}

// validateAnswers checks counts and blankness only; the submitted text
// is stored verbatim, so trimming happens on throwaway copies here.
func validateAnswers(answers []string, want int) error {
	if len(answers) != want {
		return fmt.Errorf("%w: expected %d answer(s), got %d", domain.ErrInvalidSubmission, want, len(answers))
	}
	for i, a := range answers {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: answer %d is empty", domain.ErrInvalidSubmission, i+1)
		}
	}
	return nil
}

func validateCards(cards []string, want int, already []string) error {
	if len(cards) != want {
		return fmt.Errorf("%w: expected %d card(s), got %d", domain.ErrInvalidSubmission, want, len(cards))
	}
	seen := make(map[string]bool, len(already)+len(cards))
	for _, c := range already {
		seen[c] = true
	}
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w: card %q already drawn", domain.ErrInvalidSubmission, c)
		}
		seen[c] = true
	}
	return nil
}

// buildMessages assembles the outbound completion request: the fixed
// persona system message, the transcript mapped to chat roles, and the
// reinforcement message matching where the reading stands.
func buildMessages(state domain.DialogueState) []ports.ChatMessage {
	messages := make([]ports.ChatMessage, 0, len(state.Transcript)+2)
	messages = append(messages, ports.ChatMessage{Role: ports.RoleSystem, Content: prompts.InitialSystemMsg})

	for _, turn := range state.Transcript {
		var role string
		switch turn.Speaker {
		case domain.SpeakerPersona:
			role = ports.RoleAssistant
		case domain.SpeakerUser:
			role = ports.RoleUser
		default:
			role = ports.RoleSystem
		}
		messages = append(messages, ports.ChatMessage{Role: role, Content: turn.Text})
	}

	reinforcement := prompts.ReinforcementMsg
	if state.EndsWithCardNote() {
		reinforcement = prompts.CardsReinforcementMsg
	}
	return append(messages, ports.ChatMessage{Role: ports.RoleSystem, Content: reinforcement})
}
