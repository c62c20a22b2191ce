package domain

import "time"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Speaker identifies who a transcript turn is attributed to.
type Speaker string

const (
	// SpeakerPersona is text attributed to the reading guide.
	SpeakerPersona Speaker = "persona"
	// SpeakerUser is the human's input.
	SpeakerUser Speaker = "user"
	// SpeakerNote is an out-of-band annotation injected to give the
	// persona context, e.g. which cards were just selected.
	SpeakerNote Speaker = "note"
)

// Turn is one entry in a session transcript. Text is stored verbatim,
// including any directive lines; those are stripped only at render or
// extraction time.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// DrawMode selects how the user picks cards during a reading.
type DrawMode string

const (
	// DrawVirtual simulates card draws server-side.
	DrawVirtual DrawMode = "virtual"
	// DrawPhysical means the user draws from their own deck and enters
	// the card names manually.
	DrawPhysical DrawMode = "physical"
)

// Phase is the derived lifecycle position of a reading. It is never
// stored; it is computed from the transcript and the flagged bit.
type Phase string

const (
	PhaseAwaitingStart  Phase = "awaiting_start"
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseAwaitingDraw   Phase = "awaiting_draw"
	PhaseConcluded      Phase = "concluded"
	PhaseFlagged        Phase = "flagged"
)

// Card represents a single tarot card in a deck.
type Card struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Deck is a collection of tarot cards.
type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// DialogueState is the full persisted state of one reading session.
// The transcript is append-only: turns are never edited or removed once
// committed.
type DialogueState struct {
	SessionID    string    `json:"session_id"`
	Transcript   []Turn    `json:"transcript"`
	DrawMode     DrawMode  `json:"draw_mode,omitempty"`
	PendingCards []string  `json:"pending_cards,omitempty"`
	AllCards     []string  `json:"all_cards,omitempty"`
	TokensUsed   int       `json:"tokens_used"`
	Flagged      bool      `json:"flagged"`
	HeaderImages []string  `json:"header_images,omitempty"`
	PersonaImage string    `json:"persona_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExtractedCommands is the structured view derived from one persona
// reply: follow-up questions, an optional card-draw count, and the text
// with directive lines stripped.
type ExtractedCommands struct {
	Questions   []string
	DrawCount   int
	DisplayText string
}
