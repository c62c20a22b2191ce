package domain

import (
	"strings"
	"time"
)

const cardNotePrefix = "The chosen card(s) were: "

// NewState creates a fresh DialogueState whose transcript opens with the
// chosen persona intro. The decorative images are fixed at creation so a
// resumed session renders identically.
func NewState(sessionID, intro string, headerImages []string, personaImage string, now time.Time) DialogueState {
	return DialogueState{
		SessionID:    sessionID,
		Transcript:   []Turn{{Speaker: SpeakerPersona, Text: intro}},
		HeaderImages: headerImages,
		PersonaImage: personaImage,
		CreatedAt:    now.UTC(),
	}
}

// NewSessionID builds a session identifier in the original format: the
// UTC hour timestamp followed by six random lowercase letters.
func NewSessionID(now time.Time, rng RNG) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = byte('a' + rng.Intn(26))
	}
	return now.UTC().Format("2006010215") + string(suffix)
}

// AppendPersona commits a raw persona reply to the transcript.
func (s *DialogueState) AppendPersona(text string) {
	s.Transcript = append(s.Transcript, Turn{Speaker: SpeakerPersona, Text: text})
}

// AppendUser commits the user's joined answer text to the transcript.
func (s *DialogueState) AppendUser(text string) {
	s.Transcript = append(s.Transcript, Turn{Speaker: SpeakerUser, Text: text})
}

// AppendCardNote records which cards were just selected as an
// out-of-band note turn.
func (s *DialogueState) AppendCardNote(cards []string) {
	s.Transcript = append(s.Transcript, Turn{
		Speaker: SpeakerNote,
		Text:    cardNotePrefix + strings.Join(cards, ", "),
	})
}

// LatestPersona returns the most recent persona turn, if any.
func (s *DialogueState) LatestPersona() (Turn, bool) {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Speaker == SpeakerPersona {
			return s.Transcript[i], true
		}
	}
	return Turn{}, false
}

// LatestCommands extracts the commands from the most recent persona
// turn. Stored persona turns have always passed extraction once, so an
// error here indicates corruption rather than a normal condition.
func (s *DialogueState) LatestCommands() (ExtractedCommands, error) {
	turn, ok := s.LatestPersona()
	if !ok {
		return ExtractedCommands{}, nil
	}
	return ExtractCommands(turn.Text)
}

// EndsWithCardNote reports whether the last transcript turn is a
// card-selection note; the turn controller uses this to choose between
// the two reinforcement messages.
func (s *DialogueState) EndsWithCardNote() bool {
	if len(s.Transcript) == 0 {
		return false
	}
	return s.Transcript[len(s.Transcript)-1].Speaker == SpeakerNote
}

// Phase derives the lifecycle position of the reading. Flagged is
// absorbing; everything else follows from the latest persona turn's
// extracted commands.
func (s *DialogueState) Phase() Phase {
	if s.Flagged {
		return PhaseFlagged
	}
	if s.DrawMode == "" {
		return PhaseAwaitingStart
	}
	cmds, err := s.LatestCommands()
	if err != nil {
		return PhaseConcluded
	}
	switch {
	case len(cmds.Questions) > 0:
		return PhaseAwaitingAnswer
	case cmds.DrawCount > 0:
		return PhaseAwaitingDraw
	default:
		return PhaseConcluded
	}
}

// Concluded reports whether the reading is over: the latest persona turn
// asks no follow-up question and requests no card draw.
func (s *DialogueState) Concluded() bool {
	return s.Phase() == PhaseConcluded
}
