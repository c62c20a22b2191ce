package http

import "github.com/msull/emilytarot/internal/domain"

// SessionResponse is the JSON view of a reading session.
type SessionResponse struct {
	SessionID        string          `json:"session_id"`
	Phase            domain.Phase    `json:"phase"`
	DrawMode         domain.DrawMode `json:"draw_mode,omitempty"`
	Turns            []TurnResponse  `json:"turns"`
	PendingQuestions []string        `json:"pending_questions,omitempty"`
	RequestedDraw    int             `json:"requested_draw,omitempty"`
	PendingCards     []string        `json:"pending_cards,omitempty"`
	AllCards         []string        `json:"all_cards,omitempty"`
	TokensUsed       int             `json:"tokens_used"`
	Flagged          bool            `json:"flagged"`
	HeaderImages     []string        `json:"header_images,omitempty"`
	PersonaImage     string          `json:"persona_image,omitempty"`
}

// TurnResponse is one rendered transcript entry. Persona text has its
// directive lines stripped; note turns are rendered distinctly by the
// client.
type TurnResponse struct {
	Speaker domain.Speaker `json:"speaker"`
	Text    string         `json:"text"`
}

type ModeRequest struct {
	Mode domain.DrawMode `json:"mode"`
}

type TurnRequest struct {
	Answers []string `json:"answers"`
	Cards   []string `json:"cards"`
}

type DrawRequest struct {
	// Seed makes the draw reproducible; omitted means the server picks
	// one (a reshuffle is just another request without a seed).
	Seed *int64 `json:"seed,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toSessionResponse(state domain.DialogueState) SessionResponse {
	turns := make([]TurnResponse, len(state.Transcript))
	for i, t := range state.Transcript {
		turns[i] = TurnResponse{Speaker: t.Speaker, Text: domain.DisplayText(t)}
	}

	resp := SessionResponse{
		SessionID:    state.SessionID,
		Phase:        state.Phase(),
		DrawMode:     state.DrawMode,
		Turns:        turns,
		PendingCards: state.PendingCards,
		AllCards:     state.AllCards,
		TokensUsed:   state.TokensUsed,
		Flagged:      state.Flagged,
		HeaderImages: state.HeaderImages,
		PersonaImage: state.PersonaImage,
	}

	if cmds, err := state.LatestCommands(); err == nil && !state.Flagged {
		resp.PendingQuestions = cmds.Questions
		resp.RequestedDraw = cmds.DrawCount
	}

	return resp
}
