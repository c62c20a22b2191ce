package domain

import "errors"

var (
	ErrDeckNotFound       = errors.New("deck not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSubmission  = errors.New("invalid submission")
	ErrMalformedDirective = errors.New("malformed directive in reply")
	ErrGenerationFailed   = errors.New("reply generation failed after retries")
	ErrSessionFlagged     = errors.New("session terminated by content moderation")
	ErrUpstreamLLM        = errors.New("upstream LLM failure")
	ErrAllCardsDrawn      = errors.New("all cards in the deck have been drawn")
	ErrDrawComplete       = errors.New("requested number of cards already drawn")
)
