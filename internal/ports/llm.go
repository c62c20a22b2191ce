package ports

import "context"

// Role values for chat messages sent to the completion service.
const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// ChatMessage is one entry in the ordered conversation sent upstream.
type ChatMessage struct {
	Role    string
	Content string
}

// Completion is the reply text plus the token usage the service
// reported for the call.
type Completion struct {
	Text   string
	Tokens int
}

// Completer performs one stateless chat-completion request.
type Completer interface {
	Complete(ctx context.Context, messages []ChatMessage) (Completion, error)
}

// Moderator checks arbitrary text against a content-moderation service
// and reports whether it was flagged.
type Moderator interface {
	Moderate(ctx context.Context, text string) (bool, error)
}
