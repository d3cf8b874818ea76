package events

import "context"

// ChatEvent is the usage record published after each chat-stream request.
type ChatEvent struct {
	RequestID  string `json:"request_id"`
	UserID     string `json:"user_id,omitempty"`
	Theme      string `json:"theme"`
	Lang       string `json:"lang"`
	Outcome    string `json:"outcome"` // streamed | fallback | safety_intercept
	PromptSize int    `json:"prompt_size"`
}

// Chat event outcomes.
const (
	OutcomeStreamed        = "streamed"
	OutcomeFallback        = "fallback"
	OutcomeSafetyIntercept = "safety_intercept"
)

// IChatEventPublisher emits usage events for analytics. Publishing is
// best-effort; failures are logged, never surfaced to the client.
type IChatEventPublisher interface {
	PublishChatEvent(ctx context.Context, event ChatEvent) error
}
