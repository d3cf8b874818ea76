package storage

import "context"

// IPromptArchive persists assembled prompts for offline QA. Archiving is
// best-effort; failures must never block the chat response.
type IPromptArchive interface {
	StorePrompt(ctx context.Context, requestID string, prompt string) error
}
