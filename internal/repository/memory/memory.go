package memoryRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	ports "github.com/pppaal/saju-astro-chat-sub011/internal/ports/repository"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/persistence"
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New creates the long-term memory repository.
func New(db persistence.Persistence, log *slog.Logger) ports.IMemoryRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// GetPersonaMemories returns the newest persona facts for a user.
func (r *Repository) GetPersonaMemories(ctx context.Context, userID string, limit int) ([]domain.PersonaMemory, error) {
	if limit <= 0 {
		limit = 10
	}
	var memories []domain.PersonaMemory
	err := r.db.Select(ctx, &memories, `
		SELECT id, user_id, kind, content
		FROM persona_memories
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get persona memories: %w", err)
	}
	return memories, nil
}

// GetRecentSummaries returns the newest session summaries for a user.
func (r *Repository) GetRecentSummaries(ctx context.Context, userID string, limit int) ([]domain.SessionSummary, error) {
	if limit <= 0 {
		limit = 3
	}
	var summaries []domain.SessionSummary
	err := r.db.Select(ctx, &summaries, `
		SELECT id, user_id, summary, created_at
		FROM session_summaries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get session summaries: %w", err)
	}
	return summaries, nil
}

// SaveSummary appends one session summary.
func (r *Repository) SaveSummary(ctx context.Context, summary *domain.SessionSummary) error {
	err := r.db.NamedExec(ctx, `
		INSERT INTO session_summaries (user_id, summary)
		VALUES (:user_id, :summary)`, summary)
	if err != nil {
		return fmt.Errorf("failed to save session summary: %w", err)
	}
	return nil
}
