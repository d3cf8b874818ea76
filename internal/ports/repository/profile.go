package repository

import (
	"context"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// IProfileRepo reads and writes persisted user birth profiles.
type IProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

// IMemoryRepo serves the long-term memory section: persona facts plus the
// most recent session summaries.
type IMemoryRepo interface {
	GetPersonaMemories(ctx context.Context, userID string, limit int) ([]domain.PersonaMemory, error)
	GetRecentSummaries(ctx context.Context, userID string, limit int) ([]domain.SessionSummary, error)
	SaveSummary(ctx context.Context, summary *domain.SessionSummary) error
}

// ICreditRepo meters chat usage. Consume must be a single atomic operation;
// it reports false when the balance is exhausted.
type ICreditRepo interface {
	Consume(ctx context.Context, userID string) (bool, error)
	Balance(ctx context.Context, userID string) (int, error)
}
