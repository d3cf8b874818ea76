package creditRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	ports "github.com/pppaal/saju-astro-chat-sub011/internal/ports/repository"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/persistence"
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New creates the credit repository.
func New(db persistence.Persistence, log *slog.Logger) ports.ICreditRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Consume atomically decrements one credit. The guarded UPDATE is the whole
// transaction: zero affected rows means the balance is exhausted (or the
// user has no credit row).
func (r *Repository) Consume(ctx context.Context, userID string) (bool, error) {
	affected, err := r.db.ExecWithResult(ctx, `
		UPDATE credits
		SET balance = balance - 1, updated_at = now()
		WHERE user_id = $1 AND balance > 0`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to consume credit: %w", err)
	}
	return affected > 0, nil
}

// Balance returns the current balance, zero when no row exists.
func (r *Repository) Balance(ctx context.Context, userID string) (int, error) {
	var balance int
	err := r.db.Get(ctx, &balance, `SELECT balance FROM credits WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}
	return balance, nil
}
