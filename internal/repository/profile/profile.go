package profileRepo

import (
	"context"
	"database/sql"
	"errors"
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

// New creates the profile repository over the profiles table.
func New(db persistence.Persistence, log *slog.Logger) ports.IProfileRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// GetByUserID loads a persisted birth profile; a missing row returns
// (nil, nil) so the caller can fall back to request data.
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.Get(ctx, &profile, `
		SELECT user_id, name, birth_date, birth_time, gender, latitude, longitude, timezone
		FROM profiles
		WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Upsert writes the profile, replacing any previous birth data.
func (r *Repository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	err := r.db.NamedExec(ctx, `
		INSERT INTO profiles (user_id, name, birth_date, birth_time, gender, latitude, longitude, timezone, updated_at)
		VALUES (:user_id, :name, :birth_date, :birth_time, :gender, :latitude, :longitude, :timezone, now())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			birth_date = EXCLUDED.birth_date,
			birth_time = EXCLUDED.birth_time,
			gender = EXCLUDED.gender,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			timezone = EXCLUDED.timezone,
			updated_at = now()`, profile)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
