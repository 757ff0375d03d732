package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"loadvoice-synqall/internal/quality"
)

// PreferencesRepo stores per-user quality gate overrides as JSON.
type PreferencesRepo struct {
	db    *pgxpool.Pool
	retry *Retrier
}

// NewPreferencesRepo creates a new PreferencesRepo.
func NewPreferencesRepo(db *pgxpool.Pool, retry *Retrier) *PreferencesRepo {
	return &PreferencesRepo{db: db, retry: retry}
}

// QualityOverrides returns the overrides for userID. A user without stored
// preferences gets empty overrides.
func (r *PreferencesRepo) QualityOverrides(ctx context.Context, userID uuid.UUID) (quality.Overrides, error) {
	var raw []byte
	err := r.retry.Do(ctx, "preferences.get", func(ctx context.Context) error {
		err := r.db.QueryRow(ctx,
			`SELECT overrides FROM quality_preferences WHERE user_id = $1`, userID,
		).Scan(&raw)
		if IsNotFound(err) {
			raw = nil
			return nil
		}
		return err
	})
	if err != nil {
		return quality.Overrides{}, fmt.Errorf("get preferences of %s: %w", userID, err)
	}

	var o quality.Overrides
	if len(raw) == 0 {
		return o, nil
	}
	if err := json.Unmarshal(raw, &o); err != nil {
		return quality.Overrides{}, fmt.Errorf("decode preferences of %s: %w", userID, err)
	}
	return o, nil
}

// PutQualityOverrides replaces the overrides for userID.
func (r *PreferencesRepo) PutQualityOverrides(ctx context.Context, userID uuid.UUID, o quality.Overrides) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return r.retry.Do(ctx, "preferences.put", func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
            INSERT INTO quality_preferences (user_id, overrides, updated_at)
            VALUES ($1, $2, now())
            ON CONFLICT (user_id) DO UPDATE SET overrides = EXCLUDED.overrides, updated_at = now()
        `, userID, raw)
		if err != nil {
			return fmt.Errorf("put preferences of %s: %w", userID, err)
		}
		return nil
	})
}
