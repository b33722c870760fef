package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelier-ide/atelier/internal/domain/repository"
)

// PreferencesRepo implements repository.PreferenceRepository on SQLite.
type PreferencesRepo struct {
	db *sql.DB
}

// NewPreferencesRepo creates a preference repository.
func NewPreferencesRepo(db *sql.DB) *PreferencesRepo {
	return &PreferencesRepo{db: db}
}

// Get returns the stored value for key, or "" when unset.
func (r *PreferencesRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, nil
}

// Set stores the value under key, replacing any previous value.
func (r *PreferencesRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

var _ repository.PreferenceRepository = (*PreferencesRepo)(nil)
