package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/domain/repository"
)

// RecentsRepo implements repository.RecentWorkspaceRepository on SQLite.
type RecentsRepo struct {
	db *sql.DB
}

// NewRecentsRepo creates a recent-workspaces repository.
func NewRecentsRepo(db *sql.DB) *RecentsRepo {
	return &RecentsRepo{db: db}
}

// Record upserts the path with a fresh timestamp, moving it to the front,
// then trims the list to entity.MaxRecentWorkspaces. Both statements run
// in one transaction so a crash cannot leave the list over the cap.
func (r *RecentsRepo) Record(ctx context.Context, path string, bookmark []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record recent workspace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recent_workspaces (path, bookmark, opened_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			bookmark  = excluded.bookmark,
			opened_at = excluded.opened_at
	`, path, bookmark, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("record recent workspace: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM recent_workspaces
		WHERE path NOT IN (
			SELECT path FROM recent_workspaces
			ORDER BY opened_at DESC
			LIMIT ?
		)
	`, entity.MaxRecentWorkspaces)
	if err != nil {
		return fmt.Errorf("trim recent workspaces: %w", err)
	}

	return tx.Commit()
}

// GetAll returns all entries, most recent first.
func (r *RecentsRepo) GetAll(ctx context.Context) ([]*entity.RecentWorkspace, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT path, bookmark, opened_at
		FROM recent_workspaces
		ORDER BY opened_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list recent workspaces: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.RecentWorkspace
	for rows.Next() {
		rec, err := scanRecent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Find returns the entry for path, or nil when absent.
func (r *RecentsRepo) Find(ctx context.Context, path string) (*entity.RecentWorkspace, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT path, bookmark, opened_at
		FROM recent_workspaces
		WHERE path = ?
	`, path)

	rec, err := scanRecent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

// Remove evicts the entry for path.
func (r *RecentsRepo) Remove(ctx context.Context, path string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recent_workspaces WHERE path = ?`, path); err != nil {
		return fmt.Errorf("remove recent workspace: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecent(row rowScanner) (*entity.RecentWorkspace, error) {
	var rec entity.RecentWorkspace
	var openedAt int64
	if err := row.Scan(&rec.Path, &rec.Bookmark, &openedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan recent workspace: %w", err)
	}
	rec.OpenedAt = time.Unix(0, openedAt)
	return &rec, nil
}

var _ repository.RecentWorkspaceRepository = (*RecentsRepo)(nil)
