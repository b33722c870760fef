// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/atelier-ide/atelier/internal/domain/entity"
)

// RecentWorkspaceRepository persists the ordered, bounded list of recently
// opened workspace roots and their access bookmarks.
//
// The list is most-recent-first, de-duplicated by path, and capped at
// entity.MaxRecentWorkspaces; recording an existing path moves it to the
// front. Bookmarks are stored with their entry and pruned together, so the
// bookmark key set is always a subset of the recent-list paths.
type RecentWorkspaceRepository interface {
	// Record puts the path at the front of the list with its bookmark,
	// de-duplicating and discarding the oldest entries beyond the cap.
	Record(ctx context.Context, path string, bookmark []byte) error

	// GetAll returns all entries, most recent first.
	GetAll(ctx context.Context) ([]*entity.RecentWorkspace, error)

	// Find returns the entry for path, or nil when absent.
	Find(ctx context.Context, path string) (*entity.RecentWorkspace, error)

	// Remove evicts the entry (and its bookmark) for path.
	Remove(ctx context.Context, path string) error
}
