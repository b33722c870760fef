package usecase

import (
	"context"
	"fmt"

	"github.com/atelier-ide/atelier/internal/application/port"
	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/domain/repository"
	"github.com/atelier-ide/atelier/internal/logging"
)

// ManageWorkspaceUseCase handles workspace switching: acquiring scoped
// filesystem access, maintaining the recent-workspaces list, and restoring
// the last workspace across launches. It holds the single active access
// lease and swaps it atomically on every switch.
type ManageWorkspaceUseCase struct {
	fs      port.FileSystem
	scope   port.ScopedAccess
	recents repository.RecentWorkspaceRepository
	prefs   repository.PreferenceRepository

	current port.AccessLease
}

// NewManageWorkspaceUseCase creates a workspace manager.
func NewManageWorkspaceUseCase(
	fs port.FileSystem,
	scope port.ScopedAccess,
	recents repository.RecentWorkspaceRepository,
	prefs repository.PreferenceRepository,
) *ManageWorkspaceUseCase {
	return &ManageWorkspaceUseCase{
		fs:      fs,
		scope:   scope,
		recents: recents,
		prefs:   prefs,
	}
}

// CurrentPath returns the root of the currently held lease, or "".
func (uc *ManageWorkspaceUseCase) CurrentPath() string {
	if uc.current == nil {
		return ""
	}
	return uc.current.Path()
}

// Prepare switches the active workspace to path: it verifies the directory,
// releases the previously held scoped lease, acquires a new one, records
// the path at the front of the recent list with a fresh bookmark, and
// remembers it as the last workspace. At most one workspace holds scoped
// access at any point, so the old lease always goes before the next
// acquire; a failed acquire leaves no workspace held.
func (uc *ManageWorkspaceUseCase) Prepare(ctx context.Context, path string) error {
	log := logging.FromContext(ctx)

	if !uc.fs.IsDirectory(ctx, path) {
		return fmt.Errorf("prepare workspace: %s is not a directory", path)
	}

	if uc.current != nil {
		uc.current.Release()
		uc.current = nil
	}

	lease, err := uc.scope.Acquire(ctx, path)
	if err != nil {
		return fmt.Errorf("prepare workspace: acquire access to %s: %w", path, err)
	}
	uc.current = lease

	bookmark, err := uc.scope.Bookmark(ctx, path)
	if err != nil {
		// Access works for this session; only restart re-access is lost.
		log.Warn().Err(err).Str("workspace", path).Msg("bookmark creation failed")
		bookmark = nil
	}
	if err := uc.recents.Record(ctx, path, bookmark); err != nil {
		log.Warn().Err(err).Str("workspace", path).Msg("recording recent workspace failed")
	}
	if err := uc.prefs.Set(ctx, repository.PrefLastWorkspace, path); err != nil {
		log.Warn().Err(err).Msg("persisting last workspace failed")
	}

	log.Info().Str("workspace", path).Msg("workspace prepared")
	return nil
}

// OpenRecent re-opens a workspace from the recent list by resolving its
// stored bookmark. A missing entry or an on-disk path that no longer
// exists evicts the entry and returns an error; a bookmark that resolves
// to a moved path re-records under the new location. On success the
// workspace is prepared exactly as a fresh open.
func (uc *ManageWorkspaceUseCase) OpenRecent(ctx context.Context, path string) (string, error) {
	log := logging.FromContext(ctx)

	rec, err := uc.recents.Find(ctx, path)
	if err != nil {
		return "", fmt.Errorf("open recent: lookup %s: %w", path, err)
	}
	if rec == nil {
		return "", fmt.Errorf("open recent: %s is not in the recent list", path)
	}

	resolved := rec.Path
	if len(rec.Bookmark) > 0 {
		if p, err := uc.scope.Resolve(ctx, rec.Bookmark); err != nil {
			log.Warn().Err(err).Str("workspace", path).Msg("bookmark resolution failed, using stored path")
		} else {
			resolved = p
		}
	}

	if !uc.fs.IsDirectory(ctx, resolved) {
		if err := uc.recents.Remove(ctx, path); err != nil {
			log.Warn().Err(err).Str("workspace", path).Msg("evicting stale recent failed")
		}
		return "", fmt.Errorf("open recent: %s no longer exists", resolved)
	}

	if resolved != rec.Path {
		log.Info().Str("from", rec.Path).Str("to", resolved).Msg("workspace moved, re-recording")
		if err := uc.recents.Remove(ctx, rec.Path); err != nil {
			log.Warn().Err(err).Msg("removing moved recent entry failed")
		}
	}

	if err := uc.Prepare(ctx, resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// Recents returns the recent workspaces, most recent first.
func (uc *ManageWorkspaceUseCase) Recents(ctx context.Context) ([]*entity.RecentWorkspace, error) {
	return uc.recents.GetAll(ctx)
}

// LastWorkspace returns the path remembered from the previous session, or
// "" when none was recorded or it no longer exists on disk.
func (uc *ManageWorkspaceUseCase) LastWorkspace(ctx context.Context) string {
	path, err := uc.prefs.Get(ctx, repository.PrefLastWorkspace)
	if err != nil || path == "" {
		return ""
	}
	if !uc.fs.IsDirectory(ctx, path) {
		return ""
	}
	return path
}

// Close releases the held lease. Safe to call with none held.
func (uc *ManageWorkspaceUseCase) Close() {
	if uc.current != nil {
		uc.current.Release()
		uc.current = nil
	}
}
