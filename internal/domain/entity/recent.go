package entity

import "time"

// MaxRecentWorkspaces bounds the recent-workspaces list.
const MaxRecentWorkspaces = 10

// RecentWorkspace is one entry of the most-recent-first workspace list.
// Bookmark is an opaque access-bookmark blob enabling re-access after a
// restart without re-prompting; it is pruned together with the entry.
type RecentWorkspace struct {
	Path     string
	Bookmark []byte
	OpenedAt time.Time
}
