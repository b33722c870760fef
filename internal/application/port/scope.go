package port

import "context"

// AccessLease is a held grant of filesystem-access rights for a workspace
// root. Exactly one lease is held at a time; Release must run on every
// exit path before the next Acquire.
type AccessLease interface {
	// Path returns the root the lease covers.
	Path() string

	// Release relinquishes the grant. Idempotent.
	Release()
}

// ScopedAccess grants renewable permission to access a user-chosen
// filesystem location, with opaque bookmarks enabling re-access across
// process restarts without re-prompting.
type ScopedAccess interface {
	// Acquire begins scoped access to path.
	Acquire(ctx context.Context, path string) (AccessLease, error)

	// Bookmark produces a persistable blob for later re-access to path.
	Bookmark(ctx context.Context, path string) ([]byte, error)

	// Resolve turns a stored bookmark back into an accessible path. The
	// resolved path may differ from the one originally bookmarked when
	// the target moved; callers should re-record in that case.
	Resolve(ctx context.Context, bookmark []byte) (string, error)
}
