// Package port defines the capability interfaces the application layer
// consumes. Adapters live under internal/infrastructure.
package port

import "context"

// DirEntry is one entry of a directory listing.
type DirEntry struct {
	Name  string
	IsDir bool
}

// FileSystem abstracts the OS filesystem for workspace scanning and tab
// content I/O. The existence probes fold stat errors into false: a path
// we cannot stat is a path we cannot use.
type FileSystem interface {
	Exists(ctx context.Context, path string) bool
	IsDirectory(ctx context.Context, path string) bool
	ListDir(ctx context.Context, path string) ([]DirEntry, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
}
