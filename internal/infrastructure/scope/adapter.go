// Package scope implements port.ScopedAccess. On platforms without a
// sandbox broker the lease is a bookkeeping object and bookmarks are
// self-verifying encoded paths, but the call discipline (acquire, hold
// one, release before the next) matches sandboxed platforms so callers
// never special-case.
package scope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atelier-ide/atelier/internal/application/port"
)

// bookmarkPrefix versions the bookmark envelope so a future format change
// can reject or upgrade old blobs instead of misreading them.
const bookmarkPrefix = "atelier-bm:v1:"

// Adapter implements port.ScopedAccess using plain filesystem checks.
type Adapter struct {
	mu      sync.Mutex
	current *lease
}

// New creates a scoped access adapter.
func New() *Adapter {
	return &Adapter{}
}

type lease struct {
	adapter *Adapter
	path    string
	once    sync.Once
}

func (l *lease) Path() string { return l.path }

func (l *lease) Release() {
	l.once.Do(func() {
		l.adapter.mu.Lock()
		defer l.adapter.mu.Unlock()
		if l.adapter.current == l {
			l.adapter.current = nil
		}
	})
}

// Acquire begins scoped access to path. The path must be an existing
// directory; it is resolved to an absolute path so the lease's root is
// stable regardless of the caller's working directory.
func (a *Adapter) Acquire(_ context.Context, path string) (port.AccessLease, error) {
	abs, err := verifyDir(path)
	if err != nil {
		return nil, fmt.Errorf("acquire scope: %w", err)
	}

	l := &lease{adapter: a, path: abs}
	a.mu.Lock()
	a.current = l
	a.mu.Unlock()
	return l, nil
}

// Bookmark produces a persistable blob for later re-access to path.
func (a *Adapter) Bookmark(_ context.Context, path string) ([]byte, error) {
	abs, err := verifyDir(path)
	if err != nil {
		return nil, fmt.Errorf("bookmark: %w", err)
	}
	return []byte(bookmarkPrefix + abs), nil
}

// Resolve turns a stored bookmark back into an accessible path. The
// encoded path is returned even when the directory has since vanished;
// existence is the caller's concern, format validity is ours.
func (a *Adapter) Resolve(_ context.Context, bookmark []byte) (string, error) {
	s := string(bookmark)
	if !strings.HasPrefix(s, bookmarkPrefix) {
		return "", fmt.Errorf("resolve bookmark: unrecognized format")
	}
	path := strings.TrimPrefix(s, bookmarkPrefix)
	if path == "" {
		return "", fmt.Errorf("resolve bookmark: empty path")
	}
	return path, nil
}

func verifyDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

var _ port.ScopedAccess = (*Adapter)(nil)
