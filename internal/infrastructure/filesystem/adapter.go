// Package filesystem implements port.FileSystem on the OS filesystem.
package filesystem

import (
	"context"
	"os"

	"github.com/atelier-ide/atelier/internal/application/port"
)

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Exists(_ context.Context, path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (a *Adapter) IsDirectory(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (a *Adapter) ListDir(_ context.Context, path string) ([]port.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]port.DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, port.DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

func (a *Adapter) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (a *Adapter) WriteFile(_ context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

var _ port.FileSystem = (*Adapter)(nil)
