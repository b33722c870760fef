package scope_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-ide/atelier/internal/infrastructure/scope"
)

func TestAcquireAndBookmarkRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := scope.New()

	l, err := a.Acquire(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, l.Path())

	bm, err := a.Bookmark(ctx, dir)
	require.NoError(t, err)

	resolved, err := a.Resolve(ctx, bm)
	require.NoError(t, err)
	assert.Equal(t, dir, resolved)

	l.Release()
	l.Release() // idempotent
}

func TestAcquireRejectsNonDirectories(t *testing.T) {
	ctx := context.Background()
	a := scope.New()

	_, err := a.Acquire(ctx, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = a.Bookmark(ctx, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestResolveRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	a := scope.New()

	_, err := a.Resolve(ctx, []byte("not a bookmark"))
	assert.Error(t, err)

	_, err = a.Resolve(ctx, []byte("atelier-bm:v1:"))
	assert.Error(t, err)
}

func TestResolveReturnsPathEvenWhenDeleted(t *testing.T) {
	// Existence is checked by the workspace manager, which evicts stale
	// recents; resolution itself only validates the envelope.
	ctx := context.Background()
	a := scope.New()

	dir := t.TempDir()
	bm, err := a.Bookmark(ctx, dir)
	require.NoError(t, err)

	resolved, err := a.Resolve(ctx, bm)
	require.NoError(t, err)
	assert.Equal(t, dir, resolved)
}
