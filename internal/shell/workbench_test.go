package shell

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbenchURLResolvesEntryPoint(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o600))

	url, err := WorkbenchURL(dir, "index.html", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "file://"))
	assert.True(t, strings.HasSuffix(url, "/index.html"))
}

func TestWorkbenchURLCarriesWorkspaceParameter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o600))

	url, err := WorkbenchURL(dir, "index.html", "/ws/my project")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "?workspace=%2Fws%2Fmy+project"), "url = %s", url)
}

func TestWorkbenchURLMissingEntryPoint(t *testing.T) {
	_, err := WorkbenchURL(t.TempDir(), "index.html", "")
	assert.Error(t, err)
}

func TestWorkbenchURLRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "index.html"), 0o750))

	_, err := WorkbenchURL(dir, "index.html", "")
	assert.Error(t, err)
}

func TestEnterWorkbenchLoadsWebRenderer(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o600))
	ws := t.TempDir()
	fx.fs.addDir(ws)

	fx.on(t, func() {
		require.NoError(t, fx.shell.OpenWorkspace(ctx, ws))
		require.NoError(t, fx.shell.EnterWorkbench(ctx, dir))
	})
	assert.Contains(t, fx.web.last(), "index.html")
	assert.Contains(t, fx.web.last(), "?workspace=", "workbench URL must carry the workspace root")

	fx.on(t, func() {
		assert.Error(t, fx.shell.EnterWorkbench(ctx, t.TempDir()))
	})
}
