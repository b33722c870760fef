package shell

import (
	"context"
	"fmt"
	neturl "net/url"
	"os"
	"path/filepath"

	"github.com/atelier-ide/atelier/internal/logging"
)

// WorkbenchURL resolves the workbench entry point under resourcesDir to a
// loadable file URL, carrying the workspace root as a query parameter so
// the web app knows which project it fronts. A missing entry point is an
// error: without it the workbench surface has nothing to render, so the
// caller must not fall back to a blank shell silently.
func WorkbenchURL(resourcesDir, entryPoint, workspace string) (string, error) {
	path := filepath.Join(resourcesDir, entryPoint)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("workbench: resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("workbench: entry point %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("workbench: entry point %s is a directory", abs)
	}

	url := "file://" + abs
	if workspace != "" {
		url += "?workspace=" + neturl.QueryEscape(workspace)
	}
	return url, nil
}

// EnterWorkbench loads the bundled web UI into the web renderer,
// parameterized by the currently open workspace. This is fatal to
// workbench mode only; the shell's native surfaces keep working.
func (s *Shell) EnterWorkbench(ctx context.Context, resourcesDir string) error {
	url, err := WorkbenchURL(resourcesDir, s.deps.Config.Workbench.EntryPoint, s.deps.Workspace.CurrentPath())
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("workbench unavailable")
		return err
	}
	if s.deps.Web == nil {
		return fmt.Errorf("workbench: no web renderer available")
	}
	return s.deps.Web.Load(ctx, url)
}
