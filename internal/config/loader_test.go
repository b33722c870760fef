package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestDirs(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	return base
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	setTestDirs(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 0, cfg.Workspace.MaxTreeDepth)
	assert.True(t, cfg.Workspace.AutoOpenFirstFile)
	assert.InDelta(t, 0.08, cfg.Panes.MinWidthFraction, 1e-9)
	assert.Equal(t, "index.html", cfg.Workbench.EntryPoint)
	assert.NotEmpty(t, cfg.Database.Path)

	configFile, err := GetConfigFile()
	require.NoError(t, err)
	_, err = os.Stat(configFile)
	assert.NoError(t, err, "first load should write a default config file")
}

func TestLoadReadsConfigFile(t *testing.T) {
	setTestDirs(t)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[workspace]
max_tree_depth = 5

[panes]
min_width_fraction = 0.1
`), 0o600))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, 5, cfg.Workspace.MaxTreeDepth)
	assert.InDelta(t, 0.1, cfg.Panes.MinWidthFraction, 1e-9)
	// Unset sections keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	setTestDirs(t)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[panes]
min_width_fraction = 0.9
`), 0o600))

	m, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestWatchReloadsOnFileChange(t *testing.T) {
	setTestDirs(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	changed := make(chan *Config, 1)
	m.OnConfigChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, m.Watch())

	path, err := GetConfigFile()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("[workspace]\nmax_tree_depth = 7\n"), 0o600))

	select {
	case c := <-changed:
		assert.Equal(t, 7, c.Workspace.MaxTreeDepth)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	bad := DefaultConfig()
	bad.Logging.Level = "loud"
	assert.Error(t, validateConfig(bad))

	bad = DefaultConfig()
	bad.Appearance.Theme = "sepia"
	assert.Error(t, validateConfig(bad))

	bad = DefaultConfig()
	bad.Workspace.MaxTreeDepth = -1
	assert.Error(t, validateConfig(bad))

	bad = DefaultConfig()
	bad.Workbench.EntryPoint = ""
	assert.Error(t, validateConfig(bad))
}
