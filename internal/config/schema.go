package config

// Config is the application configuration, loaded from config.toml with
// ATELIER_-prefixed environment overrides.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Appearance AppearanceConfig `mapstructure:"appearance"`
	Workspace  WorkspaceConfig  `mapstructure:"workspace"`
	Panes      PanesConfig      `mapstructure:"panes"`
	Workbench  WorkbenchConfig  `mapstructure:"workbench"`
}

// AppearanceConfig controls the theme hint handed to the editor surface.
type AppearanceConfig struct {
	// Theme is light, dark, or auto. Auto defers to the platform
	// preference reported by the front end.
	Theme string `mapstructure:"theme"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// DatabaseConfig locates the SQLite store for preferences and recents.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// WorkspaceConfig controls workspace tree building.
type WorkspaceConfig struct {
	// MaxTreeDepth caps sidebar tree recursion; 0 means unlimited.
	MaxTreeDepth int `mapstructure:"max_tree_depth"`

	// AutoOpenFirstFile opens the first file of a fresh workspace
	// automatically after the tree builds.
	AutoOpenFirstFile bool `mapstructure:"auto_open_first_file"`
}

// PanesConfig controls pane layout behavior.
type PanesConfig struct {
	// MinWidthFraction is the smallest width fraction a pane may be
	// resized to.
	MinWidthFraction float64 `mapstructure:"min_width_fraction"`
}

// WorkbenchConfig locates the bundled web UI assets.
type WorkbenchConfig struct {
	// EntryPoint is the HTML file loaded into the workbench surface,
	// relative to the resources directory.
	EntryPoint string `mapstructure:"entry_point"`
}
