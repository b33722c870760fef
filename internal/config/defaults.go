package config

// DefaultConfig returns the built-in defaults used before any config file
// or environment override applies.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Appearance: AppearanceConfig{
			Theme: "auto",
		},
		Workspace: WorkspaceConfig{
			MaxTreeDepth:      0,
			AutoOpenFirstFile: true,
		},
		Panes: PanesConfig{
			MinWidthFraction: 0.08,
		},
		Workbench: WorkbenchConfig{
			EntryPoint: "index.html",
		},
	}
}
