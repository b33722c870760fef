package config

import "fmt"

// validateConfig rejects values that would put the shell into an
// unrenderable state. It runs on every load and reload; a failed reload
// keeps the previous configuration active.
func validateConfig(cfg *Config) error {
	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format %q is not one of json, console", cfg.Logging.Format)
	}

	switch cfg.Appearance.Theme {
	case "", "light", "dark", "auto":
	default:
		return fmt.Errorf("appearance.theme %q is not one of light, dark, auto", cfg.Appearance.Theme)
	}

	if cfg.Workspace.MaxTreeDepth < 0 {
		return fmt.Errorf("workspace.max_tree_depth must be >= 0, got %d", cfg.Workspace.MaxTreeDepth)
	}

	if f := cfg.Panes.MinWidthFraction; f <= 0 || f >= 0.5 {
		return fmt.Errorf("panes.min_width_fraction must be in (0, 0.5), got %v", f)
	}

	if cfg.Workbench.EntryPoint == "" {
		return fmt.Errorf("workbench.entry_point cannot be empty")
	}

	return nil
}
