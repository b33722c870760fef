package repository

import "context"

// Well-known preference keys.
const (
	PrefLastWorkspace = "last_workspace"
)

// PreferenceRepository is a named-value store surviving process restarts.
type PreferenceRepository interface {
	// Get returns the stored value for key, or "" when unset.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
