package port

import "context"

// FolderPicker is the platform folder-selection dialog. It returns the
// chosen directory path, or ok=false when the user cancelled.
type FolderPicker interface {
	PickFolder(ctx context.Context) (path string, ok bool, err error)
}
