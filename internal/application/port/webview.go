package port

import "context"

// WebRenderer is the embedded web-rendering component. It receives a URL
// and displays it; there is no output contract beyond visual rendering.
// Used for web tabs, SVG previews, and the workbench mode entry point.
type WebRenderer interface {
	Load(ctx context.Context, url string) error
}
