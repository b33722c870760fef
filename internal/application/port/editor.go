package port

import "context"

// EditorInput is everything the embedded rich-text/code editor needs to
// render an editable document.
type EditorInput struct {
	Text     string
	Language string // hint derived from the file extension
	Theme    string // hint derived from light/dark mode

	// OnChange delivers edited text back to the shell.
	OnChange func(text string)
}

// TextEditor is the embedded editing widget: render editable text, notify
// on change. Its internals are a black box to the core.
type TextEditor interface {
	Render(ctx context.Context, input EditorInput) error
}
