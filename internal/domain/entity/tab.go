// Package entity contains domain entities representing core shell concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"hash/fnv"
)

// TabKind discriminates the closed set of tab variants.
type TabKind int

const (
	TabFile   TabKind = iota // A filesystem file opened for editing
	TabCanvas                // A blank start page
	TabWeb                   // A live web URL
)

// String returns the kind name for logging.
func (k TabKind) String() string {
	switch k {
	case TabFile:
		return "file"
	case TabCanvas:
		return "canvas"
	case TabWeb:
		return "web"
	default:
		return "unknown"
	}
}

// TabIdentity is the structured identity of a tab, derived from its kind's
// payload. Re-opening the same file or URL resolves to the existing tab
// rather than duplicating it.
type TabIdentity string

// Tab is a single open document/view unit. Exactly one payload field is
// meaningful, selected by Kind.
type Tab struct {
	Kind     TabKind
	Path     string // TabFile: absolute file path
	CanvasID string // TabCanvas: process-local unique id
	URL      string // TabWeb: normalized URL
}

// NewFileTab creates a tab for a filesystem file.
func NewFileTab(path string) *Tab {
	return &Tab{Kind: TabFile, Path: path}
}

// NewCanvasTab creates a blank start-page tab.
func NewCanvasTab(id string) *Tab {
	return &Tab{Kind: TabCanvas, CanvasID: id}
}

// NewWebTab creates a tab for an already-normalized URL.
func NewWebTab(url string) *Tab {
	return &Tab{Kind: TabWeb, URL: url}
}

// Identity derives the tab's structured identity from its kind payload.
func (t *Tab) Identity() TabIdentity {
	switch t.Kind {
	case TabFile:
		return TabIdentity("file:" + t.Path)
	case TabCanvas:
		return TabIdentity("canvas:" + t.CanvasID)
	case TabWeb:
		return TabIdentity("web:" + t.URL)
	default:
		return ""
	}
}

// DragID returns the flat serializable token standing in for the tab's
// structured identity during drag-and-drop transport. It is stable for the
// tab's lifetime and survives reordering and cross-pane moves.
func (t *Tab) DragID() string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.Identity()))
	return fmt.Sprintf("tab-%016x", h.Sum64())
}

// Title returns a display title for the tab.
func (t *Tab) Title() string {
	switch t.Kind {
	case TabFile:
		return baseName(t.Path)
	case TabCanvas:
		return "New Tab"
	case TabWeb:
		return t.URL
	default:
		return "Untitled"
	}
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
