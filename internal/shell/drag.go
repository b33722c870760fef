package shell

import (
	"context"

	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/logging"
)

// DragRegistry tracks the single in-flight tab drag session. Drop targets
// receive only the flat drag token; the registry lets them confirm the
// token belongs to the current session before mutating the layout, so a
// stale drop from a cancelled drag is ignored.
type DragRegistry struct {
	token string
}

// NewDragRegistry creates an empty registry.
func NewDragRegistry() *DragRegistry {
	return &DragRegistry{}
}

// Begin records tab as the dragged payload and returns its token.
func (r *DragRegistry) Begin(tab *entity.Tab) string {
	r.token = tab.DragID()
	return r.token
}

// Active reports whether token matches the in-flight drag.
func (r *DragRegistry) Active(token string) bool {
	return token != "" && token == r.token
}

// End closes the drag session. Safe when no session is open.
func (r *DragRegistry) End() {
	r.token = ""
}

// Clear resets the registry, used on workspace switch.
func (r *DragRegistry) Clear() {
	r.token = ""
}

// BeginTabDrag starts a drag session for the tab and returns the token the
// front end attaches to the drag payload. Returns "" for unknown tabs.
func (s *Shell) BeginTabDrag(ctx context.Context, id entity.TabIdentity) string {
	owner, _ := s.layout.FindTab(id)
	if owner == nil {
		return ""
	}
	tab := owner.FindTab(id)
	token := s.drags.Begin(tab)
	logging.FromContext(ctx).Debug().Str("tab", string(id)).Str("token", token).Msg("tab drag started")
	return token
}

// DropTabBefore drops the dragged tab immediately before another tab
// (hover on a tab's leading half).
func (s *Shell) DropTabBefore(ctx context.Context, token string, before entity.TabIdentity) {
	if !s.drags.Active(token) {
		return
	}
	defer s.drags.End()
	if s.deps.Panes.MoveTabBefore(ctx, s.layout, token, before) {
		s.notifyLayout()
	}
}

// DropTabAtIndex drops the dragged tab at an index in a pane's tab strip.
func (s *Shell) DropTabAtIndex(ctx context.Context, token string, index int, pane entity.PaneID) {
	if !s.drags.Active(token) {
		return
	}
	defer s.drags.End()
	if s.deps.Panes.MoveTabByDragID(ctx, s.layout, token, index, pane) {
		s.notifyLayout()
	}
}

// DropTabIntoPane drops the dragged tab into a pane's body, appending it.
func (s *Shell) DropTabIntoPane(ctx context.Context, token string, pane entity.PaneID) {
	if !s.drags.Active(token) {
		return
	}
	defer s.drags.End()
	if s.deps.Panes.AppendTabToPane(ctx, s.layout, token, pane) {
		s.notifyLayout()
	}
}

// DropTabIntoNewPane drops the dragged tab onto a pane edge, creating a
// new pane on that side and moving the tab into it.
func (s *Shell) DropTabIntoNewPane(ctx context.Context, token string, ref entity.PaneID, before bool) {
	if !s.drags.Active(token) {
		return
	}
	defer s.drags.End()

	var pane *entity.Pane
	if before {
		pane = s.deps.Panes.CreatePaneBefore(ctx, s.layout, ref)
	} else {
		pane = s.deps.Panes.CreatePaneAfter(ctx, s.layout, ref)
	}
	if pane == nil {
		return
	}
	if !s.deps.Panes.AppendTabToPane(ctx, s.layout, token, pane.ID) {
		// Unresolvable token: drop the pane we just created so no empty
		// pane lingers.
		s.layout.RemovePane(pane.ID)
	}
	s.notifyLayout()
}

// CancelTabDrag ends the drag session without a drop.
func (s *Shell) CancelTabDrag() {
	s.drags.End()
}
