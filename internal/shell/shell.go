// Package shell is the coordination layer: it owns the pane layout, the
// workspace tree, the content cache, and the global state, and wires the
// use cases to the rendering ports. All mutations run on the dispatcher's
// update loop; background work marshals its completion back through
// Dispatch.
package shell

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/atelier-ide/atelier/internal/application/port"
	"github.com/atelier-ide/atelier/internal/application/usecase"
	"github.com/atelier-ide/atelier/internal/config"
	"github.com/atelier-ide/atelier/internal/content"
	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/infrastructure/mainloop"
	"github.com/atelier-ide/atelier/internal/logging"
)

// Deps are the collaborators a Shell needs. All fields are required except
// Editor, Web, and Picker, which may be nil in headless contexts (the CLI,
// tests); rendering then becomes a no-op.
type Deps struct {
	Config     *config.Config
	Dispatcher port.Dispatcher
	Editor     port.TextEditor
	Web        port.WebRenderer
	Picker     port.FolderPicker

	Panes     *usecase.ManagePanesUseCase
	Tree      *usecase.BuildTreeUseCase
	Loader    *usecase.LoadContentUseCase
	Workspace *usecase.ManageWorkspaceUseCase

	Cache *content.Cache
}

// Shell coordinates the IDE surface: one workspace, one pane layout, one
// global state.
type Shell struct {
	deps   Deps
	layout *entity.Layout
	tree   *entity.WorkspaceNode
	state  entity.ShellState
	drags  *DragRegistry
	notify *mainloop.Coalescer

	resize   *usecase.ResizeGesture
	darkMode bool

	// Notification callbacks, invoked on the update loop after the
	// corresponding state settles. Layout and tree notifications coalesce:
	// a burst of mutations in one turn fires each callback once, on the
	// next turn. Nil callbacks are skipped.
	OnLayoutChanged func(*entity.Layout)
	OnTreeChanged   func(*entity.WorkspaceNode)
	OnStateChanged  func(entity.ShellState)
}

// New creates a shell with a fresh single-pane layout.
func New(deps Deps) *Shell {
	return &Shell{
		deps:   deps,
		layout: deps.Panes.NewLayout(),
		state:  entity.Ready(),
		drags:  NewDragRegistry(),
		notify: mainloop.NewCoalescer(deps.Dispatcher.Dispatch),
	}
}

// Layout returns the current pane layout.
func (s *Shell) Layout() *entity.Layout { return s.layout }

// Tree returns the current workspace tree, or nil before any workspace
// opened.
func (s *Shell) Tree() *entity.WorkspaceNode { return s.tree }

// State returns the current global state.
func (s *Shell) State() entity.ShellState { return s.state }

// Drags returns the drag session registry.
func (s *Shell) Drags() *DragRegistry { return s.drags }

// SetDarkMode records the platform dark-mode preference, consulted when
// the configured theme is auto.
func (s *Shell) SetDarkMode(dark bool) { s.darkMode = dark }

func (s *Shell) themeHint() string {
	switch s.deps.Config.Appearance.Theme {
	case "light", "dark":
		return s.deps.Config.Appearance.Theme
	}
	if s.darkMode {
		return "dark"
	}
	return "light"
}

func (s *Shell) setState(ctx context.Context, state entity.ShellState) {
	s.state = state
	if state.Status == entity.StatusError {
		logging.FromContext(ctx).Warn().Str("message", state.Message).Msg("shell entered error state")
	}
	if s.OnStateChanged != nil {
		s.OnStateChanged(state)
	}
}

func (s *Shell) notifyLayout() {
	s.notify.Post("layout", func() {
		if s.OnLayoutChanged != nil {
			s.OnLayoutChanged(s.layout)
		}
	})
}

func (s *Shell) notifyTree() {
	s.notify.Post("tree", func() {
		if s.OnTreeChanged != nil {
			s.OnTreeChanged(s.tree)
		}
	})
}

// OpenWorkspace switches to the workspace at path: access is acquired and
// the path recorded as recent, open tabs and cached content are discarded,
// the layout resets to a single empty pane, and the file tree rebuilds.
// When configured, the first file of the fresh tree opens on a later loop
// turn, after the tree render has settled.
func (s *Shell) OpenWorkspace(ctx context.Context, path string) error {
	s.setState(ctx, entity.Loading())

	if err := s.deps.Workspace.Prepare(ctx, path); err != nil {
		s.setState(ctx, entity.Errorf(err.Error()))
		return err
	}

	s.enterWorkspace(ctx, path)
	return nil
}

// OpenRecentWorkspace re-opens an entry of the recent list, following its
// bookmark if the directory moved. Stale entries evict and surface as an
// error state.
func (s *Shell) OpenRecentWorkspace(ctx context.Context, path string) error {
	s.setState(ctx, entity.Loading())

	resolved, err := s.deps.Workspace.OpenRecent(ctx, path)
	if err != nil {
		s.setState(ctx, entity.Errorf(err.Error()))
		return err
	}

	s.enterWorkspace(ctx, resolved)
	return nil
}

// PickAndOpenWorkspace shows the platform folder picker and opens the
// chosen directory. Cancelling leaves everything untouched.
func (s *Shell) PickAndOpenWorkspace(ctx context.Context) error {
	if s.deps.Picker == nil {
		return fmt.Errorf("no folder picker available")
	}
	path, ok, err := s.deps.Picker.PickFolder(ctx)
	if err != nil {
		s.setState(ctx, entity.Errorf(err.Error()))
		return err
	}
	if !ok {
		return nil
	}
	return s.OpenWorkspace(ctx, path)
}

// enterWorkspace runs the post-access portion of a workspace switch.
func (s *Shell) enterWorkspace(ctx context.Context, path string) {
	s.deps.Cache.Clear()
	s.drags.Clear()
	s.layout = s.deps.Panes.NewLayout()
	s.notifyLayout()

	s.tree = s.deps.Tree.Build(ctx, path)
	s.notifyTree()
	s.setState(ctx, entity.Ready())

	if s.deps.Config.Workspace.AutoOpenFirstFile {
		if first := s.tree.FirstFile(); first != nil {
			firstPath := first.Path
			// Deferred a full loop turn so the tree render settles before
			// the tab opens.
			s.deps.Dispatcher.Schedule(func() {
				s.OpenFile(ctx, firstPath)
			})
		}
	}
}

// OpenFile opens (or re-activates) the file at path in the active pane and
// kicks off a content load when needed.
func (s *Shell) OpenFile(ctx context.Context, path string) {
	tab, _ := s.deps.Panes.OpenFile(ctx, s.layout, path, "")
	if tab == nil {
		return
	}
	s.notifyLayout()
	s.presentOrLoad(ctx, tab)
}

// OpenWeb opens raw as a web tab, normalizing it first. replaceActive
// swaps it into the active tab's slot.
func (s *Shell) OpenWeb(ctx context.Context, raw string, replaceActive bool) {
	tab := s.deps.Panes.OpenWebURL(ctx, s.layout, raw, replaceActive)
	if tab == nil {
		return
	}
	s.notifyLayout()
	s.present(ctx, tab, nil)
}

// NewStartTab appends a blank canvas tab to the active pane.
func (s *Shell) NewStartTab(ctx context.Context) {
	tab := s.deps.Panes.CreateStartTab(ctx, s.layout, true)
	if tab == nil {
		return
	}
	s.notifyLayout()
	s.present(ctx, tab, nil)
}

// ActivateTab focuses the tab and its pane, loading content on first
// activation.
func (s *Shell) ActivateTab(ctx context.Context, id entity.TabIdentity) {
	tab := s.deps.Panes.Activate(ctx, s.layout, id)
	if tab == nil {
		return
	}
	s.notifyLayout()
	s.presentOrLoad(ctx, tab)
}

// CloseTab closes the tab; the layout may lose a pane.
func (s *Shell) CloseTab(ctx context.Context, id entity.TabIdentity) {
	if s.deps.Panes.CloseTab(ctx, s.layout, id) {
		s.notifyLayout()
	}
}

// CloseOtherTabs keeps only the given tab in its pane.
func (s *Shell) CloseOtherTabs(ctx context.Context, id entity.TabIdentity) {
	s.deps.Panes.CloseOtherTabs(ctx, s.layout, id)
	s.notifyLayout()
}

// CloseTabsToRight closes everything after the tab in its pane.
func (s *Shell) CloseTabsToRight(ctx context.Context, id entity.TabIdentity) {
	s.deps.Panes.CloseTabsToRight(ctx, s.layout, id)
	s.notifyLayout()
}

// SplitTab moves the tab into a new pane beside its current one.
func (s *Shell) SplitTab(ctx context.Context, id entity.TabIdentity) {
	if s.deps.Panes.SplitTabIntoNewPane(ctx, s.layout, id) != nil {
		s.notifyLayout()
	}
}

// SaveActiveTab writes the active file tab's edited content to disk.
func (s *Shell) SaveActiveTab(ctx context.Context) error {
	pane := s.layout.ActivePane()
	if pane == nil || pane.ActiveTab == "" {
		return nil
	}
	tab := pane.FindTab(pane.ActiveTab)
	if tab == nil || tab.Kind != entity.TabFile || content.IsPreviewPath(tab.Path) {
		return nil
	}
	text, ok := s.deps.Cache.Get(tab.Identity())
	if !ok {
		return nil
	}
	if err := s.deps.Loader.Save(ctx, tab, text); err != nil {
		s.setState(ctx, entity.Errorf(err.Error()))
		return err
	}
	return nil
}

// StartResize begins a divider drag gesture.
func (s *Shell) StartResize(ctx context.Context) {
	s.resize = s.deps.Panes.BeginResize(ctx, s.layout)
}

// ResizeDelta moves the divider at boundary by a width fraction.
func (s *Shell) ResizeDelta(boundary int, delta float64) {
	if s.resize != nil {
		s.resize.ApplyDelta(boundary, delta)
	}
}

// EndResize commits the gesture's fractions into the layout.
func (s *Shell) EndResize(ctx context.Context) {
	if s.resize == nil {
		return
	}
	s.resize.Commit(ctx)
	s.resize = nil
	s.notifyLayout()
}

// presentOrLoad renders the tab if its content is available, otherwise
// starts a background load whose completion re-presents the tab if it is
// still active.
func (s *Shell) presentOrLoad(ctx context.Context, tab *entity.Tab) {
	if tab.Kind != entity.TabFile {
		s.present(ctx, tab, nil)
		return
	}
	if s.deps.Cache.Has(tab.Identity()) && content.PreviewFor(tab.Path) != content.PreviewSVG {
		s.present(ctx, tab, nil)
		return
	}

	s.setState(ctx, entity.Loading())
	go func() {
		res, err := s.deps.Loader.Load(ctx, tab)
		s.deps.Dispatcher.Dispatch(func() {
			if err != nil {
				// The sentinel marks the tab loaded so re-activation does
				// not retry a dead file; the message carries the path.
				if owner, _ := s.layout.FindTab(tab.Identity()); owner != nil {
					s.deps.Cache.Set(tab.Identity(), "")
				}
				s.setState(ctx, entity.Errorf(err.Error()))
				return
			}
			// Idempotent by identity: a stale completion for a closed tab
			// writes nothing the layout still references.
			if owner, _ := s.layout.FindTab(res.Identity); owner != nil {
				s.deps.Cache.Set(res.Identity, res.Text)
				if owner.ActiveTab == res.Identity {
					s.present(ctx, tab, &res)
				}
			}
			s.setState(ctx, entity.Ready())
		})
	}()
}

// present renders the tab through the appropriate port. res carries the
// fresh load result when the call completes a background load.
func (s *Shell) present(ctx context.Context, tab *entity.Tab, res *usecase.LoadResult) {
	switch tab.Kind {
	case entity.TabWeb:
		s.renderWeb(ctx, tab.URL)

	case entity.TabCanvas:
		s.renderEditor(ctx, tab, "")

	case entity.TabFile:
		switch content.PreviewFor(tab.Path) {
		case content.PreviewImage:
			s.renderWeb(ctx, "file://"+tab.Path)
		case content.PreviewSVG:
			if res != nil && res.HTML != "" {
				s.renderWeb(ctx, htmlDataURI(res.HTML))
			}
		default:
			text, _ := s.deps.Cache.Get(tab.Identity())
			s.renderEditor(ctx, tab, text)
		}
	}
}

func (s *Shell) renderEditor(ctx context.Context, tab *entity.Tab, text string) {
	if s.deps.Editor == nil {
		return
	}
	id := tab.Identity()
	input := port.EditorInput{
		Text:  text,
		Theme: s.themeHint(),
		OnChange: func(edited string) {
			s.deps.Cache.Set(id, edited)
		},
	}
	if tab.Kind == entity.TabFile {
		input.Language = content.LanguageHint(tab.Path)
	}
	if err := s.deps.Editor.Render(ctx, input); err != nil {
		s.setState(ctx, entity.Errorf(err.Error()))
	}
}

func (s *Shell) renderWeb(ctx context.Context, url string) {
	if s.deps.Web == nil {
		return
	}
	if err := s.deps.Web.Load(ctx, url); err != nil {
		s.setState(ctx, entity.Errorf(err.Error()))
	}
}

func htmlDataURI(html string) string {
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))
}
