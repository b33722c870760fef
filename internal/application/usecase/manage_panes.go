package usecase

import (
	"context"

	"github.com/atelier-ide/atelier/internal/content"
	"github.com/atelier-ide/atelier/internal/domain/entity"
	domainurl "github.com/atelier-ide/atelier/internal/domain/url"
	"github.com/atelier-ide/atelier/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// DefaultMinPaneFraction is the floor below which no pane's width fraction
// may fall during an interactive resize (8% of available width).
const DefaultMinPaneFraction = 0.08

// ManagePanesUseCase owns all mutations of the pane collection: opening
// and closing tabs, splits, drag moves, and width rebalancing.
//
// Every index-based mutation clamps to valid bounds rather than erroring;
// operations referencing a non-existent tab or pane are silent no-ops. The
// sole remaining pane is never auto-removed, so there is always at least
// one pane to receive new tabs.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
	cache       *content.Cache
	minFraction float64
}

// NewManagePanesUseCase creates a pane management use case. cache may be
// nil in tests that don't exercise content pruning.
func NewManagePanesUseCase(idGenerator IDGenerator, cache *content.Cache) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
		cache:       cache,
		minFraction: DefaultMinPaneFraction,
	}
}

// SetMinPaneFraction overrides the resize floor. Values outside (0, 0.5)
// are ignored.
func (uc *ManagePanesUseCase) SetMinPaneFraction(f float64) {
	if f > 0 && f < 0.5 {
		uc.minFraction = f
	}
}

// NewLayout builds the initial layout: exactly one empty pane at 100%.
func (uc *ManagePanesUseCase) NewLayout() *entity.Layout {
	return entity.NewLayout(entity.NewPane(entity.PaneID(uc.idGenerator())))
}

// OpenFile opens path in the target pane (default: active pane). If a tab
// for the path already exists in any pane it is activated instead of
// duplicated, keeping at most one tab per path across the whole layout.
// Returns the tab and whether it was newly created.
func (uc *ManagePanesUseCase) OpenFile(ctx context.Context, l *entity.Layout, path string, target entity.PaneID) (*entity.Tab, bool) {
	log := logging.FromContext(ctx)

	tab := entity.NewFileTab(path)
	if owner, _ := l.FindTab(tab.Identity()); owner != nil {
		existing := owner.FindTab(tab.Identity())
		l.ActivePaneID = owner.ID
		owner.ActiveTab = existing.Identity()
		log.Debug().Str("path", path).Str("pane_id", string(owner.ID)).Msg("file already open, activating")
		return existing, false
	}

	pane := l.PaneByID(target)
	if pane == nil {
		pane = l.ActivePane()
	}
	if pane == nil {
		return nil, false
	}

	pane.Tabs = append(pane.Tabs, tab)
	pane.ActiveTab = tab.Identity()
	l.ActivePaneID = pane.ID

	log.Debug().Str("path", path).Str("pane_id", string(pane.ID)).Msg("opened file tab")
	return tab, true
}

// OpenWebURL normalizes raw and opens it as a web tab in the active pane.
// An existing tab for the same normalized URL is activated instead. When
// replaceActive is set and the active pane has an active tab, the new tab
// replaces it in place, preserving position.
func (uc *ManagePanesUseCase) OpenWebURL(ctx context.Context, l *entity.Layout, raw string, replaceActive bool) *entity.Tab {
	log := logging.FromContext(ctx)

	normalized := domainurl.Normalize(raw)
	if normalized == "" {
		return nil
	}
	tab := entity.NewWebTab(normalized)

	if owner, _ := l.FindTab(tab.Identity()); owner != nil {
		existing := owner.FindTab(tab.Identity())
		l.ActivePaneID = owner.ID
		owner.ActiveTab = existing.Identity()
		return existing
	}

	pane := l.ActivePane()
	if pane == nil {
		return nil
	}

	if replaceActive && pane.ActiveTab != "" {
		idx := pane.TabIndex(pane.ActiveTab)
		if idx >= 0 {
			old := pane.Tabs[idx]
			pane.Tabs[idx] = tab
			pane.ActiveTab = tab.Identity()
			uc.pruneIfOrphaned(l, old.Identity())
			log.Debug().Str("url", normalized).Msg("replaced active tab with web tab")
			return tab
		}
	}

	pane.Tabs = append(pane.Tabs, tab)
	pane.ActiveTab = tab.Identity()
	log.Debug().Str("url", normalized).Str("pane_id", string(pane.ID)).Msg("opened web tab")
	return tab
}

// CreateStartTab appends a blank canvas tab to the active pane and
// activates it unless openImmediately is false.
func (uc *ManagePanesUseCase) CreateStartTab(ctx context.Context, l *entity.Layout, openImmediately bool) *entity.Tab {
	pane := l.ActivePane()
	if pane == nil {
		return nil
	}

	tab := entity.NewCanvasTab(uc.idGenerator())
	pane.Tabs = append(pane.Tabs, tab)
	if openImmediately {
		pane.ActiveTab = tab.Identity()
	}

	logging.FromContext(ctx).Debug().Str("canvas_id", tab.CanvasID).Msg("created start tab")
	return tab
}

// Activate makes the tab's owning pane active and the tab that pane's
// active tab. Returns the tab, or nil when no pane owns it.
func (uc *ManagePanesUseCase) Activate(ctx context.Context, l *entity.Layout, id entity.TabIdentity) *entity.Tab {
	owner, _ := l.FindTab(id)
	if owner == nil {
		return nil
	}
	l.ActivePaneID = owner.ID
	owner.ActiveTab = id
	return owner.FindTab(id)
}

// CloseTab removes the tab from its owning pane and prunes its cache
// entry. If the closed tab was active, the tab sliding into its index
// becomes active (or the previous tab when it was last). An emptied
// non-sole pane is removed and widths renormalize.
func (uc *ManagePanesUseCase) CloseTab(ctx context.Context, l *entity.Layout, id entity.TabIdentity) bool {
	owner, idx := l.FindTab(id)
	if owner == nil {
		return false
	}

	uc.removeTabAt(owner, idx)
	uc.pruneIfOrphaned(l, id)
	uc.removePaneIfEmpty(ctx, l, owner)

	logging.FromContext(ctx).Debug().
		Str("tab", string(id)).
		Int("pane_count", len(l.Panes)).
		Msg("closed tab")
	return true
}

// CloseOtherTabs closes every tab in the owning pane except the given one,
// which becomes active. Cache entries for all removed tabs are pruned.
func (uc *ManagePanesUseCase) CloseOtherTabs(ctx context.Context, l *entity.Layout, id entity.TabIdentity) {
	owner, idx := l.FindTab(id)
	if owner == nil {
		return
	}

	kept := owner.Tabs[idx]
	removed := make([]entity.TabIdentity, 0, len(owner.Tabs)-1)
	for _, t := range owner.Tabs {
		if t.Identity() != id {
			removed = append(removed, t.Identity())
		}
	}

	owner.Tabs = []*entity.Tab{kept}
	owner.ActiveTab = id
	l.ActivePaneID = owner.ID

	for _, r := range removed {
		uc.pruneIfOrphaned(l, r)
	}
}

// CloseTabsToRight closes every tab after the given one in its owning
// pane. The given tab becomes active when the previous active tab was
// among the removed.
func (uc *ManagePanesUseCase) CloseTabsToRight(ctx context.Context, l *entity.Layout, id entity.TabIdentity) {
	owner, idx := l.FindTab(id)
	if owner == nil {
		return
	}

	removed := make([]entity.TabIdentity, 0)
	for _, t := range owner.Tabs[idx+1:] {
		removed = append(removed, t.Identity())
	}
	owner.Tabs = owner.Tabs[:idx+1]

	if owner.TabIndex(owner.ActiveTab) < 0 {
		owner.ActiveTab = id
	}

	for _, r := range removed {
		uc.pruneIfOrphaned(l, r)
	}
}

// SplitTabIntoNewPane moves the tab into a new pane inserted immediately
// after its source pane. The source pane's width fraction is halved
// between old and new; an emptied source pane is removed (subject to the
// sole-pane exception). The new pane becomes active.
func (uc *ManagePanesUseCase) SplitTabIntoNewPane(ctx context.Context, l *entity.Layout, id entity.TabIdentity) *entity.Pane {
	log := logging.FromContext(ctx)

	src, idx := l.FindTab(id)
	if src == nil {
		return nil
	}

	tab := src.Tabs[idx]
	uc.removeTabAt(src, idx)

	pane := entity.NewPane(entity.PaneID(uc.idGenerator()))
	pane.Tabs = []*entity.Tab{tab}
	pane.ActiveTab = id

	srcIdx := l.PaneIndex(src.ID)
	l.InsertPane(srcIdx+1, pane)
	uc.splitWidth(l, src.ID, pane.ID)

	l.ActivePaneID = pane.ID
	uc.removePaneIfEmpty(ctx, l, src)

	log.Debug().
		Str("tab", string(id)).
		Str("new_pane_id", string(pane.ID)).
		Int("pane_count", len(l.Panes)).
		Msg("split tab into new pane")
	return pane
}

// MoveTabWithinPane reorders the tab inside its owning pane. The
// destination index is clamped to the valid range; moving a tab to its own
// index is a no-op.
func (uc *ManagePanesUseCase) MoveTabWithinPane(ctx context.Context, l *entity.Layout, id entity.TabIdentity, destIndex int) bool {
	owner, idx := l.FindTab(id)
	if owner == nil {
		return false
	}

	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(owner.Tabs)-1 {
		destIndex = len(owner.Tabs) - 1
	}
	if destIndex == idx {
		return false
	}

	tab := owner.RemoveTabAt(idx)
	owner.InsertTab(destIndex, tab)
	return true
}

// MoveTabByDragID resolves the drag token and moves the tab to destIndex
// in the target pane. Same-pane moves adjust the insertion index for the
// removal shift; cross-pane moves prune an emptied source pane. The target
// pane's active tab is unchanged unless the pane was empty.
func (uc *ManagePanesUseCase) MoveTabByDragID(ctx context.Context, l *entity.Layout, token string, destIndex int, targetID entity.PaneID) bool {
	src, srcIdx, tab := l.FindByDragID(token)
	if tab == nil {
		return false
	}
	target := l.PaneByID(targetID)
	if target == nil {
		return false
	}

	if target == src {
		adjusted := destIndex
		if adjusted > srcIdx {
			adjusted--
		}
		return uc.MoveTabWithinPane(ctx, l, tab.Identity(), adjusted)
	}

	uc.removeTabAt(src, srcIdx)

	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(target.Tabs) {
		destIndex = len(target.Tabs)
	}
	target.InsertTab(destIndex, tab)
	if target.ActiveTab == "" {
		target.ActiveTab = tab.Identity()
	}

	uc.removePaneIfEmpty(ctx, l, src)

	logging.FromContext(ctx).Debug().
		Str("tab", string(tab.Identity())).
		Str("target_pane", string(targetID)).
		Int("dest_index", destIndex).
		Msg("moved tab across panes")
	return true
}

// MoveTabBefore moves the dragged tab immediately before another tab,
// used for fine-grained hover-half reordering.
func (uc *ManagePanesUseCase) MoveTabBefore(ctx context.Context, l *entity.Layout, token string, before entity.TabIdentity) bool {
	target, idx := l.FindTab(before)
	if target == nil {
		return false
	}
	return uc.MoveTabByDragID(ctx, l, token, idx, target.ID)
}

// AppendTabToPane moves the dragged tab to the end of the target pane's
// tab strip, used when dropping into a pane's body.
func (uc *ManagePanesUseCase) AppendTabToPane(ctx context.Context, l *entity.Layout, token string, targetID entity.PaneID) bool {
	target := l.PaneByID(targetID)
	if target == nil {
		return false
	}
	return uc.MoveTabByDragID(ctx, l, token, len(target.Tabs), targetID)
}

// CreatePaneAfter inserts a new empty pane immediately after the reference
// pane and rebalances widths: the reference fraction is split in half when
// known, otherwise all panes redistribute equally.
func (uc *ManagePanesUseCase) CreatePaneAfter(ctx context.Context, l *entity.Layout, ref entity.PaneID) *entity.Pane {
	return uc.createPaneAdjacent(ctx, l, ref, 1)
}

// CreatePaneBefore inserts a new empty pane immediately before the
// reference pane.
func (uc *ManagePanesUseCase) CreatePaneBefore(ctx context.Context, l *entity.Layout, ref entity.PaneID) *entity.Pane {
	return uc.createPaneAdjacent(ctx, l, ref, 0)
}

func (uc *ManagePanesUseCase) createPaneAdjacent(ctx context.Context, l *entity.Layout, ref entity.PaneID, offset int) *entity.Pane {
	refIdx := l.PaneIndex(ref)
	if refIdx < 0 {
		return nil
	}

	pane := entity.NewPane(entity.PaneID(uc.idGenerator()))
	l.InsertPane(refIdx+offset, pane)
	uc.splitWidth(l, ref, pane.ID)

	logging.FromContext(ctx).Debug().
		Str("new_pane_id", string(pane.ID)).
		Int("pane_count", len(l.Panes)).
		Msg("created pane")
	return pane
}

// removeTabAt removes the tab at idx, sliding the active tab to the tab
// now occupying the vacated index (or the previous tab when it was last,
// or clearing it when the pane empties).
func (uc *ManagePanesUseCase) removeTabAt(p *entity.Pane, idx int) {
	wasActive := idx >= 0 && idx < len(p.Tabs) && p.Tabs[idx].Identity() == p.ActiveTab
	if p.RemoveTabAt(idx) == nil {
		return
	}
	if !wasActive {
		return
	}
	if len(p.Tabs) == 0 {
		p.ActiveTab = ""
		return
	}
	next := idx
	if next >= len(p.Tabs) {
		next = len(p.Tabs) - 1
	}
	p.ActiveTab = p.Tabs[next].Identity()
}

// removePaneIfEmpty removes an emptied pane unless it is the sole
// remaining one, renormalizing widths and clamping the active pane index.
func (uc *ManagePanesUseCase) removePaneIfEmpty(ctx context.Context, l *entity.Layout, p *entity.Pane) {
	if !p.IsEmpty() {
		return
	}
	if l.RemovePane(p.ID) {
		logging.FromContext(ctx).Debug().Str("pane_id", string(p.ID)).Msg("removed empty pane")
	}
}

// splitWidth halves the reference pane's fraction between it and the new
// pane; when the reference has no known fraction, all panes redistribute
// equally. Widths renormalize either way.
func (uc *ManagePanesUseCase) splitWidth(l *entity.Layout, ref, created entity.PaneID) {
	if w, ok := l.Widths[ref]; ok {
		l.Widths[ref] = w / 2
		l.Widths[created] = w / 2
	} else {
		equal := 1.0 / float64(len(l.Panes))
		for _, p := range l.Panes {
			l.Widths[p.ID] = equal
		}
	}
	l.NormalizeWidths()
}

// pruneIfOrphaned drops the cache entry for id once no pane references it.
func (uc *ManagePanesUseCase) pruneIfOrphaned(l *entity.Layout, id entity.TabIdentity) {
	if uc.cache == nil {
		return
	}
	if owner, _ := l.FindTab(id); owner == nil {
		uc.cache.Prune(id)
	}
}
