package entity

// WidthEpsilon is the tolerance used when checking that pane width
// fractions sum to 1.0.
const WidthEpsilon = 1e-9

// Layout is the ordered collection of panes making up the editor surface,
// together with the active pane and the normalized width-fraction map.
//
// Invariants:
//   - Panes always holds at least one pane (the sole remaining pane is
//     never destroyed, even when empty).
//   - Widths' key set exactly matches current pane IDs, values are
//     non-negative, and the sum is normalized to 1.0 after every
//     structural change or resize commit.
type Layout struct {
	Panes        []*Pane
	ActivePaneID PaneID
	Widths       map[PaneID]float64
}

// NewLayout creates a layout with a single empty pane at full width.
func NewLayout(initial *Pane) *Layout {
	return &Layout{
		Panes:        []*Pane{initial},
		ActivePaneID: initial.ID,
		Widths:       map[PaneID]float64{initial.ID: 1.0},
	}
}

// PaneIndex returns the index of the pane with the given id, or -1.
func (l *Layout) PaneIndex(id PaneID) int {
	for i, p := range l.Panes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PaneByID returns the pane with the given id, or nil.
func (l *Layout) PaneByID(id PaneID) *Pane {
	if i := l.PaneIndex(id); i >= 0 {
		return l.Panes[i]
	}
	return nil
}

// ActivePane returns the currently active pane, or nil.
func (l *Layout) ActivePane() *Pane {
	return l.PaneByID(l.ActivePaneID)
}

// FindTab locates a tab by identity across all panes.
// Returns the owning pane and the tab's index, or (nil, -1).
func (l *Layout) FindTab(id TabIdentity) (*Pane, int) {
	for _, p := range l.Panes {
		if i := p.TabIndex(id); i >= 0 {
			return p, i
		}
	}
	return nil, -1
}

// FindByDragID resolves a drag token back to its tab by scanning every
// pane's tab list. Deliberately O(total tabs); tab counts are small.
func (l *Layout) FindByDragID(token string) (*Pane, int, *Tab) {
	for _, p := range l.Panes {
		for i, t := range p.Tabs {
			if t.DragID() == token {
				return p, i, t
			}
		}
	}
	return nil, -1, nil
}

// TabCount returns the total number of tabs across all panes.
func (l *Layout) TabCount() int {
	n := 0
	for _, p := range l.Panes {
		n += len(p.Tabs)
	}
	return n
}

// InsertPane inserts a pane at the given index, clamped to the valid range.
// The caller is responsible for rebalancing widths afterwards.
func (l *Layout) InsertPane(index int, pane *Pane) {
	if index < 0 {
		index = 0
	}
	if index > len(l.Panes) {
		index = len(l.Panes)
	}
	l.Panes = append(l.Panes[:index], append([]*Pane{pane}, l.Panes[index:]...)...)
}

// RemovePane removes the pane with the given id and renormalizes widths.
// The sole remaining pane is never removed. If the removed pane was active,
// the active pane shifts to the pane at the same (clamped) index.
// Returns true if a pane was removed.
func (l *Layout) RemovePane(id PaneID) bool {
	if len(l.Panes) <= 1 {
		return false
	}
	idx := l.PaneIndex(id)
	if idx < 0 {
		return false
	}
	l.Panes = append(l.Panes[:idx], l.Panes[idx+1:]...)
	delete(l.Widths, id)
	if l.ActivePaneID == id {
		clamped := idx
		if clamped >= len(l.Panes) {
			clamped = len(l.Panes) - 1
		}
		l.ActivePaneID = l.Panes[clamped].ID
	}
	l.NormalizeWidths()
	return true
}

// NormalizeWidths re-establishes the width map invariant: entries for
// missing panes are discarded, absent panes default to an equal share, and
// the values are scaled to sum to 1.0.
func (l *Layout) NormalizeWidths() {
	if l.Widths == nil {
		l.Widths = make(map[PaneID]float64, len(l.Panes))
	}

	current := make(map[PaneID]bool, len(l.Panes))
	for _, p := range l.Panes {
		current[p.ID] = true
	}
	for id := range l.Widths {
		if !current[id] {
			delete(l.Widths, id)
		}
	}

	equal := 1.0 / float64(len(l.Panes))
	sum := 0.0
	for _, p := range l.Panes {
		w, ok := l.Widths[p.ID]
		if !ok || w < 0 {
			w = equal
			l.Widths[p.ID] = w
		}
		sum += w
	}

	if sum <= WidthEpsilon {
		for _, p := range l.Panes {
			l.Widths[p.ID] = equal
		}
		return
	}
	for _, p := range l.Panes {
		l.Widths[p.ID] /= sum
	}
}

// WidthSum returns the sum of all width fractions.
func (l *Layout) WidthSum() float64 {
	sum := 0.0
	for _, w := range l.Widths {
		sum += w
	}
	return sum
}
