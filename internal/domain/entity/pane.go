package entity

// PaneID uniquely identifies a pane within the shell.
type PaneID string

// Pane is an ordered, mutable list of tabs plus the identity of the active
// tab. ActiveTab is empty only transiently while a pane is being emptied
// before removal, or for a freshly created empty pane awaiting a drop.
//
// Invariant: a non-empty pane's active tab is a member of its own tab list.
type Pane struct {
	ID        PaneID
	Tabs      []*Tab
	ActiveTab TabIdentity
}

// NewPane creates an empty pane.
func NewPane(id PaneID) *Pane {
	return &Pane{ID: id, Tabs: make([]*Tab, 0)}
}

// TabIndex returns the index of the tab with the given identity, or -1.
func (p *Pane) TabIndex(id TabIdentity) int {
	for i, t := range p.Tabs {
		if t.Identity() == id {
			return i
		}
	}
	return -1
}

// FindTab returns the tab with the given identity, or nil.
func (p *Pane) FindTab(id TabIdentity) *Tab {
	if i := p.TabIndex(id); i >= 0 {
		return p.Tabs[i]
	}
	return nil
}

// Active returns the pane's active tab, or nil when the pane is empty.
func (p *Pane) Active() *Tab {
	return p.FindTab(p.ActiveTab)
}

// InsertTab inserts a tab at the given index, clamped to the valid range.
func (p *Pane) InsertTab(index int, tab *Tab) {
	if index < 0 {
		index = 0
	}
	if index > len(p.Tabs) {
		index = len(p.Tabs)
	}
	p.Tabs = append(p.Tabs[:index], append([]*Tab{tab}, p.Tabs[index:]...)...)
}

// RemoveTabAt removes and returns the tab at index, or nil if out of range.
func (p *Pane) RemoveTabAt(index int) *Tab {
	if index < 0 || index >= len(p.Tabs) {
		return nil
	}
	tab := p.Tabs[index]
	p.Tabs = append(p.Tabs[:index], p.Tabs[index+1:]...)
	return tab
}

// IsEmpty reports whether the pane holds no tabs.
func (p *Pane) IsEmpty() bool {
	return len(p.Tabs) == 0
}
