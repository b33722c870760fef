package usecase

import (
	"context"

	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/logging"
)

// ResizeGesture tracks one interactive divider drag. Fractions are
// snapshotted at gesture start and every delta applies against that
// snapshot's running state, so the layout itself stays untouched until
// Commit. Abandoning a gesture without committing leaves widths unchanged.
type ResizeGesture struct {
	layout    *entity.Layout
	order     []entity.PaneID
	fractions []float64
	min       float64
}

// BeginResize snapshots the current pane width fractions for a divider
// drag. Panes without a recorded fraction snapshot at an equal share, and
// the snapshot is normalized so fractions sum to 1. Returns nil when the
// layout has fewer than two panes.
func (uc *ManagePanesUseCase) BeginResize(ctx context.Context, l *entity.Layout) *ResizeGesture {
	if len(l.Panes) < 2 {
		return nil
	}

	g := &ResizeGesture{
		layout:    l,
		order:     make([]entity.PaneID, len(l.Panes)),
		fractions: make([]float64, len(l.Panes)),
		min:       uc.minFraction,
	}

	equal := 1.0 / float64(len(l.Panes))
	sum := 0.0
	for i, p := range l.Panes {
		g.order[i] = p.ID
		w, ok := l.Widths[p.ID]
		if !ok || w < 0 {
			w = equal
		}
		g.fractions[i] = w
		sum += w
	}
	if sum <= entity.WidthEpsilon {
		for i := range g.fractions {
			g.fractions[i] = equal
		}
	} else {
		for i := range g.fractions {
			g.fractions[i] /= sum
		}
	}

	logging.FromContext(ctx).Debug().Int("pane_count", len(l.Panes)).Msg("resize gesture started")
	return g
}

// ApplyDelta shifts the divider between panes boundary and boundary+1 by
// delta (a fraction of total width, positive toward the right). The shift
// clamps so neither adjacent pane drops below the minimum fraction; panes
// beyond the pair are unaffected, preserving the overall sum.
func (g *ResizeGesture) ApplyDelta(boundary int, delta float64) {
	if boundary < 0 || boundary >= len(g.fractions)-1 {
		return
	}

	left := g.fractions[boundary]
	right := g.fractions[boundary+1]
	if left+right < 2*g.min {
		return
	}

	if left+delta < g.min {
		delta = g.min - left
	}
	if right-delta < g.min {
		delta = right - g.min
	}

	g.fractions[boundary] = left + delta
	g.fractions[boundary+1] = right - delta
}

// Fractions returns the gesture's current working fractions in pane order,
// for live divider rendering.
func (g *ResizeGesture) Fractions() []float64 {
	out := make([]float64, len(g.fractions))
	copy(out, g.fractions)
	return out
}

// Commit writes the gesture's fractions back into the layout and
// renormalizes. Panes added or removed mid-gesture keep whatever fraction
// normalization assigns them.
func (g *ResizeGesture) Commit(ctx context.Context) {
	for i, id := range g.order {
		if g.layout.PaneIndex(id) >= 0 {
			g.layout.Widths[id] = g.fractions[i]
		}
	}
	g.layout.NormalizeWidths()

	logging.FromContext(ctx).Debug().Float64("width_sum", g.layout.WidthSum()).Msg("resize gesture committed")
}
