package usecase

import (
	"context"
	"math"
	"testing"
)

func TestResizeGestureAppliesDeltaAndCommits(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	l := uc.NewLayout()

	a, _ := uc.OpenFile(ctx, l, "/p/a.go", "")
	b, _ := uc.OpenFile(ctx, l, "/p/b.go", "")
	uc.SplitTabIntoNewPane(ctx, l, b.Identity())
	_ = a

	g := uc.BeginResize(ctx, l)
	if g == nil {
		t.Fatal("gesture should start with two panes")
	}

	g.ApplyDelta(0, 0.2)
	fr := g.Fractions()
	if math.Abs(fr[0]-0.7) > 1e-9 || math.Abs(fr[1]-0.3) > 1e-9 {
		t.Fatalf("fractions after delta = %v, want [0.7 0.3]", fr)
	}

	// Layout widths stay untouched until commit.
	if w := l.Widths[l.Panes[0].ID]; math.Abs(w-0.5) > 1e-9 {
		t.Fatalf("layout width mutated mid-gesture: %v", w)
	}

	g.Commit(ctx)
	if w := l.Widths[l.Panes[0].ID]; math.Abs(w-0.7) > 1e-9 {
		t.Fatalf("committed width = %v, want 0.7", w)
	}
	widthSumOK(t, l)
}

func TestResizeGestureClampsToMinimumFraction(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	l := uc.NewLayout()

	uc.OpenFile(ctx, l, "/p/a.go", "")
	b, _ := uc.OpenFile(ctx, l, "/p/b.go", "")
	uc.SplitTabIntoNewPane(ctx, l, b.Identity())

	g := uc.BeginResize(ctx, l)
	g.ApplyDelta(0, 0.9) // would push the right pane negative
	fr := g.Fractions()
	if math.Abs(fr[1]-DefaultMinPaneFraction) > 1e-9 {
		t.Fatalf("right pane = %v, want clamped to %v", fr[1], DefaultMinPaneFraction)
	}
	if math.Abs(fr[0]+fr[1]-1.0) > 1e-9 {
		t.Fatalf("pair sum drifted: %v", fr[0]+fr[1])
	}

	g.ApplyDelta(0, -2.0)
	fr = g.Fractions()
	if math.Abs(fr[0]-DefaultMinPaneFraction) > 1e-9 {
		t.Fatalf("left pane = %v, want clamped to %v", fr[0], DefaultMinPaneFraction)
	}
}

func TestResizeGestureIgnoresInvalidBoundary(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	l := uc.NewLayout()

	uc.OpenFile(ctx, l, "/p/a.go", "")
	b, _ := uc.OpenFile(ctx, l, "/p/b.go", "")
	uc.SplitTabIntoNewPane(ctx, l, b.Identity())

	g := uc.BeginResize(ctx, l)
	g.ApplyDelta(-1, 0.2)
	g.ApplyDelta(1, 0.2)
	fr := g.Fractions()
	if math.Abs(fr[0]-0.5) > 1e-9 || math.Abs(fr[1]-0.5) > 1e-9 {
		t.Fatalf("fractions changed on invalid boundary: %v", fr)
	}
}

func TestBeginResizeSinglePaneReturnsNil(t *testing.T) {
	uc, _ := newTestUseCase()
	l := uc.NewLayout()
	if uc.BeginResize(context.Background(), l) != nil {
		t.Fatal("single-pane layout should not start a gesture")
	}
}

func TestResizeGestureHandlesRemovedPaneOnCommit(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()
	l := uc.NewLayout()

	a, _ := uc.OpenFile(ctx, l, "/p/a.go", "")
	b, _ := uc.OpenFile(ctx, l, "/p/b.go", "")
	c, _ := uc.OpenFile(ctx, l, "/p/c.go", "")
	uc.SplitTabIntoNewPane(ctx, l, b.Identity())
	uc.SplitTabIntoNewPane(ctx, l, c.Identity())
	_ = a

	g := uc.BeginResize(ctx, l)
	g.ApplyDelta(0, 0.1)

	// The middle pane vanishes mid-gesture; commit must not resurrect it.
	uc.CloseTab(ctx, l, b.Identity())
	g.Commit(ctx)

	if len(l.Widths) != len(l.Panes) {
		t.Fatalf("widths has %d entries for %d panes", len(l.Widths), len(l.Panes))
	}
	widthSumOK(t, l)
}
