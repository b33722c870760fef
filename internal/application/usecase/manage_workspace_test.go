package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/atelier-ide/atelier/internal/application/port"
	"github.com/atelier-ide/atelier/internal/domain/entity"
)

type fakeLease struct {
	scope    *fakeScope
	path     string
	released bool
}

func (l *fakeLease) Path() string { return l.path }

func (l *fakeLease) Release() {
	if l.released {
		return
	}
	l.released = true
	l.scope.calls = append(l.scope.calls, "release:"+l.path)
}

type fakeScope struct {
	leases     []*fakeLease
	calls      []string
	resolveTo  map[string]string
	acquireErr error
}

func newFakeScope() *fakeScope {
	return &fakeScope{resolveTo: make(map[string]string)}
}

func (s *fakeScope) Acquire(ctx context.Context, path string) (port.AccessLease, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	s.calls = append(s.calls, "acquire:"+path)
	l := &fakeLease{scope: s, path: path}
	s.leases = append(s.leases, l)
	return l, nil
}

func (s *fakeScope) Bookmark(ctx context.Context, path string) ([]byte, error) {
	return []byte("bm:" + path), nil
}

func (s *fakeScope) Resolve(ctx context.Context, bookmark []byte) (string, error) {
	key := string(bookmark)
	if to, ok := s.resolveTo[key]; ok {
		return to, nil
	}
	if len(key) > 3 && key[:3] == "bm:" {
		return key[3:], nil
	}
	return "", errors.New("unresolvable bookmark")
}

type fakeRecents struct {
	entries []*entity.RecentWorkspace
}

func (r *fakeRecents) Record(ctx context.Context, path string, bookmark []byte) error {
	r.entries = append([]*entity.RecentWorkspace{{Path: path, Bookmark: bookmark}}, removePath(r.entries, path)...)
	if len(r.entries) > entity.MaxRecentWorkspaces {
		r.entries = r.entries[:entity.MaxRecentWorkspaces]
	}
	return nil
}

func removePath(entries []*entity.RecentWorkspace, path string) []*entity.RecentWorkspace {
	out := entries[:0:0]
	for _, e := range entries {
		if e.Path != path {
			out = append(out, e)
		}
	}
	return out
}

func (r *fakeRecents) GetAll(ctx context.Context) ([]*entity.RecentWorkspace, error) {
	return r.entries, nil
}

func (r *fakeRecents) Find(ctx context.Context, path string) (*entity.RecentWorkspace, error) {
	for _, e := range r.entries {
		if e.Path == path {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeRecents) Remove(ctx context.Context, path string) error {
	r.entries = removePath(r.entries, path)
	return nil
}

type fakePrefs map[string]string

func (p fakePrefs) Get(ctx context.Context, key string) (string, error) { return p[key], nil }
func (p fakePrefs) Set(ctx context.Context, key, value string) error {
	p[key] = value
	return nil
}

func newWorkspaceFixture() (*ManageWorkspaceUseCase, *fakeFS, *fakeScope, *fakeRecents, fakePrefs) {
	fs := newFakeFS()
	scope := newFakeScope()
	recents := &fakeRecents{}
	prefs := fakePrefs{}
	return NewManageWorkspaceUseCase(fs, scope, recents, prefs), fs, scope, recents, prefs
}

func TestPrepareSwapsLeaseAndRecords(t *testing.T) {
	uc, fs, scope, recents, prefs := newWorkspaceFixture()
	ctx := context.Background()
	fs.addDir("/ws/one")
	fs.addDir("/ws/two")

	if err := uc.Prepare(ctx, "/ws/one"); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if err := uc.Prepare(ctx, "/ws/two"); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	if len(scope.leases) != 2 {
		t.Fatalf("lease count = %d, want 2", len(scope.leases))
	}
	if !scope.leases[0].released {
		t.Fatal("previous lease not released on switch")
	}
	if scope.leases[1].released {
		t.Fatal("current lease released prematurely")
	}
	if uc.CurrentPath() != "/ws/two" {
		t.Fatalf("current = %q", uc.CurrentPath())
	}
	if len(recents.entries) != 2 || recents.entries[0].Path != "/ws/two" {
		t.Fatalf("recents = %+v, want /ws/two first", recents.entries)
	}
	if prefs["last_workspace"] != "/ws/two" {
		t.Fatalf("last workspace pref = %q", prefs["last_workspace"])
	}
}

func TestPrepareReleasesOldLeaseBeforeAcquire(t *testing.T) {
	uc, fs, scope, _, _ := newWorkspaceFixture()
	ctx := context.Background()
	fs.addDir("/ws/a")
	fs.addDir("/ws/b")

	if err := uc.Prepare(ctx, "/ws/a"); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if err := uc.Prepare(ctx, "/ws/b"); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	want := []string{"acquire:/ws/a", "release:/ws/a", "acquire:/ws/b"}
	if len(scope.calls) != len(want) {
		t.Fatalf("scope calls = %v, want %v", scope.calls, want)
	}
	for i, w := range want {
		if scope.calls[i] != w {
			t.Fatalf("scope calls = %v, want %v", scope.calls, want)
		}
	}
}

func TestPrepareFailureLeaseHandling(t *testing.T) {
	uc, fs, scope, _, _ := newWorkspaceFixture()
	ctx := context.Background()
	fs.addDir("/ws/one")

	if err := uc.Prepare(ctx, "/ws/one"); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	// The directory check runs before the old lease goes, so a bogus
	// target leaves the current workspace held.
	if err := uc.Prepare(ctx, "/ws/missing"); err == nil {
		t.Fatal("preparing a non-directory should fail")
	}
	if scope.leases[0].released {
		t.Fatal("old lease released on non-directory target")
	}
	if uc.CurrentPath() != "/ws/one" {
		t.Fatalf("current = %q after non-directory target", uc.CurrentPath())
	}

	// An acquire failure happens after the mandatory release: nothing is
	// held afterwards.
	fs.addDir("/ws/two")
	scope.acquireErr = errors.New("denied")
	if err := uc.Prepare(ctx, "/ws/two"); err == nil {
		t.Fatal("acquire failure should propagate")
	}
	if !scope.leases[0].released {
		t.Fatal("old lease must be released before the acquire attempt")
	}
	if uc.CurrentPath() != "" {
		t.Fatalf("current = %q after failed acquire, want none held", uc.CurrentPath())
	}
}

func TestOpenRecentEvictsMissingWorkspace(t *testing.T) {
	uc, _, _, recents, _ := newWorkspaceFixture()
	ctx := context.Background()
	recents.Record(ctx, "/ws/gone", []byte("bm:/ws/gone"))

	if _, err := uc.OpenRecent(ctx, "/ws/gone"); err == nil {
		t.Fatal("opening a deleted workspace should fail")
	}
	if e, _ := recents.Find(ctx, "/ws/gone"); e != nil {
		t.Fatal("stale entry not evicted")
	}
}

func TestOpenRecentFollowsMovedBookmark(t *testing.T) {
	uc, fs, scope, recents, _ := newWorkspaceFixture()
	ctx := context.Background()
	fs.addDir("/ws/renamed")
	recents.Record(ctx, "/ws/orig", []byte("bm:/ws/orig"))
	scope.resolveTo["bm:/ws/orig"] = "/ws/renamed"

	resolved, err := uc.OpenRecent(ctx, "/ws/orig")
	if err != nil {
		t.Fatalf("open recent failed: %v", err)
	}
	if resolved != "/ws/renamed" {
		t.Fatalf("resolved = %q, want moved path", resolved)
	}
	if e, _ := recents.Find(ctx, "/ws/orig"); e != nil {
		t.Fatal("old path still in recents after move")
	}
	if e, _ := recents.Find(ctx, "/ws/renamed"); e == nil {
		t.Fatal("moved path not re-recorded")
	}
}

func TestOpenRecentUnknownPath(t *testing.T) {
	uc, _, _, _, _ := newWorkspaceFixture()
	if _, err := uc.OpenRecent(context.Background(), "/never/opened"); err == nil {
		t.Fatal("unknown recent should error")
	}
}

func TestLastWorkspaceValidatesExistence(t *testing.T) {
	uc, fs, _, _, prefs := newWorkspaceFixture()
	ctx := context.Background()

	if got := uc.LastWorkspace(ctx); got != "" {
		t.Fatalf("last workspace = %q with no pref", got)
	}

	prefs["last_workspace"] = "/ws/gone"
	if got := uc.LastWorkspace(ctx); got != "" {
		t.Fatalf("last workspace = %q for deleted dir", got)
	}

	fs.addDir("/ws/here")
	prefs["last_workspace"] = "/ws/here"
	if got := uc.LastWorkspace(ctx); got != "/ws/here" {
		t.Fatalf("last workspace = %q", got)
	}
}
