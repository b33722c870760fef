package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/atelier-ide/atelier/internal/content"
	"github.com/atelier-ide/atelier/internal/domain/entity"
)

func TestLoadTextFile(t *testing.T) {
	fs := newFakeFS()
	fs.files["/p/main.go"] = "package main\n"

	uc := NewLoadContentUseCase(fs)
	tab := entity.NewFileTab("/p/main.go")

	res, err := uc.Load(context.Background(), tab)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if res.Text != "package main\n" {
		t.Fatalf("text = %q", res.Text)
	}
	if res.Preview != content.PreviewNone {
		t.Fatalf("preview = %v, want none", res.Preview)
	}
	if res.Language != "Go" {
		t.Fatalf("language = %q, want Go", res.Language)
	}
}

func TestLoadBinaryFileCachesSentinel(t *testing.T) {
	fs := newFakeFS()
	fs.files["/p/blob.bin"] = "ab\x00cd"

	uc := NewLoadContentUseCase(fs)
	res, err := uc.Load(context.Background(), entity.NewFileTab("/p/blob.bin"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if res.Text != "" {
		t.Fatalf("binary file produced text %q, want empty sentinel", res.Text)
	}
}

func TestLoadImageSkipsRead(t *testing.T) {
	fs := newFakeFS()
	// No file registered: a raster preview must never hit the filesystem.
	uc := NewLoadContentUseCase(fs)

	res, err := uc.Load(context.Background(), entity.NewFileTab("/p/shot.png"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if res.Preview != content.PreviewImage || res.Text != "" {
		t.Fatalf("got %+v, want image preview with sentinel", res)
	}
}

func TestLoadSVGWrapsDocument(t *testing.T) {
	fs := newFakeFS()
	fs.files["/p/icon.svg"] = `<svg xmlns="http://www.w3.org/2000/svg"/>`

	uc := NewLoadContentUseCase(fs)
	res, err := uc.Load(context.Background(), entity.NewFileTab("/p/icon.svg"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if res.Preview != content.PreviewSVG {
		t.Fatalf("preview = %v, want SVG", res.Preview)
	}
	if !strings.Contains(res.HTML, "data:image/svg+xml;base64,") {
		t.Fatal("SVG wrapper missing embedded data URI")
	}
	if res.Text != "" {
		t.Fatal("SVG tabs cache the sentinel, not text")
	}
}

func TestLoadRejectsNonFileTabs(t *testing.T) {
	uc := NewLoadContentUseCase(newFakeFS())
	if _, err := uc.Load(context.Background(), entity.NewWebTab("https://example.com")); err == nil {
		t.Fatal("web tab load should error")
	}
	if _, err := uc.Load(context.Background(), nil); err == nil {
		t.Fatal("nil tab load should error")
	}
}

func TestLoadConcurrentSameTab(t *testing.T) {
	fs := newFakeFS()
	fs.files["/p/a.go"] = "package a\n"
	uc := NewLoadContentUseCase(fs)
	tab := entity.NewFileTab("/p/a.go")

	var wg sync.WaitGroup
	results := make([]LoadResult, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := uc.Load(context.Background(), tab)
			if err != nil {
				t.Errorf("load %d failed: %v", i, err)
				return
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		if res.Text != "package a\n" {
			t.Fatalf("result %d text = %q", i, res.Text)
		}
	}
}

func TestSaveWritesThroughFilesystem(t *testing.T) {
	fs := newFakeFS()
	fs.files["/p/a.go"] = "old"
	uc := NewLoadContentUseCase(fs)
	tab := entity.NewFileTab("/p/a.go")

	if err := uc.Save(context.Background(), tab, "new content"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if fs.files["/p/a.go"] != "new content" {
		t.Fatalf("file = %q after save", fs.files["/p/a.go"])
	}
	if err := uc.Save(context.Background(), entity.NewCanvasTab("c1"), "x"); err == nil {
		t.Fatal("saving a canvas tab should error")
	}
}

func TestIsBinary(t *testing.T) {
	if isBinary([]byte("plain text")) {
		t.Fatal("plain text flagged binary")
	}
	if !isBinary([]byte{0x00, 0x01, 0x02}) {
		t.Fatal("NUL bytes not flagged binary")
	}
	if !isBinary([]byte{'a', 0xff, 0xfe, 'b', 'c', 'd'}) {
		t.Fatal("invalid UTF-8 not flagged binary")
	}
	if isBinary([]byte("héllo wörld")) {
		t.Fatal("valid multi-byte UTF-8 flagged binary")
	}
}
