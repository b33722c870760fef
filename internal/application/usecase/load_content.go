package usecase

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/atelier-ide/atelier/internal/application/port"
	"github.com/atelier-ide/atelier/internal/content"
	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/logging"
)

// binarySniffLen bounds how many leading bytes are inspected when deciding
// whether a file is binary.
const binarySniffLen = 8000

// LoadResult carries everything the shell needs to render a freshly loaded
// file tab.
type LoadResult struct {
	Identity entity.TabIdentity
	// Text is the editable content, or the empty-string sentinel for
	// binary and preview files.
	Text     string
	Preview  content.PreviewKind
	Language string
	// HTML is the wrapper document for SVG previews, empty otherwise.
	HTML string
}

// LoadContentUseCase reads file tab content off the UI thread. Concurrent
// loads for the same tab identity collapse into a single read via
// singleflight, so rapid re-activation cannot stampede the disk.
type LoadContentUseCase struct {
	fs    port.FileSystem
	group singleflight.Group
}

// NewLoadContentUseCase creates a content loader over the given filesystem.
func NewLoadContentUseCase(fs port.FileSystem) *LoadContentUseCase {
	return &LoadContentUseCase{fs: fs}
}

// Load reads the file backing tab and classifies it for rendering. Raster
// images skip the read entirely; SVGs load into an HTML wrapper; binary
// files collapse to the empty-string sentinel. Non-file tabs return an
// error since only file tabs have loadable content.
func (uc *LoadContentUseCase) Load(ctx context.Context, tab *entity.Tab) (LoadResult, error) {
	if tab == nil || tab.Kind != entity.TabFile {
		return LoadResult{}, fmt.Errorf("load content: not a file tab")
	}

	id := tab.Identity()
	v, err, shared := uc.group.Do(string(id), func() (interface{}, error) {
		return uc.load(ctx, tab)
	})
	if err != nil {
		return LoadResult{}, err
	}
	if shared {
		logging.FromContext(ctx).Debug().Str("tab", string(id)).Msg("content load deduplicated")
	}
	return v.(LoadResult), nil
}

func (uc *LoadContentUseCase) load(ctx context.Context, tab *entity.Tab) (LoadResult, error) {
	res := LoadResult{
		Identity: tab.Identity(),
		Preview:  content.PreviewFor(tab.Path),
	}

	switch res.Preview {
	case content.PreviewImage:
		// The renderer decodes the image itself; the cache only needs the
		// sentinel so the tab counts as loaded.
		return res, nil

	case content.PreviewSVG:
		data, err := uc.fs.ReadFile(ctx, tab.Path)
		if err != nil {
			return LoadResult{}, fmt.Errorf("load content: read %s: %w", tab.Path, err)
		}
		res.HTML = content.SVGDocument(data)
		return res, nil
	}

	data, err := uc.fs.ReadFile(ctx, tab.Path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load content: read %s: %w", tab.Path, err)
	}
	if isBinary(data) {
		logging.FromContext(ctx).Debug().Str("path", tab.Path).Msg("binary file, caching sentinel")
		return res, nil
	}

	res.Text = string(data)
	res.Language = content.LanguageHint(tab.Path)
	return res, nil
}

// Save writes edited text back to the file tab's path.
func (uc *LoadContentUseCase) Save(ctx context.Context, tab *entity.Tab, text string) error {
	if tab == nil || tab.Kind != entity.TabFile {
		return fmt.Errorf("save content: not a file tab")
	}
	if err := uc.fs.WriteFile(ctx, tab.Path, []byte(text)); err != nil {
		return fmt.Errorf("save content: write %s: %w", tab.Path, err)
	}
	logging.FromContext(ctx).Info().Str("path", tab.Path).Int("bytes", len(text)).Msg("saved file")
	return nil
}

// isBinary reports whether data looks like non-text content: a NUL byte or
// invalid UTF-8 in the leading window.
func isBinary(data []byte) bool {
	truncated := len(data) > binarySniffLen
	sniff := data
	if truncated {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		return true
	}
	for len(sniff) > 0 {
		r, size := utf8.DecodeRune(sniff)
		if r == utf8.RuneError && size == 1 {
			// A multi-byte rune cut off at the sniff boundary is not
			// corruption.
			if truncated && len(sniff) < utf8.UTFMax {
				return false
			}
			return true
		}
		sniff = sniff[size:]
	}
	return false
}
