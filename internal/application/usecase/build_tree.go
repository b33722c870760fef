package usecase

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atelier-ide/atelier/internal/application/port"
	"github.com/atelier-ide/atelier/internal/domain/entity"
	"github.com/atelier-ide/atelier/internal/logging"
)

// BuildTreeUseCase constructs the workspace file tree shown in the
// sidebar. It never fails: directories that cannot be listed simply get
// empty children, so a permission error deep in the tree does not take
// down the whole sidebar.
type BuildTreeUseCase struct {
	fs       port.FileSystem
	maxDepth int
}

// NewBuildTreeUseCase creates a tree builder. maxDepth caps recursion
// depth; 0 means unlimited.
func NewBuildTreeUseCase(fs port.FileSystem, maxDepth int) *BuildTreeUseCase {
	return &BuildTreeUseCase{fs: fs, maxDepth: maxDepth}
}

// Build walks root recursively and returns its tree. Dot-prefixed entries
// are skipped, and every directory's children sort directories first, then
// case-insensitively by name. The root node itself is always returned,
// even when empty or unreadable.
func (uc *BuildTreeUseCase) Build(ctx context.Context, root string) *entity.WorkspaceNode {
	node := &entity.WorkspaceNode{
		Path:  root,
		Name:  filepath.Base(root),
		IsDir: true,
	}
	uc.fill(ctx, node, 1)

	logging.FromContext(ctx).Debug().
		Str("workspace", root).
		Int("file_count", node.FileCount()).
		Msg("workspace tree built")
	return node
}

func (uc *BuildTreeUseCase) fill(ctx context.Context, dir *entity.WorkspaceNode, depth int) {
	if uc.maxDepth > 0 && depth > uc.maxDepth {
		return
	}

	entries, err := uc.fs.ListDir(ctx, dir.Path)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", dir.Path).Msg("listing directory failed")
		return
	}

	children := make([]*entity.WorkspaceNode, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name, ".") {
			continue
		}
		children = append(children, &entity.WorkspaceNode{
			Path:  filepath.Join(dir.Path, e.Name),
			Name:  e.Name,
			IsDir: e.IsDir,
		})
	}

	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		return strings.ToLower(children[i].Name) < strings.ToLower(children[j].Name)
	})

	dir.Children = children
	for _, child := range children {
		if child.IsDir {
			uc.fill(ctx, child, depth+1)
		}
	}
}
