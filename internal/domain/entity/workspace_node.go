package entity

// WorkspaceNode represents one file-system entry under the open workspace
// root. Children are present only for directories, sorted directories-first
// then case-insensitive name order. The tree is rebuilt wholesale whenever
// the workspace root changes and is never mutated in place.
type WorkspaceNode struct {
	Path     string // absolute path, doubles as identity
	Name     string
	IsDir    bool
	Children []*WorkspaceNode
}

// Walk traverses the tree depth-first, calling fn for each node.
// Traversal stops early when fn returns false.
func (n *WorkspaceNode) Walk(fn func(*WorkspaceNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FirstFile returns the first file found by a depth-first,
// directories-first traversal, or nil when the tree holds no files.
// Child ordering already places directories before files, so a plain
// depth-first walk visits directory subtrees first.
func (n *WorkspaceNode) FirstFile() *WorkspaceNode {
	var found *WorkspaceNode
	n.Walk(func(node *WorkspaceNode) bool {
		if !node.IsDir {
			found = node
			return false
		}
		return true
	})
	return found
}

// FileCount returns the number of file (non-directory) nodes in the tree.
func (n *WorkspaceNode) FileCount() int {
	count := 0
	n.Walk(func(node *WorkspaceNode) bool {
		if !node.IsDir {
			count++
		}
		return true
	})
	return count
}
