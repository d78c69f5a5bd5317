package ui

import (
	"path/filepath"
	"strings"

	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/model"
)

// lister is the part of the listing engine the tree reads from
type lister interface {
	List(path string, favorites listing.Favorites) ([]model.Entry, error)
	Describe(path string) (model.Entry, error)
}

// treeNode caches one directory level of the tree
type treeNode struct {
	entry    model.Entry
	children []string
	loaded   bool
}

// treeModel backs widget.Tree with lazily loaded listings. Node IDs are
// absolute paths; rootUID is the invisible parent of the current root.
// All methods run on the UI goroutine.
type treeModel struct {
	engine     lister
	favorites  listing.Favorites
	showHidden bool

	root  string
	nodes map[string]*treeNode
}

func newTreeModel(engine lister, favorites listing.Favorites) *treeModel {
	return &treeModel{
		engine:     engine,
		favorites:  favorites,
		showHidden: true,
		nodes:      make(map[string]*treeNode),
	}
}

// SetRoot replaces the tree with a new root directory and loads its first level
func (m *treeModel) SetRoot(path string) error {
	entry, err := m.engine.Describe(path)
	if err != nil {
		return err
	}
	if !entry.IsDir() {
		return listing.ErrNotDirectory
	}
	entry.Favorite = m.favorites != nil && m.favorites.Contains(entry.Path)

	children, err := m.list(entry.Path)
	if err != nil {
		return err
	}

	m.root = entry.Path
	m.nodes = make(map[string]*treeNode)
	m.nodes[entry.Path] = &treeNode{entry: entry}
	m.store(entry.Path, children)
	return nil
}

// Root returns the current root directory
func (m *treeModel) Root() string {
	return m.root
}

// Load re-lists a directory already known to the tree. Cached grandchildren
// of directories that are still present are kept so open branches stay open.
func (m *treeModel) Load(path string) error {
	children, err := m.list(path)
	if err != nil {
		return err
	}
	if _, ok := m.nodes[path]; !ok {
		entry, err := m.engine.Describe(path)
		if err != nil {
			return err
		}
		m.nodes[path] = &treeNode{entry: entry}
	}
	m.store(path, children)
	return nil
}

// Loaded reports whether the directory's children have been listed
func (m *treeModel) Loaded(path string) bool {
	node, ok := m.nodes[path]
	return ok && node.loaded
}

// ChildUIDs implements the widget.Tree child callback
func (m *treeModel) ChildUIDs(uid string) []string {
	if uid == rootUID {
		if m.root == "" {
			return nil
		}
		return []string{m.root}
	}
	if node, ok := m.nodes[uid]; ok {
		return node.children
	}
	return nil
}

// IsBranch implements the widget.Tree branch callback
func (m *treeModel) IsBranch(uid string) bool {
	if uid == rootUID || uid == m.root {
		return true
	}
	node, ok := m.nodes[uid]
	if !ok {
		return false
	}
	if node.loaded {
		return node.entry.IsDir()
	}
	return node.entry.IsDir() && node.entry.HasChildren
}

// Entry returns the cached entry for a node
func (m *treeModel) Entry(uid string) (model.Entry, bool) {
	node, ok := m.nodes[uid]
	if !ok {
		return model.Entry{}, false
	}
	return node.entry, true
}

// SetShowHidden toggles dotfile visibility for subsequent loads
func (m *treeModel) SetShowHidden(show bool) {
	m.showHidden = show
}

// ParentOf returns the directory holding path, or "" above the root
func (m *treeModel) ParentOf(path string) string {
	if path == m.root || path == rootUID {
		return ""
	}
	return filepath.Dir(path)
}

func (m *treeModel) list(path string) ([]model.Entry, error) {
	entries, err := m.engine.List(path, m.favorites)
	if err != nil {
		return nil, err
	}
	if m.showHidden {
		return entries, nil
	}
	visible := entries[:0]
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, ".") {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

func (m *treeModel) store(path string, children []model.Entry) {
	parent := m.nodes[path]

	keep := make(map[string]bool, len(children))
	ids := make([]string, 0, len(children))
	for _, child := range children {
		keep[child.Path] = true
		ids = append(ids, child.Path)
		if existing, ok := m.nodes[child.Path]; ok {
			existing.entry = child
			continue
		}
		m.nodes[child.Path] = &treeNode{entry: child}
	}

	for _, old := range parent.children {
		if !keep[old] {
			m.forget(old)
		}
	}

	parent.children = ids
	parent.loaded = true
}

// forget drops a node and its cached descendants
func (m *treeModel) forget(path string) {
	node, ok := m.nodes[path]
	if !ok {
		return
	}
	for _, child := range node.children {
		m.forget(child)
	}
	delete(m.nodes, path)
}
