package ui

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ytget/file-explorer/internal/favorites"
	"github.com/ytget/file-explorer/internal/listing"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"docs/old", "empty"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, file := range []string{"b.txt", "a.md", ".hidden", "docs/readme.txt"} {
		if err := os.WriteFile(filepath.Join(root, file), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestTreeModel_SetRoot(t *testing.T) {
	root := makeTree(t)
	m := newTreeModel(listing.NewEngine(), favorites.NewStore(""))

	if err := m.SetRoot(root); err != nil {
		t.Fatalf("SetRoot: %v", err)
	}
	if got := m.ChildUIDs(rootUID); !slices.Equal(got, []string{root}) {
		t.Fatalf("root children = %v", got)
	}

	want := []string{
		filepath.Join(root, "docs"),
		filepath.Join(root, "empty"),
		filepath.Join(root, ".hidden"),
		filepath.Join(root, "a.md"),
		filepath.Join(root, "b.txt"),
	}
	if got := m.ChildUIDs(root); !slices.Equal(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}

	if !m.IsBranch(filepath.Join(root, "docs")) {
		t.Error("docs should be a branch")
	}
	if m.IsBranch(filepath.Join(root, "empty")) {
		t.Error("empty directory should be a leaf")
	}
	if m.IsBranch(filepath.Join(root, "a.md")) {
		t.Error("file should be a leaf")
	}
	if m.Loaded(filepath.Join(root, "docs")) {
		t.Error("docs should not be loaded before it is opened")
	}
}

func TestTreeModel_LoadKeepsOpenBranches(t *testing.T) {
	root := makeTree(t)
	m := newTreeModel(listing.NewEngine(), favorites.NewStore(""))
	if err := m.SetRoot(root); err != nil {
		t.Fatal(err)
	}

	docs := filepath.Join(root, "docs")
	if err := m.Load(docs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(m.ChildUIDs(docs)); got != 2 {
		t.Fatalf("docs children = %d", got)
	}

	if err := os.WriteFile(filepath.Join(root, "c.go"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(root); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !m.Loaded(docs) {
		t.Error("reloading the parent dropped the open docs branch")
	}
	if _, ok := m.Entry(filepath.Join(root, "c.go")); !ok {
		t.Error("new file not picked up")
	}

	if err := os.RemoveAll(docs); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(root); err != nil {
		t.Fatal(err)
	}
	if _, ok := m.Entry(filepath.Join(docs, "readme.txt")); ok {
		t.Error("descendants of removed directory still cached")
	}
}

func TestTreeModel_FavoritesAndHidden(t *testing.T) {
	root := makeTree(t)
	store := favorites.NewStore("")
	store.Toggle(filepath.Join(root, "b.txt"))

	m := newTreeModel(listing.NewEngine(), store)
	m.SetShowHidden(false)
	if err := m.SetRoot(root); err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "docs"),
		filepath.Join(root, "empty"),
		filepath.Join(root, "a.md"),
	}
	if got := m.ChildUIDs(root); !slices.Equal(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
	if entry, _ := m.Entry(filepath.Join(root, "b.txt")); !entry.Favorite {
		t.Error("favorite flag not set")
	}
}

func TestTreeModel_SetRootErrors(t *testing.T) {
	root := makeTree(t)
	m := newTreeModel(listing.NewEngine(), nil)

	if err := m.SetRoot(filepath.Join(root, "missing")); !errors.Is(err, listing.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := m.SetRoot(filepath.Join(root, "a.md")); !errors.Is(err, listing.ErrNotDirectory) {
		t.Errorf("err = %v, want ErrNotDirectory", err)
	}
	if m.Root() != "" {
		t.Errorf("failed SetRoot changed root to %q", m.Root())
	}
}
