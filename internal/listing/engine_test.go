package listing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ytget/file-explorer/internal/model"
)

type favSet map[string]bool

func (f favSet) Contains(path string) bool { return f[path] }

// denyFS serves the host filesystem but refuses the listed paths.
type denyFS struct {
	OSFileSystem
	readDir map[string]bool
	stat    map[string]bool
	probe   map[string]bool
}

func (d denyFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if d.readDir[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return d.OSFileSystem.ReadDir(path)
}

func (d denyFS) Stat(path string) (fs.FileInfo, error) {
	if d.stat[path] {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrPermission}
	}
	return d.OSFileSystem.Stat(path)
}

func (d denyFS) HasChildren(path string) (bool, error) {
	if d.probe[path] {
		return false, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return d.OSFileSystem.HasChildren(path)
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func mkdirs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
}

func names(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func equalNames(t *testing.T, got []model.Entry, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("got %v, want %v", gotNames, want)
		}
	}
}

func TestList_FilesSortByExtensionThenName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "B.txt", "z.md")

	entries, err := NewEngine().List(dir, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	equalNames(t, entries, "z.md", "B.txt", "a.txt")
}

func TestList_DirectoriesBeforeFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt", "Makefile")
	mkdirs(t, dir, "src", "Docs")

	entries, err := NewEngine().List(dir, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// "Makefile" has no extension and sorts under "Unknown", before "txt".
	equalNames(t, entries, "Docs", "src", "Makefile", "notes.txt")

	if !entries[0].IsDir() || entries[0].TypeLabel() != model.FolderLabel {
		t.Errorf("expected directory entry, got %+v", entries[0])
	}
	if entries[2].Extension != model.UnknownExtension {
		t.Errorf("Makefile extension = %q", entries[2].Extension)
	}
	if entries[3].Extension != "TXT" {
		t.Errorf("notes.txt extension = %q", entries[3].Extension)
	}
}

func TestList_FavoritesLeadEachKind(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt", "c.txt")
	mkdirs(t, dir, "x", "y")

	favs := favSet{
		filepath.Join(dir, "c.txt"): true,
		filepath.Join(dir, "y"):     true,
	}
	entries, err := NewEngine().List(dir, favs)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	equalNames(t, entries, "y", "c.txt", "x", "a.txt", "b.txt")

	for _, e := range entries {
		if e.Favorite != favs[e.Path] {
			t.Errorf("%s: Favorite = %v", e.Name, e.Favorite)
		}
	}
}

func TestList_FavoritePartitionIsStable(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.go", "b.go", "c.go", "d.go")

	favs := favSet{
		filepath.Join(dir, "d.go"): true,
		filepath.Join(dir, "b.go"): true,
	}
	entries, err := NewEngine().List(dir, favs)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	equalNames(t, entries, "b.go", "d.go", "a.go", "c.go")
}

func TestList_EmptyDirectory(t *testing.T) {
	entries, err := NewEngine().List(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestList_EntryMetadata(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.bin"), make([]byte, 1536), 0o644); err != nil {
		t.Fatal(err)
	}
	touch(t, dir, ".bashrc", "archive.")
	mkdirs(t, dir, "empty", "full/inner")

	entries, err := NewEngine().List(dir, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	byName := make(map[string]model.Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
		if !filepath.IsAbs(e.Path) {
			t.Errorf("%s: path %q is not absolute", e.Name, e.Path)
		}
	}

	if got := byName["data.bin"]; got.Size != 1536 || got.Extension != "BIN" {
		t.Errorf("data.bin = %+v", got)
	}
	if got := byName[".bashrc"].Extension; got != model.UnknownExtension {
		t.Errorf(".bashrc extension = %q", got)
	}
	if got := byName["archive."].Extension; got != model.UnknownExtension {
		t.Errorf("archive. extension = %q", got)
	}
	if byName["empty"].HasChildren {
		t.Error("empty directory reports children")
	}
	if !byName["full"].HasChildren {
		t.Error("full directory reports no children")
	}
}

func TestList_RelativePathResolved(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "one.txt")
	chdir(t, dir)

	entries, err := NewEngine().List(".", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || !filepath.IsAbs(entries[0].Path) {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestList_DanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "link")); err != nil {
		t.Fatal(err)
	}

	entries, err := NewEngine().List(dir, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %v", names(entries))
	}
	if e := entries[0]; e.IsDir() || e.Size != 0 {
		t.Errorf("dangling link = %+v", e)
	}
}

func TestList_Errors(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file.txt")

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "nope"), ErrNotFound},
		{"file", filepath.Join(dir, "file.txt"), ErrNotDirectory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := NewEngine().List(tt.path, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if entries != nil {
				t.Errorf("expected nil entries, got %v", entries)
			}
		})
	}
}

func TestList_AccessDenied(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.txt")

	t.Run("enumeration", func(t *testing.T) {
		eng := NewEngine(WithFileSystem(denyFS{readDir: map[string]bool{dir: true}}))
		entries, err := eng.List(dir, nil)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("err = %v", err)
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("original error lost: %v", err)
		}
		if entries != nil {
			t.Errorf("expected nil entries, got %v", entries)
		}
	})

	t.Run("child", func(t *testing.T) {
		eng := NewEngine(WithFileSystem(denyFS{stat: map[string]bool{filepath.Join(dir, "b.txt"): true}}))
		entries, err := eng.List(dir, nil)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("err = %v", err)
		}
		if entries != nil {
			t.Errorf("listing must not be partial, got %v", names(entries))
		}
	})
}

func TestList_UnreadableSubdirectoryIsBranch(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "locked")
	locked := filepath.Join(dir, "locked")

	eng := NewEngine(WithFileSystem(denyFS{probe: map[string]bool{locked: true}}))
	entries, err := eng.List(dir, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || !entries[0].HasChildren {
		t.Fatalf("locked directory should report children: %+v", entries)
	}
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "photo.JPG")

	eng := NewEngine()
	entry, err := eng.Describe(filepath.Join(dir, "photo.JPG"))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if entry.Name != "photo.JPG" || entry.Extension != "JPG" || entry.IsDir() {
		t.Errorf("unexpected entry: %+v", entry)
	}

	root, err := eng.Describe(dir)
	if err != nil {
		t.Fatalf("Describe dir: %v", err)
	}
	if !root.IsDir() || !root.HasChildren {
		t.Errorf("unexpected root entry: %+v", root)
	}

	if _, err := eng.Describe(filepath.Join(dir, "gone")); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
