package fileops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/ytget/file-explorer/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func TestClipboardModes(t *testing.T) {
	service := NewService()

	if !service.Clipboard().IsEmpty() {
		t.Fatal("new service should have empty clipboard")
	}

	service.Cut([]string{"/a", "/b"})
	if got := service.Clipboard(); got.Mode != model.ClipboardCut || len(got.Paths) != 2 {
		t.Errorf("after Cut: %+v", got)
	}

	service.Copy([]string{"/c"})
	if got := service.Clipboard(); got.Mode != model.ClipboardCopy || len(got.Paths) != 1 {
		t.Errorf("Copy should replace Cut: %+v", got)
	}

	state := service.Clipboard()
	state.Paths[0] = "/changed"
	if service.Clipboard().Paths[0] != "/c" {
		t.Error("Clipboard returned shared slice")
	}

	service.ClearClipboard()
	if !service.Clipboard().IsEmpty() {
		t.Error("ClearClipboard did not clear")
	}
}

func TestPaste_EmptyClipboard(t *testing.T) {
	_, err := NewService().Paste(context.Background(), t.TempDir())
	if !errors.Is(err, ErrEmptyClipboard) {
		t.Fatalf("err = %v, want ErrEmptyClipboard", err)
	}
}

func TestPaste_CutMovesAndClears(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")
	writeFile(t, filepath.Join(src, "tree", "b.txt"), "beta")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}

	service := NewService()
	service.Cut([]string{filepath.Join(src, "a.txt"), filepath.Join(src, "tree")})

	batch, err := service.Paste(context.Background(), dst)
	if err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if batch.Kind != model.BatchMove || batch.Status != model.OperationCompleted {
		t.Errorf("unexpected batch: kind=%s status=%s", batch.Kind, batch.Status)
	}
	if !strings.HasPrefix(batch.ID, "op-") {
		t.Errorf("batch ID = %q", batch.ID)
	}

	if exists(filepath.Join(src, "a.txt")) || exists(filepath.Join(src, "tree")) {
		t.Error("sources still present after move")
	}
	data, err := os.ReadFile(filepath.Join(dst, "tree", "b.txt"))
	if err != nil || string(data) != "beta" {
		t.Errorf("moved tree content = %q, %v", data, err)
	}
	if !service.Clipboard().IsEmpty() {
		t.Error("clipboard not cleared after successful paste")
	}
}

func TestPaste_CopyKeepsSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "readme.md"), "hello")
	dst := filepath.Join(root, "backup")
	if err := os.Mkdir(dst, 0o755); err != nil {
		t.Fatal(err)
	}

	service := NewService()
	service.Copy([]string{filepath.Join(root, "docs")})

	if _, err := service.Paste(context.Background(), dst); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if !exists(filepath.Join(root, "docs", "readme.md")) {
		t.Error("copy removed the source")
	}
	if !exists(filepath.Join(dst, "docs", "readme.md")) {
		t.Error("copy did not create the target")
	}
}

func TestPaste_FileDestinationUsesParent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "in", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "out", "existing.txt"), "e")

	service := NewService()
	service.Copy([]string{filepath.Join(root, "in", "a.txt")})

	if _, err := service.Paste(context.Background(), filepath.Join(root, "out", "existing.txt")); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if !exists(filepath.Join(root, "out", "a.txt")) {
		t.Error("file not pasted next to the selected file")
	}
}

func TestPaste_FailureStopsBatch(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "dst")
	writeFile(t, filepath.Join(root, "one.txt"), "1")
	writeFile(t, filepath.Join(root, "two.txt"), "2")
	writeFile(t, filepath.Join(root, "three.txt"), "3")
	writeFile(t, filepath.Join(dst, "two.txt"), "existing")

	service := NewService()
	service.Cut([]string{
		filepath.Join(root, "one.txt"),
		filepath.Join(root, "two.txt"),
		filepath.Join(root, "three.txt"),
	})

	batch, err := service.Paste(context.Background(), dst)
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("err = %v, want ErrTargetExists", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Path != filepath.Join(root, "two.txt") {
		t.Errorf("OpError should name the failing source, got %v", err)
	}

	statuses := []model.OperationStatus{
		model.OperationCompleted,
		model.OperationError,
		model.OperationSkipped,
	}
	for i, want := range statuses {
		if got := batch.Items[i].Status; got != want {
			t.Errorf("item %d status = %s, want %s", i, got, want)
		}
	}

	if !exists(filepath.Join(root, "three.txt")) {
		t.Error("skipped item was moved")
	}
	data, _ := os.ReadFile(filepath.Join(dst, "two.txt"))
	if string(data) != "existing" {
		t.Error("existing target was overwritten")
	}
	if service.Clipboard().IsEmpty() {
		t.Error("clipboard cleared after failed batch")
	}
}

func TestPaste_IntoItself(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "parent", "child", "f.txt"), "x")

	service := NewService()
	service.Copy([]string{filepath.Join(root, "parent")})

	_, err := service.Paste(context.Background(), filepath.Join(root, "parent", "child"))
	if !errors.Is(err, ErrIntoItself) {
		t.Fatalf("err = %v, want ErrIntoItself", err)
	}
}

func TestPaste_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	service := NewService()
	service.Copy([]string{filepath.Join(root, "a.txt")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	batch, err := service.Paste(ctx, filepath.Join(root))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if batch.Status != model.OperationError {
		t.Errorf("batch status = %s", batch.Status)
	}
}

func TestDelete(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dir", "nested.txt"), "n")
	writeFile(t, filepath.Join(root, "file.txt"), "f")

	service := NewService()

	var mu sync.Mutex
	updates := 0
	service.SetUpdateCallback(func(*model.Batch) {
		mu.Lock()
		updates++
		mu.Unlock()
	})

	batch, err := service.Delete(context.Background(), []string{
		filepath.Join(root, "dir"),
		filepath.Join(root, "file.txt"),
	})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(batch.Completed()) != 2 || batch.Progress() != 100 {
		t.Errorf("unexpected batch: %+v", batch)
	}
	if exists(filepath.Join(root, "dir")) || exists(filepath.Join(root, "file.txt")) {
		t.Error("paths still present after delete")
	}
	if updates == 0 {
		t.Error("update callback never called")
	}
}

func TestDelete_MissingPathStops(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"), "k")

	batch, err := NewService().Delete(context.Background(), []string{
		filepath.Join(root, "gone.txt"),
		filepath.Join(root, "keep.txt"),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
	if len(batch.Skipped()) != 1 || !exists(filepath.Join(root, "keep.txt")) {
		t.Error("remaining item should be skipped and kept")
	}
}

func TestRename(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "old.txt"), "o")
	writeFile(t, filepath.Join(root, "taken.txt"), "t")

	service := NewService()

	newPath, err := service.Rename(filepath.Join(root, "old.txt"), "new.txt")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if newPath != filepath.Join(root, "new.txt") || !exists(newPath) {
		t.Errorf("rename result = %q", newPath)
	}

	if _, err := service.Rename(newPath, "taken.txt"); !errors.Is(err, ErrTargetExists) {
		t.Errorf("err = %v, want ErrTargetExists", err)
	}

	for _, bad := range []string{"", "  ", "..", "a/b"} {
		if _, err := service.Rename(newPath, bad); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Rename(%q) err = %v, want ErrInvalidName", bad, err)
		}
	}
}

func TestCreateFolder(t *testing.T) {
	root := t.TempDir()
	service := NewService()

	path, err := service.CreateFolder(root, "New Folder")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Fatalf("folder not created: %v", err)
	}

	if _, err := service.CreateFolder(root, "New Folder"); !errors.Is(err, ErrTargetExists) {
		t.Errorf("err = %v, want ErrTargetExists", err)
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		path, root string
		want       bool
	}{
		{"/a/b", "/a/b", true},
		{"/a/b/c", "/a/b", true},
		{"/a/bc", "/a/b", false},
		{"/a", "/a/b", false},
	}
	for _, tt := range tests {
		if got := within(filepath.FromSlash(tt.path), filepath.FromSlash(tt.root)); got != tt.want {
			t.Errorf("within(%q, %q) = %v, want %v", tt.path, tt.root, got, tt.want)
		}
	}
}
