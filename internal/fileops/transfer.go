package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cp "github.com/otiai10/copy"
)

var copyOptions = cp.Options{
	OnSymlink: func(string) cp.SymlinkAction {
		return cp.Shallow
	},
	PreserveTimes: true,
}

// checkTransfer validates a move or copy of src onto target.
func checkTransfer(src, target string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(target); err == nil {
		return ErrTargetExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if info.IsDir() && within(target, src) {
		return ErrIntoItself
	}
	return nil
}

func movePath(src, target string) error {
	if err := checkTransfer(src, target); err != nil {
		return err
	}
	err := os.Rename(src, target)
	if err == nil || !isCrossDevice(err) {
		return err
	}
	if err := cp.Copy(src, target, copyOptions); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

func copyPath(src, target string) error {
	if err := checkTransfer(src, target); err != nil {
		return err
	}
	return cp.Copy(src, target, copyOptions)
}

func removePath(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// within reports whether path equals root or lies below it.
func within(path, root string) bool {
	path, root = filepath.Clean(path), filepath.Clean(root)
	if path == root {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// validName rejects names that would escape the parent directory.
func validName(name string) bool {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/`+string(filepath.Separator))
}
