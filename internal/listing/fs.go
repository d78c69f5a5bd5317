package listing

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// FileSystem is the read-only OS surface the engine needs.
type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
	// HasChildren reports whether the directory holds at least one entry
	// without enumerating all of them.
	HasChildren(path string) (bool, error)
}

// OSFileSystem reads the host filesystem.
type OSFileSystem struct{}

var _ FileSystem = OSFileSystem{}

func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }
func (OSFileSystem) Stat(path string) (fs.FileInfo, error)      { return os.Stat(path) }
func (OSFileSystem) Lstat(path string) (fs.FileInfo, error)     { return os.Lstat(path) }

func (OSFileSystem) HasChildren(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}
