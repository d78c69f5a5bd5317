package listing

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/file-explorer/internal/model"
)

// Favorites is the read-only view of the favorites set a listing needs.
type Favorites interface {
	Contains(path string) bool
}

type noFavorites struct{}

func (noFavorites) Contains(string) bool { return false }

// Engine lists directories one level at a time.
type Engine struct {
	fs  FileSystem
	log *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFileSystem replaces the host filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(e *Engine) {
		e.fs = fsys
	}
}

// WithLogger sets the logger used for skipped entries and failures.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// NewEngine creates an engine over the host filesystem unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		fs:  OSFileSystem{},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// List returns the ordered children of path. On failure the slice is nil;
// a listing is never partial.
func (e *Engine) List(path string, favorites Favorites) ([]model.Entry, error) {
	if favorites == nil {
		favorites = noFavorites{}
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return nil, classify(path, err)
	}

	info, err := e.fs.Stat(dir)
	if err != nil {
		return nil, e.fail(dir, classify(dir, err))
	}
	if !info.IsDir() {
		return nil, e.fail(dir, errNotDirectory(dir))
	}

	children, err := e.fs.ReadDir(dir)
	if err != nil {
		return nil, e.fail(dir, classify(dir, err))
	}

	dirs := make([]model.Entry, 0, len(children))
	files := make([]model.Entry, 0, len(children))
	for _, child := range children {
		entry, ok, err := e.entry(filepath.Join(dir, child.Name()), child.Name())
		if err != nil {
			return nil, e.fail(dir, err)
		}
		if !ok {
			continue
		}
		entry.Favorite = favorites.Contains(entry.Path)
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	slices.SortFunc(dirs, func(a, b model.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	slices.SortFunc(files, func(a, b model.Entry) int {
		if c := strings.Compare(extensionKey(a.Name), extensionKey(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	favDirs, otherDirs := partition(dirs)
	favFiles, otherFiles := partition(files)

	out := make([]model.Entry, 0, len(dirs)+len(files))
	out = append(out, favDirs...)
	out = append(out, favFiles...)
	out = append(out, otherDirs...)
	out = append(out, otherFiles...)

	e.log.Debug("listed directory",
		zap.String("path", dir),
		zap.Int("dirs", len(dirs)),
		zap.Int("files", len(files)),
		zap.Int("favorites", len(favDirs)+len(favFiles)),
	)
	return out, nil
}

// Describe builds the entry for a single path.
func (e *Engine) Describe(path string) (model.Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Entry{}, classify(path, err)
	}
	name := filepath.Base(abs)
	entry, ok, err := e.entry(abs, name)
	if err != nil {
		return model.Entry{}, err
	}
	if !ok {
		return model.Entry{}, classify(abs, fs.ErrNotExist)
	}
	return entry, nil
}

// HasChildren reports whether the directory at path has at least one child.
func (e *Engine) HasChildren(path string) (bool, error) {
	ok, err := e.fs.HasChildren(path)
	if err != nil {
		return false, classify(path, err)
	}
	return ok, nil
}

// entry classifies one child. ok is false when the child vanished between
// enumeration and the type check.
func (e *Engine) entry(path, name string) (model.Entry, bool, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return model.Entry{}, false, classify(path, err)
		}
		// Dangling symlinks show up as empty files.
		linfo, lerr := e.fs.Lstat(path)
		if lerr != nil {
			e.log.Debug("entry vanished during listing", zap.String("path", path))
			return model.Entry{}, false, nil
		}
		return model.Entry{
			Name:      name,
			Path:      path,
			Kind:      model.KindFile,
			Extension: extensionLabel(name),
			Modified:  linfo.ModTime(),
		}, true, nil
	}

	if info.IsDir() {
		return model.Entry{
			Name:        name,
			Path:        path,
			Kind:        model.KindDirectory,
			HasChildren: e.probeChildren(path),
			Modified:    info.ModTime(),
		}, true, nil
	}

	return model.Entry{
		Name:      name,
		Path:      path,
		Kind:      model.KindFile,
		Size:      info.Size(),
		Extension: extensionLabel(name),
		Modified:  info.ModTime(),
	}, true, nil
}

// probeChildren treats unreadable directories as non-empty so that expanding
// them reports the access error.
func (e *Engine) probeChildren(path string) bool {
	ok, err := e.fs.HasChildren(path)
	if err != nil {
		if isAccessDenied(err) {
			return true
		}
		e.log.Debug("children probe failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return ok
}

func (e *Engine) fail(path string, err error) error {
	e.log.Warn("listing failed", zap.String("path", path), zap.Error(err))
	return err
}

// partition splits entries by favorite flag, keeping order in both halves.
func partition(entries []model.Entry) (favorites, others []model.Entry) {
	for _, entry := range entries {
		if entry.Favorite {
			favorites = append(favorites, entry)
		} else {
			others = append(others, entry)
		}
	}
	return favorites, others
}
