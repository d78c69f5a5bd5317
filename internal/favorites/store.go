package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrPersistence marks a favorites file that could not be read or written.
// Callers keep working with the in-memory set.
var ErrPersistence = errors.New("favorites: persistence failed")

// Store is a mutex-guarded favorites set bound to a file.
type Store struct {
	mu   sync.RWMutex
	file string
	set  Set
}

// NewStore creates an empty store that saves to file.
func NewStore(file string) *Store {
	return &Store{file: file, set: make(Set)}
}

// Load reads the favorites file. A missing file yields an empty store and no
// error. An unreadable or malformed file yields an empty store and an error
// wrapping ErrPersistence.
func Load(file string) (*Store, error) {
	s := NewStore(file)

	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("%w: read %s: %w", ErrPersistence, file, err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return s, fmt.Errorf("%w: decode %s: %w", ErrPersistence, file, err)
	}
	s.set = NewSet(paths...)
	return s, nil
}

// File returns the path the store saves to.
func (s *Store) File() string {
	return s.file
}

// Contains reports whether path is a favorite.
func (s *Store) Contains(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(path)
}

// Toggle flips membership of path and returns the new membership.
func (s *Store) Toggle(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = Toggle(s.set, path)
	return s.set.Contains(path)
}

// Paths returns the favorites in sorted order.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Sorted()
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.set)
}

// Snapshot returns a copy of the current set.
func (s *Store) Snapshot() Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NewSet(s.set.Sorted()...)
}

// Rewrite re-homes oldPath and every favorite below it under newPath.
// It reports whether anything changed.
func (s *Store) Rewrite(oldPath, newPath string) bool {
	oldPath, newPath = filepath.Clean(oldPath), filepath.Clean(newPath)
	if oldPath == newPath {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var moved []string
	for p := range s.set {
		if within(p, oldPath) {
			moved = append(moved, p)
		}
	}
	for _, p := range moved {
		delete(s.set, p)
	}
	for _, p := range moved {
		rel, err := filepath.Rel(oldPath, p)
		if err != nil {
			continue
		}
		s.set[filepath.Join(newPath, rel)] = struct{}{}
	}
	return len(moved) > 0
}

// Forget drops path and every favorite below it.
func (s *Store) Forget(path string) bool {
	path = filepath.Clean(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for p := range s.set {
		if within(p, path) {
			delete(s.set, p)
			changed = true
		}
	}
	return changed
}

// Save overwrites the favorites file with the current set. The write goes
// through a temporary file in the same directory followed by a rename.
func (s *Store) Save() error {
	paths := s.Paths()

	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("%w: temp file: %w", ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrPersistence, tmpName, err)
	}
	if err := os.Rename(tmpName, s.file); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrPersistence, s.file, err)
	}
	return nil
}
