package favorites

import (
	"path/filepath"
	"slices"
	"strings"
)

// Set is a set of absolute paths.
type Set map[string]struct{}

// NewSet builds a set from paths, cleaning each one.
func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		s[filepath.Clean(p)] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s Set) Contains(path string) bool {
	_, ok := s[filepath.Clean(path)]
	return ok
}

// Sorted returns the members in byte-wise order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Toggle returns a copy of set with path added if it was absent and removed
// if it was present. The input is not modified.
func Toggle(set Set, path string) Set {
	path = filepath.Clean(path)
	out := make(Set, len(set)+1)
	for p := range set {
		out[p] = struct{}{}
	}
	if _, ok := out[path]; ok {
		delete(out, path)
	} else {
		out[path] = struct{}{}
	}
	return out
}

// within reports whether path equals root or lies below it.
func within(path, root string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
