package listing

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	ErrAccessDenied = errors.New("listing: access denied")
	ErrNotFound     = errors.New("listing: not found")
	ErrNotDirectory = errors.New("listing: not a directory")
)

// classify maps an OS error onto the listing error taxonomy, keeping the
// original error in the chain.
func classify(path string, err error) error {
	switch {
	case err == nil:
		return nil
	case isAccessDenied(err):
		return fmt.Errorf("%w: %s: %w", ErrAccessDenied, path, err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	default:
		return fmt.Errorf("listing %s: %w", path, err)
	}
}

func isAccessDenied(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, ErrAccessDenied)
}

func errNotDirectory(path string) error {
	return fmt.Errorf("%w: %s", ErrNotDirectory, path)
}
