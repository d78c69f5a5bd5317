package fileops

import (
	"errors"
	"fmt"
)

var (
	ErrTargetExists   = errors.New("target already exists")
	ErrIntoItself     = errors.New("cannot place a directory inside itself")
	ErrEmptyClipboard = errors.New("clipboard is empty")
	ErrInvalidName    = errors.New("invalid name")
)

// OpError records a failed file operation and the path it failed on.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
