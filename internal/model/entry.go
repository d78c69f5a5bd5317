package model

import "time"

// Kind classifies a listed filesystem child
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// UnknownExtension is the type label for files without an extension
const UnknownExtension = "Unknown"

// FolderLabel is the type label shown for directories
const FolderLabel = "Folder"

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Entry is one child of a listed directory. Entries are snapshots: they are
// rebuilt on every listing and never updated in place.
type Entry struct {
	Name        string    // base name
	Path        string    // absolute path, the entry identity
	Kind        Kind      // directory or file
	Size        int64     // size in bytes (files only)
	Extension   string    // upper-cased extension or UnknownExtension (files only)
	HasChildren bool      // directory has at least one child (directories only)
	Favorite    bool      // path was in the favorites set when listed
	Modified    time.Time // last modification time
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// TypeLabel returns the value for the "Type" column
func (e Entry) TypeLabel() string {
	if e.IsDir() {
		return FolderLabel
	}
	if e.Extension == "" {
		return UnknownExtension
	}
	return e.Extension
}
