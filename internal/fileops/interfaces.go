package fileops

import (
	"context"

	"github.com/ytget/file-explorer/internal/model"
)

// Operator defines the interface for the file operation service.
type Operator interface {
	SetUpdateCallback(func(*model.Batch))

	Cut(paths []string)
	Copy(paths []string)
	Clipboard() model.ClipboardState
	ClearClipboard()

	// Paste moves or copies the clipboard into dest. A file dest means its
	// parent directory.
	Paste(ctx context.Context, dest string) (*model.Batch, error)
	Delete(ctx context.Context, paths []string) (*model.Batch, error)

	Rename(path, newName string) (string, error)
	CreateFolder(parent, name string) (string, error)
}

var _ Operator = (*Service)(nil)
