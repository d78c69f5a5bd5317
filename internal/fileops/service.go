package fileops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/file-explorer/internal/logging"
	"github.com/ytget/file-explorer/internal/model"
)

// Service handles file operations and owns the explorer clipboard
type Service struct {
	mu        sync.Mutex
	clipboard model.ClipboardState
	onUpdate  func(*model.Batch) // callback for UI updates
}

// NewService creates a new file operation service
func NewService() *Service {
	return &Service{}
}

// SetUpdateCallback sets the callback function for batch updates
func (s *Service) SetUpdateCallback(callback func(*model.Batch)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Cut replaces the clipboard with paths to be moved on paste
func (s *Service) Cut(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = model.NewCutState(paths)
}

// Copy replaces the clipboard with paths to be copied on paste
func (s *Service) Copy(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = model.NewCopyState(paths)
}

// Clipboard returns a copy of the clipboard state
func (s *Service) Clipboard() model.ClipboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.clipboard
	state.Paths = append([]string(nil), s.clipboard.Paths...)
	return state
}

// ClearClipboard empties the clipboard
func (s *Service) ClearClipboard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = model.ClipboardState{}
}

// Paste moves or copies every clipboard path into dest. The clipboard is
// cleared only when the whole batch succeeds.
func (s *Service) Paste(ctx context.Context, dest string) (*model.Batch, error) {
	clip := s.Clipboard()
	if clip.IsEmpty() {
		return nil, &OpError{Op: "paste", Path: dest, Err: ErrEmptyClipboard}
	}

	dir, err := destinationDir(dest)
	if err != nil {
		return nil, &OpError{Op: "paste", Path: dest, Err: err}
	}

	kind, transfer := model.BatchCopy, copyPath
	if clip.Mode == model.ClipboardCut {
		kind, transfer = model.BatchMove, movePath
	}

	batch := model.NewBatch(generateBatchID(), kind)
	for _, src := range clip.Paths {
		batch.AddItem(src, filepath.Join(dir, filepath.Base(src)))
	}

	err = s.run(ctx, batch, func(item *model.BatchItem) error {
		return transfer(item.Source, item.Target)
	})
	if err != nil {
		return batch, err
	}

	s.ClearClipboard()
	return batch, nil
}

// Delete removes files and directory trees
func (s *Service) Delete(ctx context.Context, paths []string) (*model.Batch, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	batch := model.NewBatch(generateBatchID(), model.BatchDelete)
	for _, p := range paths {
		batch.AddItem(p, "")
	}

	err := s.run(ctx, batch, func(item *model.BatchItem) error {
		return removePath(item.Source)
	})
	return batch, err
}

// Rename renames path within its directory and returns the new path
func (s *Service) Rename(path, newName string) (string, error) {
	if !validName(newName) {
		return "", &OpError{Op: "rename", Path: path, Err: fmt.Errorf("%w: %q", ErrInvalidName, newName)}
	}
	srcInfo, err := os.Lstat(path)
	if err != nil {
		return "", &OpError{Op: "rename", Path: path, Err: err}
	}

	target := filepath.Join(filepath.Dir(path), newName)
	if target == filepath.Clean(path) {
		return target, nil
	}
	// A case-only rename on a case-insensitive filesystem finds the source itself.
	if info, err := os.Lstat(target); err == nil && !os.SameFile(srcInfo, info) {
		return "", &OpError{Op: "rename", Path: path, Err: ErrTargetExists}
	}
	if err := os.Rename(path, target); err != nil {
		return "", &OpError{Op: "rename", Path: path, Err: err}
	}

	logging.L().Info("renamed", logging.Path(path), logging.String("target", target))
	return target, nil
}

// CreateFolder makes a new directory under parent and returns its path
func (s *Service) CreateFolder(parent, name string) (string, error) {
	if !validName(name) {
		return "", &OpError{Op: "mkdir", Path: parent, Err: fmt.Errorf("%w: %q", ErrInvalidName, name)}
	}

	target := filepath.Join(parent, name)
	if err := os.Mkdir(target, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			err = ErrTargetExists
		}
		return "", &OpError{Op: "mkdir", Path: target, Err: err}
	}

	logging.L().Info("folder created", logging.Path(target))
	return target, nil
}

// run executes batch items in order and stops at the first failure
func (s *Service) run(ctx context.Context, batch *model.Batch, do func(*model.BatchItem) error) error {
	ctx = logging.WithOperationID(ctx, batch.ID)
	log := logging.WithContext(ctx)
	log.Info("batch started", logging.String("kind", string(batch.Kind)), logging.Int("items", len(batch.Items)))

	for _, item := range batch.Items {
		if err := ctx.Err(); err != nil {
			opErr := &OpError{Op: string(batch.Kind), Path: item.Source, Err: err}
			batch.Fail(item, opErr)
			s.notifyUpdate(batch)
			log.Warn("batch cancelled", logging.Path(item.Source))
			return opErr
		}

		batch.MarkRunning(item)
		s.notifyUpdate(batch)

		if err := do(item); err != nil {
			opErr := &OpError{Op: string(batch.Kind), Path: item.Source, Err: err}
			batch.Fail(item, opErr)
			s.notifyUpdate(batch)
			log.Error("batch item failed",
				logging.Path(item.Source),
				logging.Err(err),
				logging.Int("skipped", len(batch.Skipped())),
			)
			return opErr
		}

		batch.MarkCompleted(item)
		log.Debug("batch item done", logging.Path(item.Source), logging.String("target", item.Target))
	}

	batch.Finish()
	s.notifyUpdate(batch)
	log.Info("batch finished", logging.Duration("elapsed", batch.FinishedAt.Sub(batch.StartedAt)))
	return nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(batch *model.Batch) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()
	if callback != nil {
		callback(batch)
	}
}

// destinationDir resolves the paste destination to a directory
func destinationDir(dest string) (string, error) {
	info, err := os.Stat(dest)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return dest, nil
	}
	return filepath.Dir(dest), nil
}

// generateBatchID generates a unique batch ID
func generateBatchID() string {
	return "op-" + uuid.NewString()
}
