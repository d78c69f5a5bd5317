package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-explorer/internal/fileops"
	"github.com/ytget/file-explorer/internal/logging"
	"github.com/ytget/file-explorer/internal/model"
	"github.com/ytget/file-explorer/internal/platform"
)

// showContextMenu pops up the per-entry menu at pos
func (ui *RootUI) showContextMenu(uid string, pos fyne.Position) {
	entry, ok := ui.model.Entry(uid)
	if !ok {
		return
	}
	ui.tree.Select(uid)

	favoriteKey := KeyAddFavorite
	if ui.favorites.Contains(entry.Path) {
		favoriteKey = KeyRemoveFavorite
	}

	items := []*fyne.MenuItem{
		fyne.NewMenuItem(ui.localization.GetText(KeyOpen), func() { ui.onDoubleTap(uid) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyReveal), func() { ui.onReveal(entry.Path) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyCut), func() { ui.ops.Cut([]string{entry.Path}) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopy), func() { ui.ops.Copy([]string{entry.Path}) }),
	}
	pasteItem := fyne.NewMenuItem(ui.localization.GetText(KeyPasteHere), func() { ui.onPaste(entry.Path) })
	pasteItem.Disabled = ui.ops.Clipboard().IsEmpty()

	items = append(items,
		pasteItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyRename), func() { ui.onRename(entry) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyDelete), func() { ui.onDelete(entry) }),
	)
	if entry.IsDir() {
		items = append(items, fyne.NewMenuItem(ui.localization.GetText(KeyNewFolder), func() { ui.onNewFolder(entry.Path) }))
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(favoriteKey), func() { ui.onToggleFavorite(entry.Path) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopyPath), func() { ui.onCopyPath(entry.Path) }),
	)

	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), ui.window.Canvas(), pos)
}

// selectedEntry returns the selected entry, telling the user when there is none
func (ui *RootUI) selectedEntry() (model.Entry, bool) {
	entry, ok := ui.model.Entry(ui.selected)
	if !ok {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNothingSelected))
	}
	return entry, ok
}

// Toolbar and menu handlers act on the current selection

func (ui *RootUI) onCutSelected() {
	if entry, ok := ui.selectedEntry(); ok {
		ui.ops.Cut([]string{entry.Path})
	}
}

func (ui *RootUI) onCopySelected() {
	if entry, ok := ui.selectedEntry(); ok {
		ui.ops.Copy([]string{entry.Path})
	}
}

func (ui *RootUI) onPasteSelected() {
	dest := ui.model.Root()
	if entry, ok := ui.model.Entry(ui.selected); ok {
		dest = entry.Path
	}
	ui.onPaste(dest)
}

func (ui *RootUI) onRenameSelected() {
	if entry, ok := ui.selectedEntry(); ok {
		ui.onRename(entry)
	}
}

func (ui *RootUI) onDeleteSelected() {
	if entry, ok := ui.selectedEntry(); ok {
		ui.onDelete(entry)
	}
}

func (ui *RootUI) onNewFolderSelected() {
	parent := ui.model.Root()
	if entry, ok := ui.model.Entry(ui.selected); ok {
		parent = entry.Path
		if !entry.IsDir() {
			parent = filepath.Dir(entry.Path)
		}
	}
	ui.onNewFolder(parent)
}

func (ui *RootUI) onToggleFavoriteSelected() {
	if entry, ok := ui.selectedEntry(); ok {
		ui.onToggleFavorite(entry.Path)
	}
}

func (ui *RootUI) onCopyPathSelected() {
	if entry, ok := ui.selectedEntry(); ok {
		ui.onCopyPath(entry.Path)
	}
}

// onOpenFile opens a file with the system default application
func (ui *RootUI) onOpenFile(path string) {
	if err := platform.OpenWithDefaultApp(path); err != nil {
		ui.log.Warn("open failed", logging.Path(path), logging.Err(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onReveal shows path in the platform file manager
func (ui *RootUI) onReveal(path string) {
	if err := platform.RevealInFileManager(path); err != nil {
		ui.log.Warn("reveal failed", logging.Path(path), logging.Err(err))
		dialog.ShowError(err, ui.window)
	}
}

// onPaste transfers the clipboard into dest in the background
func (ui *RootUI) onPaste(dest string) {
	clip := ui.ops.Clipboard()
	if clip.IsEmpty() {
		ui.showToast(ui.localization.GetText(KeyClipboardEmpty))
		return
	}

	go func() {
		batch, err := ui.ops.Paste(context.Background(), dest)
		fyne.Do(func() {
			if batch != nil && batch.Kind == model.BatchMove {
				for _, item := range batch.Completed() {
					ui.favorites.Rewrite(item.Source, item.Target)
				}
				ui.saveFavorites()
			}
			ui.reportBatch(batch, err, KeyPasteCompleted)

			target := dest
			if entry, ok := ui.model.Entry(dest); ok && !entry.IsDir() {
				target = filepath.Dir(dest)
			}
			if clip.Mode == model.ClipboardCut {
				for _, src := range clip.Paths {
					ui.reload(filepath.Dir(src))
				}
			}
			ui.reload(target)
		})
	}()
}

// onDelete removes an entry after an optional confirmation
func (ui *RootUI) onDelete(entry model.Entry) {
	run := func() {
		go func() {
			batch, err := ui.ops.Delete(context.Background(), []string{entry.Path})
			fyne.Do(func() {
				if batch != nil {
					for _, item := range batch.Completed() {
						ui.favorites.Forget(item.Source)
					}
					ui.saveFavorites()
				}
				ui.reportBatch(batch, err, KeyDeleteCompleted)
				if entry.Path == ui.model.Root() {
					ui.onUp()
					return
				}
				ui.reload(ui.model.ParentOf(entry.Path))
			})
		}()
	}

	if !ui.settings.GetConfirmDelete() {
		run()
		return
	}
	msg := fmt.Sprintf(ui.localization.GetText(KeyConfirmDeleteMsg), entry.Name)
	dialog.ShowConfirm(ui.localization.GetText(KeyConfirmDelete), msg, func(ok bool) {
		if ok {
			run()
		}
	}, ui.window)
}

// reportBatch shows the outcome of a paste or delete batch
func (ui *RootUI) reportBatch(batch *model.Batch, err error, doneKey string) {
	if err == nil {
		ui.showToast(ui.localization.GetText(doneKey))
		return
	}
	if errors.Is(err, fileops.ErrEmptyClipboard) {
		ui.showToast(ui.localization.GetText(KeyClipboardEmpty))
		return
	}

	msg := ui.localization.GetText(KeyOperationFailed) + ": " + err.Error()
	if batch != nil {
		if skipped := len(batch.Skipped()); skipped > 0 {
			msg += "\n" + fmt.Sprintf(ui.localization.GetText(KeyItemsSkipped), skipped)
		}
	}
	dialog.ShowError(errors.New(msg), ui.window)
}

// onRename asks for a new name and renames the entry in place
func (ui *RootUI) onRename(entry model.Entry) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(entry.Name)

	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyName), nameEntry),
	}
	dialog.ShowForm(ui.localization.GetText(KeyRename), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" || name == entry.Name {
			return
		}

		target, err := ui.ops.Rename(entry.Path, name)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if ui.favorites.Rewrite(entry.Path, target) {
			ui.saveFavorites()
		}
		if entry.Path == ui.model.Root() {
			ui.Navigate(target)
			return
		}
		ui.reload(ui.model.ParentOf(entry.Path))
	}, ui.window)
}

// onNewFolder asks for a name and creates a folder inside parent
func (ui *RootUI) onNewFolder(parent string) {
	nameEntry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem(ui.localization.GetText(KeyFolderName), nameEntry),
	}
	dialog.ShowForm(ui.localization.GetText(KeyNewFolder), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel), items, func(ok bool) {
		if !ok {
			return
		}
		created, err := ui.ops.CreateFolder(parent, strings.TrimSpace(nameEntry.Text))
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.reload(parent)
		ui.tree.OpenBranch(parent)
		ui.tree.Select(created)
	}, ui.window)
}

// onToggleFavorite flips favorite membership and re-sorts the parent level
func (ui *RootUI) onToggleFavorite(path string) {
	ui.favorites.Toggle(path)
	ui.saveFavorites()

	parent := ui.model.ParentOf(path)
	if parent == "" {
		// The root has no visible parent level; re-read it for the star
		ui.Navigate(path)
		return
	}
	ui.reload(parent)
}

// onCopyPath puts the absolute path on the system clipboard
func (ui *RootUI) onCopyPath(path string) {
	ui.app.Clipboard().SetContent(path)
	ui.showToast(ui.localization.GetText(KeyPathCopied))
}

// saveFavorites persists favorites, reporting failures without losing the in-memory set
func (ui *RootUI) saveFavorites() {
	if err := ui.favorites.Save(); err != nil {
		ui.log.Error("saving favorites failed", logging.String("file", ui.favorites.File()), logging.Err(err))
		ui.showToast(ui.localization.GetText(KeyFavoritesSaveError))
	}
}
