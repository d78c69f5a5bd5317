package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/file-explorer/internal/config"
	"github.com/ytget/file-explorer/internal/favorites"
	"github.com/ytget/file-explorer/internal/fileops"
	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/logging"
	"github.com/ytget/file-explorer/internal/model"
	"github.com/ytget/file-explorer/internal/platform"
)

// Options carries the collaborators of the explorer window
type Options struct {
	Engine    *listing.Engine
	Favorites *favorites.Store
	Operator  fileops.Operator
	Elevator  platform.Elevator

	// StartDir overrides the start directory from settings when set
	StartDir string
	// SearchLimit overrides the search limit from settings when positive
	SearchLimit int
}

// RootUI represents the main explorer window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	engine       *listing.Engine
	favorites    *favorites.Store
	ops          fileops.Operator
	elevator     platform.Elevator
	settings     *config.Settings
	localization *Localization
	log          *zap.Logger

	model *treeModel
	tree  *widget.Tree

	pathEntry   *widget.Entry
	statusLabel *widget.Label
	toolbar     *widget.Toolbar
	upBtn       *widget.Button
	homeBtn     *widget.Button
	refreshBtn  *widget.Button
	searchBtn   *widget.Button
	settingsBtn *widget.Button
	goBtn       *widget.Button

	selected         string
	elevationOffered bool
	searchLimit      int
}

// NewRootUI creates and initializes the explorer window
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		engine:       opts.Engine,
		favorites:    opts.Favorites,
		ops:          opts.Operator,
		elevator:     opts.Elevator,
		settings:     settings,
		localization: localization,
		log:          logging.Named("ui"),
		searchLimit:  opts.SearchLimit,
	}

	ui.model = newTreeModel(ui.engine, ui.favorites)
	ui.model.SetShowHidden(settings.GetShowHidden())

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(AppIconResource())

	// Set up callback for file operation progress
	ui.ops.SetUpdateCallback(ui.onBatchUpdate)

	// Favorites are saved after every toggle; this covers anything left over
	window.SetOnClosed(ui.saveFavorites)

	ui.setupUI()

	start := opts.StartDir
	if start == "" {
		start = settings.GetStartDirectory()
	}
	if !ui.Navigate(start) {
		ui.onHome()
	}

	ui.log.Info("explorer window ready",
		logging.Path(ui.model.Root()),
		logging.Int("favorites", ui.favorites.Len()),
	)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPath))
	ui.pathEntry.OnSubmitted = func(string) {
		ui.onGoClick()
	}
	ui.goBtn = widget.NewButton(ui.localization.GetText(KeyGo), ui.onGoClick)

	ui.upBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), ui.onUp)
	ui.homeBtn = widget.NewButtonWithIcon("", theme.HomeIcon(), ui.onHome)
	ui.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), ui.onRefresh)
	ui.searchBtn = widget.NewButtonWithIcon("", theme.SearchIcon(), ui.onShowSearch)
	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	navButtons := container.NewHBox(ui.upBtn, ui.homeBtn, ui.refreshBtn)
	rightButtons := container.NewHBox(ui.goBtn, ui.searchBtn, ui.settingsBtn)
	pathRow := container.NewBorder(nil, nil, navButtons, rightButtons, ui.pathEntry)

	ui.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderNewIcon(), ui.onNewFolderSelected),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentCutIcon(), ui.onCutSelected),
		widget.NewToolbarAction(theme.ContentCopyIcon(), ui.onCopySelected),
		widget.NewToolbarAction(theme.ContentPasteIcon(), ui.onPasteSelected),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), ui.onRenameSelected),
		widget.NewToolbarAction(theme.DeleteIcon(), ui.onDeleteSelected),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ConfirmIcon(), ui.onToggleFavoriteSelected),
		widget.NewToolbarAction(theme.FileIcon(), ui.onCopyPathSelected),
	)

	ui.tree = widget.NewTree(
		ui.model.ChildUIDs,
		ui.model.IsBranch,
		func(bool) fyne.CanvasObject { return ui.createEntryRow() },
		ui.updateEntryRow,
	)
	ui.tree.OnSelected = func(uid widget.TreeNodeID) {
		ui.selected = uid
		ui.statusLabel.SetText(uid)
	}
	ui.tree.OnUnselected = func(widget.TreeNodeID) {
		ui.selected = ""
	}
	ui.tree.OnBranchOpened = ui.onBranchOpened

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	header := ui.createColumnHeader()
	top := container.NewVBox(pathRow, ui.toolbar, header, widget.NewSeparator())

	content := container.NewBorder(
		top,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.tree,        // center
	)
	ui.window.SetContent(content)
}

// createColumnHeader builds the Name/Size/Type header above the tree
func (ui *RootUI) createColumnHeader() fyne.CanvasObject {
	name := widget.NewLabelWithStyle(ui.localization.GetText(KeyColumnName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	size := widget.NewLabelWithStyle(ui.localization.GetText(KeyColumnSize), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	kind := widget.NewLabelWithStyle(ui.localization.GetText(KeyColumnType), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	// Star and icon columns stay blank so the labels line up with the rows
	left := fixedWidth(StarColumnWidth+theme.IconInlineSize()+theme.Padding(), widget.NewLabel(""))
	right := container.NewHBox(
		fixedWidth(SizeColumnWidth, size),
		fixedWidth(TypeColumnWidth, kind),
	)
	return container.NewBorder(nil, nil, left, right, name)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	newFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyNewFolder), ui.onNewFolderSelected)
	searchItem := fyne.NewMenuItem(ui.localization.GetText(KeySearch), ui.onShowSearch)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	editMenu := fyne.NewMenu(ui.localization.GetText(KeyEdit),
		fyne.NewMenuItem(ui.localization.GetText(KeyCut), ui.onCutSelected),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopy), ui.onCopySelected),
		fyne.NewMenuItem(ui.localization.GetText(KeyPasteHere), ui.onPasteSelected),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyRename), ui.onRenameSelected),
		fyne.NewMenuItem(ui.localization.GetText(KeyDelete), ui.onDeleteSelected),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyCopyPath), ui.onCopyPathSelected),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), newFolderItem, searchItem, settingsItem),
		editMenu,
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPath))
	ui.goBtn.SetText(ui.localization.GetText(KeyGo))
	ui.setupUI()
	ui.Navigate(ui.model.Root())
}

// Navigate makes path the tree root and reports whether it succeeded
func (ui *RootUI) Navigate(path string) bool {
	abs, err := platform.ExpandPath(path)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return false
	}

	if err := ui.model.SetRoot(abs); err != nil {
		ui.log.Warn("navigation failed", logging.Path(abs), logging.Err(err))
		ui.showListingError(abs, err)
		return false
	}

	ui.selected = ""
	ui.pathEntry.SetText(ui.model.Root())
	ui.statusLabel.SetText(ui.model.Root())
	ui.tree.UnselectAll()
	ui.tree.Refresh()
	ui.tree.OpenBranch(ui.model.Root())
	return true
}

// onGoClick navigates to the typed path
func (ui *RootUI) onGoClick() {
	path := strings.TrimSpace(ui.pathEntry.Text)
	if path == "" {
		return
	}
	ui.Navigate(path)
}

// onUp navigates to the parent of the current root
func (ui *RootUI) onUp() {
	root := ui.model.Root()
	parent := filepath.Dir(root)
	if root == "" || parent == root {
		return
	}
	ui.Navigate(parent)
}

// onHome navigates to the user's home directory
func (ui *RootUI) onHome() {
	home, err := platform.HomeDir()
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.Navigate(home)
}

// onRefresh reloads every loaded level
func (ui *RootUI) onRefresh() {
	ui.Navigate(ui.model.Root())
}

// onBranchOpened loads a directory level the first time it is expanded
func (ui *RootUI) onBranchOpened(uid widget.TreeNodeID) {
	if uid == rootUID || ui.model.Loaded(uid) {
		return
	}
	if err := ui.model.Load(uid); err != nil {
		ui.tree.CloseBranch(uid)
		ui.showListingError(uid, err)
		return
	}
	ui.tree.Refresh()
}

// reload re-lists a directory that is already in the tree and refreshes it
func (ui *RootUI) reload(dir string) {
	if dir == "" {
		return
	}
	if !ui.model.Loaded(dir) {
		if dir == ui.model.Root() || strings.HasPrefix(ui.model.Root(), dir) {
			ui.Navigate(ui.model.Root())
		}
		return
	}
	if err := ui.model.Load(dir); err != nil {
		ui.showListingError(dir, err)
		return
	}
	ui.tree.Refresh()
}

// createEntryRow creates a tree row template
func (ui *RootUI) createEntryRow() fyne.CanvasObject {
	return NewEntryRow(rowHandlers{
		onTap: func(uid string) {
			ui.tree.Select(uid)
		},
		onDoubleTap: ui.onDoubleTap,
		onSecondary: ui.showContextMenu,
	})
}

// updateEntryRow binds a tree row to its entry
func (ui *RootUI) updateEntryRow(uid widget.TreeNodeID, _ bool, obj fyne.CanvasObject) {
	row, ok := obj.(*EntryRow)
	if !ok {
		return
	}
	entry, ok := ui.model.Entry(uid)
	if !ok {
		return
	}
	row.SetEntry(uid, entry, ui.localization.GetText(KeyFolder))
}

// onDoubleTap refreshes and expands directories and opens files
func (ui *RootUI) onDoubleTap(uid string) {
	entry, ok := ui.model.Entry(uid)
	if !ok {
		return
	}
	ui.tree.Select(uid)

	if !entry.IsDir() {
		ui.onOpenFile(entry.Path)
		return
	}

	if err := ui.model.Load(uid); err != nil {
		ui.showListingError(uid, err)
		return
	}
	ui.tree.Refresh()
	ui.tree.OpenBranch(uid)
}

// showListingError reports a failed listing and offers elevation on access errors
func (ui *RootUI) showListingError(path string, err error) {
	switch {
	case errors.Is(err, listing.ErrAccessDenied):
		ui.onAccessDenied(path)
	case errors.Is(err, listing.ErrNotFound):
		dialog.ShowError(errors.New(ui.localization.GetText(KeyNotFound)+": "+path), ui.window)
		if parent := ui.model.ParentOf(path); parent != "" {
			ui.reload(parent)
		}
	case errors.Is(err, listing.ErrNotDirectory):
		dialog.ShowError(errors.New(ui.localization.GetText(KeyNotDirectory)+": "+path), ui.window)
	default:
		dialog.ShowError(err, ui.window)
	}
}

// onAccessDenied offers a single elevated relaunch per session. The elevated
// instance opens at path.
func (ui *RootUI) onAccessDenied(path string) {
	title := ui.localization.GetText(KeyAccessDenied)
	if ui.elevator == nil || ui.elevator.IsElevated() || ui.elevationOffered {
		dialog.ShowInformation(title, ui.localization.GetText(KeyAccessDeniedMsg), ui.window)
		return
	}
	ui.elevationOffered = true

	dialog.ShowConfirm(title, ui.localization.GetText(KeyElevatePrompt), func(ok bool) {
		if !ok {
			return
		}
		err := ui.elevator.RequestElevation(path)
		if errors.Is(err, platform.ErrElevationUnsupported) {
			dialog.ShowInformation(title, ui.localization.GetText(KeyAccessDeniedMsg), ui.window)
			return
		}
		if err != nil {
			ui.log.Error("elevation failed", logging.Err(err))
			dialog.ShowError(errors.New(ui.localization.GetText(KeyElevateFailed)), ui.window)
			return
		}
		// The elevated instance takes over.
		ui.saveFavorites()
		ui.app.Quit()
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.OnSaved = ui.onSettingsSaved
	sd.Show()
}

// onSettingsSaved applies settings that affect the open window
func (ui *RootUI) onSettingsSaved() {
	ui.model.SetShowHidden(ui.settings.GetShowHidden())
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
		return
	}
	ui.Navigate(ui.model.Root())
}

// onShowSearch opens the search dialog
func (ui *RootUI) onShowSearch() {
	limit := ui.searchLimit
	if limit <= 0 {
		limit = ui.settings.GetSearchLimit()
	}
	sd := NewSearchDialog(ui.engine, ui.localization, ui.window, ui.settings.GetSearchRoot(), limit)
	sd.OnMatchSelected = ui.revealInTree
	sd.Show()
}

// revealInTree navigates to the directory holding path and selects it
func (ui *RootUI) revealInTree(path string) {
	ui.Navigate(filepath.Dir(path))
	if _, ok := ui.model.Entry(path); ok {
		ui.tree.Select(path)
		ui.tree.ScrollTo(path)
	}
}

// onBatchUpdate reports file operation progress in the status bar
func (ui *RootUI) onBatchUpdate(batch *model.Batch) {
	status := fmt.Sprintf("%s %s %.0f%%", batch.Kind, batch.Status, batch.Progress())
	fyne.Do(func() {
		ui.statusLabel.SetText(status)
	})
}

// showToast shows a short in-app notification in the top-right corner
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	toast = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toast.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}
