package ui

import (
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-explorer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// OnSaved runs after the settings were written
	OnSaved func()

	// UI components
	startDirEntry    *widget.Entry
	searchRootEntry  *widget.Entry
	searchLimitEntry *widget.Entry
	confirmCheck     *widget.Check
	hiddenCheck      *widget.Check
	languageSelect   *widget.Select

	languageCodes map[string]string // display label -> code
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.startDirEntry = widget.NewEntry()
	sd.startDirEntry.SetPlaceHolder(t(KeyEnterPath))
	startDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(t(KeyBrowse), func() { sd.browseInto(sd.startDirEntry) }),
		sd.startDirEntry)

	sd.searchRootEntry = widget.NewEntry()
	sd.searchRootEntry.SetPlaceHolder(t(KeyEnterPath))
	searchRootRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(t(KeyBrowse), func() { sd.browseInto(sd.searchRootEntry) }),
		sd.searchRootEntry)

	sd.searchLimitEntry = widget.NewEntry()
	sd.searchLimitEntry.SetPlaceHolder(strconv.Itoa(config.MinSearchLimit) + "-" + strconv.Itoa(config.MaxSearchLimit))
	sd.searchLimitEntry.Validator = func(s string) error {
		_, err := strconv.Atoi(strings.TrimSpace(s))
		return err
	}

	sd.confirmCheck = widget.NewCheck(t(KeyAskBeforeDelete), nil)
	sd.hiddenCheck = widget.NewCheck(t(KeyShowHidden), nil)

	// Language selection shows names and stores codes
	sd.languageCodes = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	slices.Sort(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyStartDirectory)),
		startDirRow,

		widget.NewLabel(t(KeySearchRoot)),
		searchRootRow,

		widget.NewLabel(t(KeySearchLimit)),
		sd.searchLimitEntry,

		widget.NewSeparator(),
		sd.confirmCheck,
		sd.hiddenCheck,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.startDirEntry.SetText(sd.settings.GetStartDirectory())
	sd.searchRootEntry.SetText(sd.settings.GetSearchRoot())
	sd.searchLimitEntry.SetText(strconv.Itoa(sd.settings.GetSearchLimit()))
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDelete())
	sd.hiddenCheck.SetChecked(sd.settings.GetShowHidden())

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

// browseInto fills target with a folder picked in the native dialog
func (sd *SettingsDialog) browseInto(target *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		target.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.startDirEntry.Text); dir != "" {
		sd.settings.SetStartDirectory(dir)
	}
	if dir := strings.TrimSpace(sd.searchRootEntry.Text); dir != "" {
		sd.settings.SetSearchRoot(dir)
	}

	// Out-of-range limits are clamped by the setter; garbage is ignored
	if limit, err := strconv.Atoi(strings.TrimSpace(sd.searchLimitEntry.Text)); err == nil {
		sd.settings.SetSearchLimit(limit)
	}

	sd.settings.SetConfirmDelete(sd.confirmCheck.Checked)
	sd.settings.SetShowHidden(sd.hiddenCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.OnSaved != nil {
		sd.OnSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
