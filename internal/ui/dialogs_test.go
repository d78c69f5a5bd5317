package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/file-explorer/internal/config"
	"github.com/ytget/file-explorer/internal/listing"
)

func TestSearchSummary(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("en")

	tests := []struct {
		name   string
		result listing.SearchResult
		want   string
	}{
		{"none", listing.SearchResult{}, "No matches found."},
		{"all shown", listing.SearchResult{Matches: []string{"/a", "/b"}, Total: 2}, "Found 2 matches for 'q'."},
		{"truncated", listing.SearchResult{Matches: []string{"/a"}, Total: 5}, "Found 5 matches for 'q'. " + IconEllipsisMore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := searchSummary(l, "q", tt.result); got != tt.want {
				t.Errorf("searchSummary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), w)

	saved := false
	sd.OnSaved = func() { saved = true }
	sd.loadCurrentSettings()

	dir := t.TempDir()
	sd.startDirEntry.SetText(dir)
	sd.searchLimitEntry.SetText("5000")
	sd.confirmCheck.SetChecked(false)
	sd.hiddenCheck.SetChecked(false)
	sd.languageSelect.SetSelected("Português")

	sd.onSave(true)

	if !saved {
		t.Error("OnSaved was not called")
	}
	if got := settings.GetStartDirectory(); got != dir {
		t.Errorf("start directory = %q, want %q", got, dir)
	}
	if got := settings.GetSearchLimit(); got != config.MaxSearchLimit {
		t.Errorf("search limit = %d, want clamped %d", got, config.MaxSearchLimit)
	}
	if settings.GetConfirmDelete() || settings.GetShowHidden() {
		t.Error("checkbox settings were not saved")
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("language = %q, want pt", got)
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()
	sd.searchLimitEntry.SetText("3")

	sd.onSave(false)

	if got := settings.GetSearchLimit(); got != config.DefaultSearchLimit {
		t.Errorf("search limit = %d, want default %d after cancel", got, config.DefaultSearchLimit)
	}
}
