package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/file-explorer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyStartDir      = "start_directory"
	KeySearchRoot    = "search_root"
	KeySearchLimit   = "search_result_limit"
	KeyLanguage      = "app_language"
	KeyConfirmDelete = "confirm_delete"
	KeyShowHidden    = "show_hidden_files"
)

// Default values
const (
	DefaultSearchLimit   = 10
	MinSearchLimit       = 1
	MaxSearchLimit       = 1000
	DefaultLanguage      = "system"
	DefaultConfirmDelete = true
	DefaultShowHidden    = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStartDirectory returns the directory the explorer opens at
func (s *Settings) GetStartDirectory() string {
	dir := s.app.Preferences().String(KeyStartDir)
	if dir == "" {
		return defaultDirectory()
	}
	return dir
}

// SetStartDirectory sets the start directory
func (s *Settings) SetStartDirectory(dir string) {
	s.app.Preferences().SetString(KeyStartDir, strings.TrimSpace(dir))
}

// GetSearchRoot returns the directory searches start from
func (s *Settings) GetSearchRoot() string {
	dir := s.app.Preferences().String(KeySearchRoot)
	if dir == "" {
		return defaultDirectory()
	}
	return dir
}

// SetSearchRoot sets the search root directory
func (s *Settings) SetSearchRoot(dir string) {
	s.app.Preferences().SetString(KeySearchRoot, strings.TrimSpace(dir))
}

// GetSearchLimit returns how many search matches are shown
func (s *Settings) GetSearchLimit() int {
	value := s.app.Preferences().Int(KeySearchLimit)
	if value <= 0 {
		s.SetSearchLimit(DefaultSearchLimit)
		return DefaultSearchLimit
	}
	return value
}

// SetSearchLimit sets the number of shown search matches
func (s *Settings) SetSearchLimit(limit int) {
	s.app.Preferences().SetInt(KeySearchLimit, clampSearchLimit(limit))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetConfirmDelete returns whether deletes ask for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deletes ask for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetShowHidden returns whether dotfiles are shown in the tree
func (s *Settings) GetShowHidden() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowHidden, DefaultShowHidden)
}

// SetShowHidden sets whether dotfiles are shown in the tree
func (s *Settings) SetShowHidden(show bool) {
	s.app.Preferences().SetBool(KeyShowHidden, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampSearchLimit(limit int) int {
	if limit < MinSearchLimit {
		return MinSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

func defaultDirectory() string {
	home, err := platform.HomeDir()
	if err != nil {
		return "."
	}
	return home
}
