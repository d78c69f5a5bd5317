package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "file-explorer.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// AppIconResource returns the application icon, falling back to the theme
// folder icon when no logo file ships next to the binary
func AppIconResource() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.FolderOpenIcon()
}
