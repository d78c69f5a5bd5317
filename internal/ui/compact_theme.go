package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameFavorite colors the favorite star in tree rows
const ColorNameFavorite fyne.ThemeColorName = "favorite"

// CompactTheme tightens spacing so more tree rows fit on screen and adds
// the explorer's own colors on top of the default theme
type CompactTheme struct {
	base fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

// compactSizes replaces default sizes; anything missing falls through to the base theme
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    5,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       10,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  14,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInlineIcon:      16,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case ColorNameFavorite:
		return color.RGBA{R: 245, G: 166, B: 35, A: 255}
	case theme.ColorNameError:
		// access errors and failed batches
		return color.RGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNameSelection:
		if dark {
			return color.RGBA{R: 38, G: 79, B: 120, A: 255}
		}
		return color.RGBA{R: 204, G: 228, B: 247, A: 255}
	case theme.ColorNameHover:
		if dark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 20}
		}
		return color.RGBA{R: 0, G: 0, B: 0, A: 15}
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.base.Size(name)
}
