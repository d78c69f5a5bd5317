package ui

import "time"

// Icons (symbols)
const (
	IconFavorite     = "★"
	IconClose        = "×"
	IconMatchBullet  = "• "
	IconEllipsisMore = "…"
)

// Layout sizing (tree rows / columns)
const (
	SizeColumnWidth float32 = 90
	TypeColumnWidth float32 = 80
	StarColumnWidth float32 = 22

	WindowWidth  float32 = 960
	WindowHeight float32 = 640

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380
	SearchDialogWidth    float32 = 520
	SearchDialogHeight   float32 = 360
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Search
const (
	// SearchPreviewCount is the number of matches listed in the result dialog
	SearchPreviewCount = 10
)

// Tree
const (
	// rootUID is the synthetic parent of the tree's single visible root
	rootUID = ""
)
