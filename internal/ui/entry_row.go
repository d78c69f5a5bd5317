package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/model"
)

// rowHandlers are the callbacks an EntryRow reports pointer events to
type rowHandlers struct {
	onTap       func(uid string)
	onDoubleTap func(uid string)
	onSecondary func(uid string, pos fyne.Position)
}

// EntryRow renders one tree node: favorite star, icon, name, size and type
type EntryRow struct {
	widget.BaseWidget

	uid      string
	handlers rowHandlers

	star      *canvas.Text
	icon      *widget.Icon
	nameLabel *widget.Label
	sizeLabel *widget.Label
	typeLabel *widget.Label
}

// NewEntryRow creates an empty row; the tree fills it through SetEntry
func NewEntryRow(handlers rowHandlers) *EntryRow {
	r := &EntryRow{handlers: handlers}
	r.ExtendBaseWidget(r)

	r.star = canvas.NewText("", theme.Color(ColorNameFavorite))
	r.star.TextStyle = fyne.TextStyle{Bold: true}
	r.icon = widget.NewIcon(theme.FileIcon())

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis

	r.sizeLabel = widget.NewLabel("")
	r.sizeLabel.Alignment = fyne.TextAlignTrailing
	r.typeLabel = widget.NewLabel("")
	r.typeLabel.Truncation = fyne.TextTruncateEllipsis
	return r
}

// SetEntry binds the row to a node
func (r *EntryRow) SetEntry(uid string, entry model.Entry, folderLabel string) {
	r.uid = uid

	if entry.Favorite {
		r.star.Text = IconFavorite
	} else {
		r.star.Text = ""
	}
	r.star.Color = theme.Color(ColorNameFavorite)
	r.star.Refresh()

	r.nameLabel.SetText(entry.Name)
	if entry.IsDir() {
		r.icon.SetResource(theme.FolderIcon())
		r.sizeLabel.SetText("")
		r.typeLabel.SetText(folderLabel)
		return
	}
	r.icon.SetResource(fileIcon(entry.Extension))
	r.sizeLabel.SetText(listing.FormatSize(entry.Size))
	r.typeLabel.SetText(entry.TypeLabel())
}

// Tapped selects the row
func (r *EntryRow) Tapped(*fyne.PointEvent) {
	if r.handlers.onTap != nil && r.uid != "" {
		r.handlers.onTap(r.uid)
	}
}

// DoubleTapped opens the row
func (r *EntryRow) DoubleTapped(*fyne.PointEvent) {
	if r.handlers.onDoubleTap != nil && r.uid != "" {
		r.handlers.onDoubleTap(r.uid)
	}
}

// TappedSecondary shows the context menu for the row
func (r *EntryRow) TappedSecondary(ev *fyne.PointEvent) {
	if r.handlers.onSecondary != nil && r.uid != "" {
		r.handlers.onSecondary(r.uid, ev.AbsolutePosition)
	}
}

// CreateRenderer creates the widget renderer
func (r *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	left := container.NewHBox(
		fixedWidth(StarColumnWidth, container.NewCenter(r.star)),
		r.icon,
	)
	right := container.NewHBox(
		fixedWidth(SizeColumnWidth, r.sizeLabel),
		fixedWidth(TypeColumnWidth, r.typeLabel),
	)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, left, right, r.nameLabel))
}

// fixedWidth pins obj to width w using a transparent rectangle underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// fileIcon picks a theme icon for common extension labels
func fileIcon(extension string) fyne.Resource {
	switch extension {
	case "PNG", "JPG", "JPEG", "GIF", "BMP", "SVG", "WEBP":
		return theme.FileImageIcon()
	case "MP3", "WAV", "FLAC", "OGG", "M4A":
		return theme.FileAudioIcon()
	case "MP4", "MKV", "AVI", "MOV", "WEBM":
		return theme.FileVideoIcon()
	case "TXT", "MD", "LOG", "CSV", "JSON", "YAML", "YML", "XML":
		return theme.FileTextIcon()
	case "GO", "PY", "JS", "TS", "C", "H", "CPP", "RS", "JAVA", "SH":
		return theme.FileApplicationIcon()
	default:
		return theme.FileIcon()
	}
}
