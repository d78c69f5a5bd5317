package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-explorer/internal/listing"
)

// searcher is the part of the listing engine the search dialog needs
type searcher interface {
	Search(ctx context.Context, root, query string, limit int, opts ...listing.SearchOption) (listing.SearchResult, error)
}

// SearchDialog runs a recursive name search and lists the first matches
type SearchDialog struct {
	engine       searcher
	localization *Localization
	window       fyne.Window
	dialog       dialog.Dialog
	limit        int

	// OnMatchSelected runs when the user picks a match from the list
	OnMatchSelected func(path string)

	queryEntry  *widget.Entry
	rootEntry   *widget.Entry
	searchBtn   *widget.Button
	filesOnly   *widget.Check
	statusLabel *widget.Label
	matchList   *widget.List

	matches []string
	cancel  context.CancelFunc
}

// NewSearchDialog creates a search dialog rooted at root
func NewSearchDialog(engine searcher, localization *Localization, window fyne.Window, root string, limit int) *SearchDialog {
	sd := &SearchDialog{
		engine:       engine,
		localization: localization,
		window:       window,
		limit:        limit,
	}
	sd.createUI(root)
	return sd
}

// Show displays the dialog
func (sd *SearchDialog) Show() {
	sd.dialog.Show()
	sd.window.Canvas().Focus(sd.queryEntry)
}

func (sd *SearchDialog) createUI(root string) {
	t := sd.localization.GetText

	sd.queryEntry = widget.NewEntry()
	sd.queryEntry.SetPlaceHolder(t(KeySearchQuery))
	sd.queryEntry.OnSubmitted = func(string) { sd.onSearch() }

	sd.rootEntry = widget.NewEntry()
	sd.rootEntry.SetText(root)

	// Folders match too when unchecked
	sd.filesOnly = widget.NewCheck(t(KeySearchFilesOnly), nil)
	sd.filesOnly.SetChecked(true)

	sd.searchBtn = widget.NewButton(t(KeySearch), sd.onSearch)
	sd.searchBtn.Importance = widget.HighImportance

	sd.statusLabel = widget.NewLabel("")
	sd.statusLabel.Wrapping = fyne.TextWrapWord

	sd.matchList = widget.NewList(
		func() int { return len(sd.matches) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(IconMatchBullet + sd.matches[id])
		},
	)
	sd.matchList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(sd.matches) {
			return
		}
		path := sd.matches[id]
		sd.dialog.Hide()
		if sd.OnMatchSelected != nil {
			sd.OnMatchSelected(path)
		}
	}

	form := container.NewVBox(
		widget.NewLabel(t(KeySearchRoot)),
		sd.rootEntry,
		container.NewBorder(nil, nil, nil, sd.searchBtn, sd.queryEntry),
		sd.filesOnly,
		sd.statusLabel,
	)
	content := container.NewBorder(form, nil, nil, nil, sd.matchList)

	sd.dialog = dialog.NewCustom(t(KeySearch), t(KeyCancel), content, sd.window)
	sd.dialog.SetOnClosed(sd.stop)
	sd.dialog.Resize(fyne.NewSize(SearchDialogWidth, SearchDialogHeight))
}

// onSearch starts a background search, cancelling any previous one
func (sd *SearchDialog) onSearch() {
	query := strings.TrimSpace(sd.queryEntry.Text)
	if query == "" {
		return
	}
	root := strings.TrimSpace(sd.rootEntry.Text)

	sd.stop()
	ctx, cancel := context.WithCancel(context.Background())
	sd.cancel = cancel

	sd.statusLabel.SetText(sd.localization.GetText(KeySearching))
	sd.searchBtn.Disable()
	sd.matches = nil
	sd.matchList.Refresh()

	var opts []listing.SearchOption
	if sd.filesOnly.Checked {
		opts = append(opts, listing.FilesOnly())
	}

	go func() {
		result, err := sd.engine.Search(ctx, root, query, sd.limit, opts...)
		fyne.Do(func() {
			if errors.Is(err, context.Canceled) {
				return
			}
			sd.searchBtn.Enable()
			sd.showResult(query, result, err)
		})
	}()
}

// showResult renders the summary line and the first matches
func (sd *SearchDialog) showResult(query string, result listing.SearchResult, err error) {
	if err != nil {
		sd.statusLabel.SetText(err.Error())
		return
	}
	sd.statusLabel.SetText(searchSummary(sd.localization, query, result))

	sd.matches = result.Matches
	if len(sd.matches) > SearchPreviewCount {
		sd.matches = sd.matches[:SearchPreviewCount]
	}
	sd.matchList.UnselectAll()
	sd.matchList.Refresh()
}

// stop cancels a running search
func (sd *SearchDialog) stop() {
	if sd.cancel != nil {
		sd.cancel()
		sd.cancel = nil
	}
}

// searchSummary formats the line above the match list
func searchSummary(l *Localization, query string, result listing.SearchResult) string {
	if result.Total == 0 {
		return l.GetText(KeySearchNoMatches)
	}
	summary := fmt.Sprintf(l.GetText(KeySearchFound), result.Total, query)
	if result.Total > len(result.Matches) {
		summary += " " + IconEllipsisMore
	}
	return summary
}
