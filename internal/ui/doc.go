package ui

// Package ui contains the Fyne-based desktop user interface for the explorer.
// It renders the ordered listing as a lazily expanded tree, wires toolbar and
// context-menu actions to the file operation service, and persists favorites.
// All UI strings are localized via Localization.
