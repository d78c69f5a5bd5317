package model

// Package model defines domain data structures used across the app: listing
// entries, clipboard state, and file operation batches with their status
// enums. Entries are immutable snapshots; batches carry explicit per-item
// state transitions for the UI.
