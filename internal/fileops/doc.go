// Package fileops performs the user-driven file operations of the explorer:
// clipboard cut/copy/paste, delete, rename and new folder.
//
// Multi-item operations run as a model.Batch. Items are processed in order
// and the batch stops at the first failure; the remaining items are marked
// skipped. Nothing is rolled back.
package fileops
