// Package favorites keeps the set of user-pinned absolute paths and persists
// it as a JSON array of strings.
package favorites
