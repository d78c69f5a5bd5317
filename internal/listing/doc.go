// Package listing materializes one directory level into ordered entries.
//
// A listing classifies each child as directory or file, derives display
// metadata (size, extension label, whether a directory has children) and
// orders the result in four kind-groups: favorite directories, favorite
// files, other directories, other files. Directories sort by name; files sort
// by extension, then name. All comparisons are byte-wise.
//
// The engine enumerates exactly one level per call. Callers expand deeper
// levels on demand.
package listing
