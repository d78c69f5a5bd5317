package model

// ClipboardMode tells what a paste will do with the held paths
type ClipboardMode int

const (
	ClipboardEmpty ClipboardMode = iota
	ClipboardCut
	ClipboardCopy
)

// String returns the mode name used in logs
func (m ClipboardMode) String() string {
	switch m {
	case ClipboardCut:
		return "cut"
	case ClipboardCopy:
		return "copy"
	default:
		return "empty"
	}
}

// ClipboardState holds at most one active mode and its paths.
type ClipboardState struct {
	Mode  ClipboardMode
	Paths []string
}

// NewCutState returns a cut clipboard holding a copy of paths
func NewCutState(paths []string) ClipboardState {
	return newState(ClipboardCut, paths)
}

// NewCopyState returns a copy clipboard holding a copy of paths
func NewCopyState(paths []string) ClipboardState {
	return newState(ClipboardCopy, paths)
}

func newState(mode ClipboardMode, paths []string) ClipboardState {
	if len(paths) == 0 {
		return ClipboardState{}
	}
	held := make([]string, len(paths))
	copy(held, paths)
	return ClipboardState{Mode: mode, Paths: held}
}

// IsEmpty reports whether there is nothing to paste
func (c ClipboardState) IsEmpty() bool {
	return c.Mode == ClipboardEmpty || len(c.Paths) == 0
}
