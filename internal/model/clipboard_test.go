package model

import "testing"

func TestClipboardState_Modes(t *testing.T) {
	var empty ClipboardState
	if !empty.IsEmpty() {
		t.Error("Zero clipboard should be empty")
	}

	paths := []string{"/tmp/a", "/tmp/b"}
	cut := NewCutState(paths)
	if cut.Mode != ClipboardCut || cut.IsEmpty() {
		t.Errorf("Expected non-empty cut clipboard, got %+v", cut)
	}

	// The clipboard must not alias the caller's slice
	paths[0] = "/changed"
	if cut.Paths[0] != "/tmp/a" {
		t.Errorf("Clipboard paths changed with caller slice: %v", cut.Paths)
	}

	cp := NewCopyState([]string{"/tmp/c"})
	if cp.Mode != ClipboardCopy {
		t.Errorf("Expected copy mode, got %s", cp.Mode)
	}

	if none := NewCopyState(nil); !none.IsEmpty() || none.Mode != ClipboardEmpty {
		t.Errorf("Copy of no paths should be empty, got %+v", none)
	}
}

func TestClipboardMode_String(t *testing.T) {
	tests := map[ClipboardMode]string{
		ClipboardEmpty: "empty",
		ClipboardCut:   "cut",
		ClipboardCopy:  "copy",
	}
	for mode, expected := range tests {
		if mode.String() != expected {
			t.Errorf("ClipboardMode(%d).String() = %s, expected %s", mode, mode.String(), expected)
		}
	}
}
