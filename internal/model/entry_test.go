package model

import "testing"

func TestEntry_TypeLabel(t *testing.T) {
	tests := []struct {
		entry    Entry
		expected string
	}{
		{Entry{Name: "docs", Kind: KindDirectory}, FolderLabel},
		{Entry{Name: "notes.txt", Kind: KindFile, Extension: "TXT"}, "TXT"},
		{Entry{Name: "Makefile", Kind: KindFile, Extension: UnknownExtension}, UnknownExtension},
		{Entry{Name: "raw", Kind: KindFile}, UnknownExtension},
	}

	for _, test := range tests {
		result := test.entry.TypeLabel()
		if result != test.expected {
			t.Errorf("TypeLabel() for %q = %q, expected %q", test.entry.Name, result, test.expected)
		}
	}
}

func TestKind_String(t *testing.T) {
	if KindDirectory.String() != "directory" {
		t.Errorf("Expected 'directory', got %q", KindDirectory.String())
	}
	if KindFile.String() != "file" {
		t.Errorf("Expected 'file', got %q", KindFile.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Expected 'unknown', got %q", Kind(42).String())
	}
}
