package listing

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0.0 B"},
		{1, "1.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 << 30, "5.0 GB"},
		{1 << 40, "1.0 TB"},
		{1 << 50, "1024.0 TB"},
		{-10, "0.0 B"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestExtensionKeys(t *testing.T) {
	tests := []struct {
		name, label, key string
	}{
		{"report.PDF", "PDF", "pdf"},
		{"archive.tar.gz", "GZ", "gz"},
		{"README", "Unknown", "Unknown"},
		{".gitignore", "Unknown", "Unknown"},
		{".config.yaml", "YAML", "yaml"},
		{"trailing.", "Unknown", "Unknown"},
	}
	for _, tt := range tests {
		if got := extensionLabel(tt.name); got != tt.label {
			t.Errorf("extensionLabel(%q) = %q, want %q", tt.name, got, tt.label)
		}
		if got := extensionKey(tt.name); got != tt.key {
			t.Errorf("extensionKey(%q) = %q, want %q", tt.name, got, tt.key)
		}
	}
}
