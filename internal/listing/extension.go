package listing

import (
	"strings"

	"github.com/ytget/file-explorer/internal/model"
)

// splitExtension returns the raw extension of name without the dot. Leading
// dots belong to the name, so ".bashrc" has no extension; neither does
// "archive." with its empty suffix. A bare trailing dot therefore labels and
// sorts as "Unknown" next to extensionless names, instead of getting an empty
// label and an empty sort key of its own.
func splitExtension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndexByte(trimmed, '.')
	if idx < 0 {
		return ""
	}
	return trimmed[idx+1:]
}

// extensionLabel is the display form: upper-cased, or "Unknown".
func extensionLabel(name string) string {
	ext := splitExtension(name)
	if ext == "" {
		return model.UnknownExtension
	}
	return strings.ToUpper(ext)
}

// extensionKey is the primary file sort key.
func extensionKey(name string) string {
	ext := splitExtension(name)
	if ext == "" {
		return model.UnknownExtension
	}
	return strings.ToLower(ext)
}
