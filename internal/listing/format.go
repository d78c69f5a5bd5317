package listing

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with binary units and one decimal place.
// TB is the last unit; anything larger is still shown in TB.
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	value := float64(size)
	last := len(sizeUnits) - 1
	for i, unit := range sizeUnits {
		if value < 1024.0 || i == last {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return ""
}
