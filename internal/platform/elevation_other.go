//go:build !unix && !windows

package platform

func isElevated() bool {
	return false
}

func relaunchElevated(string, []string) error {
	return ErrElevationUnsupported
}
