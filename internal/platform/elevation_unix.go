//go:build unix

package platform

import "golang.org/x/sys/unix"

func isElevated() bool {
	return unix.Geteuid() == 0
}

// Relaunching through sudo or pkexec needs a terminal or a polkit agent, so
// unix builds do not attempt it.
func relaunchElevated(string, []string) error {
	return ErrElevationUnsupported
}
