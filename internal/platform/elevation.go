package platform

import (
	"errors"
	"os"
	"strings"
)

// StartDirFlag is the command-line flag an elevated relaunch uses to reopen
// the directory that was denied
const StartDirFlag = "start-dir"

// ErrElevationUnsupported is returned when the OS offers no way to relaunch
// the process with elevated privileges.
var ErrElevationUnsupported = errors.New("privilege elevation is not supported on this platform")

// Elevator is the process privilege capability. IsElevated is a plain check;
// RequestElevation relaunches the process with elevated rights and the caller
// is expected to exit afterwards.
type Elevator interface {
	IsElevated() bool
	RequestElevation(startDir string) error
}

// ProcessElevator elevates the current executable
type ProcessElevator struct {
	args []string
}

var _ Elevator = (*ProcessElevator)(nil)

// NewElevator creates an elevator that relaunches with the given arguments
func NewElevator(args []string) *ProcessElevator {
	return &ProcessElevator{args: append([]string(nil), args...)}
}

// IsElevated reports whether the process runs with administrator rights
func (e *ProcessElevator) IsElevated() bool {
	return isElevated()
}

// RequestElevation relaunches the current executable elevated. A non-empty
// startDir replaces any start directory given on the original command line.
func (e *ProcessElevator) RequestElevation(startDir string) error {
	if isElevated() {
		return nil
	}
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	return relaunchElevated(exe, relaunchArgs(e.args, startDir))
}

// relaunchArgs drops every start-dir flag from args and appends startDir
func relaunchArgs(args []string, startDir string) []string {
	out := make([]string, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		name := strings.TrimLeft(args[i], "-")
		if args[i] == name {
			out = append(out, args[i])
			continue
		}
		if name == StartDirFlag {
			i++ // value is the next argument
			continue
		}
		if strings.HasPrefix(name, StartDirFlag+"=") {
			continue
		}
		out = append(out, args[i])
	}
	if startDir != "" {
		out = append(out, "--"+StartDirFlag+"="+startDir)
	}
	return out
}
