//go:build windows

package platform

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

const runAsVerb = "runas"

func isElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

func relaunchElevated(exe string, args []string) error {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = windows.EscapeArg(arg)
	}

	verb, err := windows.UTF16PtrFromString(runAsVerb)
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(strings.Join(quoted, " "))
	if err != nil {
		return err
	}

	if err := windows.ShellExecute(0, verb, file, params, nil, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("relaunch elevated: %w", err)
	}
	return nil
}
