package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Application directories
const (
	AppConfigDirName  = "file-explorer"
	FavoritesFileName = "favorites.json"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// runCommand starts an external program and waits for it
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// startCommand starts an external program without waiting for it
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// lookPath reports whether a program is on PATH
var lookPath = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RevealInFileManager shows the path in the system file manager. Files are
// selected where the file manager supports it; directories are opened.
func RevealInFileManager(path string) error {
	absPath, info, err := resolveExisting(path)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		if info.IsDir() {
			return runCommand(OpenCommand, absPath)
		}
		return runCommand(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		// explorer exits non-zero even on success
		if info.IsDir() {
			return startCommand(ExplorerCommand, absPath)
		}
		return startCommand(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux, OSFreeBSD:
		dir := absPath
		if !info.IsDir() {
			dir = filepath.Dir(absPath)
		}
		return openDirectoryUnix(dir)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirectoryUnix opens a directory with xdg-open or a known file manager
// Note: File selection is not standardized on Linux, so callers pass the parent directory
func openDirectoryUnix(dir string) error {
	if err := runCommand(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if lookPath(fm) {
			return runCommand(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenWithDefaultApp opens the path with the default system application
func OpenWithDefaultApp(path string) error {
	absPath, _, err := resolveExisting(path)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return runCommand(OpenCommand, absPath)
	case OSWindows:
		return runCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
	case OSLinux, OSFreeBSD:
		return runCommand(XDGOpenCommand, absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// resolveExisting returns the absolute path and file info of an existing path
func resolveExisting(path string) (string, os.FileInfo, error) {
	if path == "" {
		return "", nil, fmt.Errorf("file path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", nil, fmt.Errorf("file does not exist: %w", err)
	}
	return absPath, info, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// HomeDir returns the user's home directory
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return homeDir, nil
}

// ExpandPath expands a leading ~ and returns a cleaned absolute path
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		homeDir, err := HomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(homeDir, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// DefaultFavoritesFile returns <user config dir>/file-explorer/favorites.json
func DefaultFavoritesFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, AppConfigDirName, FavoritesFileName), nil
}
