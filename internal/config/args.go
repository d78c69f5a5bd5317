package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/ytget/file-explorer/internal/platform"
)

// StartDirFromArgs returns the --start-dir value of the GUI command line,
// expanded to an absolute path, or "" when the flag is absent. Arguments the
// explorer does not know are ignored; some desktop launchers add their own.
func StartDirFromArgs(args []string) (string, error) {
	fs := flag.NewFlagSet("file-explorer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	startDir := fs.String(platform.StartDirFlag, "", "directory to open")

	for len(args) > 0 {
		err := fs.Parse(args)
		rest := fs.Args()
		if len(rest) == len(args) || err == nil && len(rest) > 0 {
			// Parse stopped at a positional argument or malformed flag; skip it
			rest = rest[1:]
		}
		args = rest
	}

	if *startDir == "" {
		return "", nil
	}
	path, err := platform.ExpandPath(*startDir)
	if err != nil {
		return "", fmt.Errorf("--%s: %w", platform.StartDirFlag, err)
	}
	return path, nil
}
