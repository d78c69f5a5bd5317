package commands

import (
	"fmt"
	"io"
	"os"
)

// Version is set during build via -ldflags "-X github.com/ytget/file-explorer/internal/commands.Version=X.Y.Z"
var Version = "dev"

// Output targets; tests swap them for buffers
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run dispatches a CLI invocation and returns the process exit code
func Run(args []string) int {
	if len(args) < 2 {
		printRootUsage()
		return 2
	}

	sub := args[1]
	switch sub {
	case "help", "-h", "--help":
		printRootUsage()
		return 0
	case "ls":
		return runLs(args[2:])
	case "fav":
		return runFav(args[2:])
	case "favs":
		return runFavs(args[2:])
	case "search":
		return runSearch(args[2:])
	case "version", "-v", "--version":
		fmt.Fprintln(stdout, "file-explorer "+Version)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", sub)
		printRootUsage()
		return 2
	}
}

func printRootUsage() {
	fmt.Fprintln(stdout, "file-explorer")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintln(stdout, "  file-explorer ls [path]              List a directory, favorites first")
	fmt.Fprintln(stdout, "  file-explorer fav <path>             Toggle a favorite")
	fmt.Fprintln(stdout, "  file-explorer favs                   Print favorites")
	fmt.Fprintln(stdout, "  file-explorer search <query> [root]  Find files and folders by name")
	fmt.Fprintln(stdout, "  file-explorer version                Print the version")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Default paths:")
	fmt.Fprintln(stdout, "  ls -> current directory")
	fmt.Fprintln(stdout, "  search -> home directory")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Shared per-command flags:")
	fmt.Fprintln(stdout, "  --favorites FILE     Favorites file (default from FILE_EXPLORER_FAVORITES)")
	fmt.Fprintln(stdout, "  --no-color           Disable ANSI colors")
	fmt.Fprintln(stdout, "  --no-emoji           Disable emoji in output")
	fmt.Fprintln(stdout, "")
}
