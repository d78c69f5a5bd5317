package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/ytget/file-explorer/internal/platform"
)

func runFav(args []string) int {
	fs := flag.NewFlagSet("fav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: file-explorer fav [--favorites FILE] <path>")
		return 2
	}
	applyCommonFlags(common)

	_, store, err := setup(common)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 2
	}

	path, err := platform.ExpandPath(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "path error: %v\n", err)
		return 1
	}

	// Removing a favorite whose target is gone is allowed; adding one is not
	if !store.Contains(path) {
		if _, err := os.Lstat(path); err != nil {
			fmt.Fprintf(stderr, "path error: %v\n", err)
			return 1
		}
	}

	t := theme{NoColor: common.noColor, NoEmoji: common.noEmoji}
	added := store.Toggle(path)
	if err := store.Save(); err != nil {
		fmt.Fprintln(stderr, t.Error("save error: "+err.Error()))
		return 1
	}
	if added {
		fmt.Fprintf(stdout, "%s added %s\n", t.Star(true), path)
	} else {
		fmt.Fprintf(stdout, "removed %s\n", path)
	}
	return 0
}

func runFavs(args []string) int {
	fs := flag.NewFlagSet("favs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stderr, "usage: file-explorer favs [--favorites FILE]")
		return 2
	}
	applyCommonFlags(common)

	_, store, err := setup(common)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 2
	}

	paths := store.Paths()
	if len(paths) == 0 {
		fmt.Fprintln(stdout, "No favorites.")
		return 0
	}
	t := theme{NoColor: common.noColor, NoEmoji: common.noEmoji}
	for _, p := range paths {
		fmt.Fprintf(stdout, "%s %s\n", t.Star(true), p)
	}
	return 0
}
