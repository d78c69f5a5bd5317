package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/platform"
)

const nameWidth = 40

func runLs(args []string) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: file-explorer ls [--favorites FILE] [--no-color] [--no-emoji] [path]")
		return 2
	}
	applyCommonFlags(common)

	env, store, err := setup(common)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 2
	}

	pathArg := fs.Arg(0)
	if pathArg == "" {
		pathArg = env.StartDir
	}
	if pathArg == "" {
		pathArg = "."
	}
	dir, err := platform.ExpandPath(pathArg)
	if err != nil {
		fmt.Fprintf(stderr, "path error: %v\n", err)
		return 1
	}

	t := theme{NoColor: common.noColor, NoEmoji: common.noEmoji}
	entries, err := newEngine().List(dir, store)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, listing.ErrAccessDenied) {
			msg += " (try running as administrator)"
		}
		fmt.Fprintln(stderr, t.Error("list error: "+msg))
		return 1
	}

	fmt.Fprintln(stdout, dir)
	if len(entries) == 0 {
		fmt.Fprintln(stdout, "(empty)")
		return 0
	}
	for _, e := range entries {
		// Pad before coloring so escape codes do not count toward the width
		if e.IsDir() {
			name := fmt.Sprintf("%-*s", nameWidth, e.Name+"/")
			fmt.Fprintf(stdout, "%s %s%s %10s  %s\n", t.Star(e.Favorite), t.Emoji("📁 "), t.Dir(name), "", e.TypeLabel())
			continue
		}
		fmt.Fprintf(stdout, "%s %s%-*s %10s  %s\n", t.Star(e.Favorite), t.Emoji("📄 "), nameWidth, e.Name, listing.FormatSize(e.Size), e.TypeLabel())
	}
	return 0
}
