package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ytget/file-explorer/internal/config"
	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/platform"
)

func runSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	limit := fs.Int("limit", 0, "maximum matches to print (default from settings)")
	filesOnly := fs.Bool("files-only", false, "match file names only")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprintln(stderr, "usage: file-explorer search [--limit N] [--files-only] [--no-color] [--no-emoji] <query> [root]")
		return 2
	}
	if *limit < 0 {
		fmt.Fprintln(stderr, "--limit must not be negative")
		return 2
	}
	applyCommonFlags(common)

	env, _, err := setup(common)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 2
	}

	n := *limit
	if n == 0 {
		n = env.SearchLimit
	}
	if n == 0 {
		n = config.DefaultSearchLimit
	}

	rootArg := fs.Arg(1)
	if rootArg == "" {
		home, err := platform.HomeDir()
		if err != nil {
			fmt.Fprintf(stderr, "path error: %v\n", err)
			return 1
		}
		rootArg = home
	}
	root, err := platform.ExpandPath(rootArg)
	if err != nil {
		fmt.Fprintf(stderr, "path error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := theme{NoColor: common.noColor, NoEmoji: common.noEmoji}
	var opts []listing.SearchOption
	if *filesOnly {
		opts = append(opts, listing.FilesOnly())
	}
	result, err := newEngine().Search(ctx, root, fs.Arg(0), n, opts...)
	if err != nil {
		fmt.Fprintln(stderr, t.Error("search error: "+err.Error()))
		return 1
	}

	if result.Total == 0 {
		fmt.Fprintln(stdout, "No matches found.")
		return 0
	}
	fmt.Fprintf(stdout, "%sFound %d matches for '%s' in %s\n", t.Emoji("🔍 "), result.Total, fs.Arg(0), root)
	for _, m := range result.Matches {
		fmt.Fprintln(stdout, "  "+m)
	}
	if hidden := result.Total - len(result.Matches); hidden > 0 {
		fmt.Fprintf(stdout, "  ... and %d more\n", hidden)
	}
	return 0
}
