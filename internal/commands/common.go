package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/ytget/file-explorer/internal/config"
	"github.com/ytget/file-explorer/internal/favorites"
	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/logging"
)

type commonFlags struct {
	noColor   bool
	noEmoji   bool
	favorites string
}

func addCommonFlags(fs *flag.FlagSet, c *commonFlags) {
	fs.BoolVar(&c.noColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&c.noEmoji, "no-emoji", false, "disable emoji in output")
	fs.StringVar(&c.favorites, "favorites", "", "favorites file")
}

func applyCommonFlags(c commonFlags) {
	if c.noColor {
		color.NoColor = true
	}
}

// setup reads the environment, starts logging and opens the favorites store.
// A corrupt favorites file is reported and treated as empty.
func setup(c commonFlags) (config.Env, *favorites.Store, error) {
	env, err := config.LoadEnv(config.DefaultEnvFile)
	if err != nil {
		return config.Env{}, nil, err
	}
	if err := logging.Init(logging.Config{Level: env.LogLevel, Format: env.LogFormat, OutputPath: "stderr"}); err != nil {
		return config.Env{}, nil, err
	}

	file := env.FavoritesFile
	if c.favorites != "" {
		file = c.favorites
	}
	store, err := favorites.Load(file)
	if errors.Is(err, favorites.ErrPersistence) {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}
	return env, store, nil
}

func newEngine() *listing.Engine {
	return listing.NewEngine(listing.WithLogger(logging.Named("listing")))
}

// theme renders CLI decorations, honoring --no-color and --no-emoji
type theme struct {
	NoColor bool
	NoEmoji bool
}

func (t theme) Emoji(s string) string {
	if t.NoEmoji {
		return ""
	}
	return s
}

func (t theme) Dir(s string) string {
	if t.NoColor {
		return s
	}
	return color.New(color.FgBlue, color.Bold).Sprint(s)
}

func (t theme) Star(favorite bool) string {
	if !favorite {
		return " "
	}
	if t.NoEmoji {
		return "*"
	}
	if t.NoColor {
		return "★"
	}
	return color.New(color.FgYellow, color.Bold).Sprint("★")
}

func (t theme) Error(s string) string {
	if t.NoColor {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}
