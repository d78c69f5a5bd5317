package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ytget/file-explorer/internal/platform"
)

// Environment variables
const (
	EnvFavoritesFile = "FILE_EXPLORER_FAVORITES"
	EnvStartDir      = "FILE_EXPLORER_START_DIR"
	EnvLogLevel      = "FILE_EXPLORER_LOG_LEVEL"
	EnvLogFormat     = "FILE_EXPLORER_LOG_FORMAT"
	EnvSearchLimit   = "FILE_EXPLORER_SEARCH_LIMIT"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Env is the process configuration taken from the environment
type Env struct {
	FavoritesFile string
	StartDir      string
	LogLevel      string
	LogFormat     string
	// SearchLimit is zero when unset
	SearchLimit int
}

// LoadEnv reads an optional dotenv file into the process environment and
// then parses the FILE_EXPLORER_* variables. Variables already set in the
// environment win over the file.
func LoadEnv(envFile string) (Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return ParseEnv()
}

// ParseEnv builds Env from the current process environment
func ParseEnv() (Env, error) {
	env := Env{
		LogLevel:  "info",
		LogFormat: "console",
	}

	if v := strings.TrimSpace(os.Getenv(EnvFavoritesFile)); v != "" {
		path, err := platform.ExpandPath(v)
		if err != nil {
			return Env{}, fmt.Errorf("%s: %w", EnvFavoritesFile, err)
		}
		env.FavoritesFile = path
	} else {
		path, err := platform.DefaultFavoritesFile()
		if err != nil {
			return Env{}, err
		}
		env.FavoritesFile = path
	}

	if v := strings.TrimSpace(os.Getenv(EnvStartDir)); v != "" {
		path, err := platform.ExpandPath(v)
		if err != nil {
			return Env{}, fmt.Errorf("%s: %w", EnvStartDir, err)
		}
		env.StartDir = path
	}

	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			env.LogLevel = v
		default:
			return Env{}, fmt.Errorf("%s: unknown level %q", EnvLogLevel, v)
		}
	}

	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))); v != "" {
		if v != "console" && v != "json" {
			return Env{}, fmt.Errorf("%s: unknown format %q", EnvLogFormat, v)
		}
		env.LogFormat = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvSearchLimit)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Env{}, fmt.Errorf("%s: expected a positive integer, got %q", EnvSearchLimit, v)
		}
		env.SearchLimit = clampSearchLimit(n)
	}

	return env, nil
}
