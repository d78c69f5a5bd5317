package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/file-explorer/internal/config"
	"github.com/ytget/file-explorer/internal/favorites"
	"github.com/ytget/file-explorer/internal/fileops"
	"github.com/ytget/file-explorer/internal/listing"
	"github.com/ytget/file-explorer/internal/logging"
	"github.com/ytget/file-explorer/internal/platform"
	"github.com/ytget/file-explorer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.file-explorer"
	AppName = "File Explorer"
)

func main() {
	env, err := config.LoadEnv(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	if err := logging.Init(logging.Config{Level: env.LogLevel, Format: env.LogFormat}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
	}
	defer func() { _ = logging.Sync() }()

	log := logging.L()
	log.Info("starting", logging.String("app", AppName), logging.String("version", version))

	// An elevated relaunch passes the directory that was denied
	startDir, err := config.StartDirFromArgs(os.Args[1:])
	if err != nil {
		log.Warn("ignoring start directory argument", logging.Err(err))
	}
	if startDir == "" {
		startDir = env.StartDir
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(env.FavoritesFile)); err != nil {
		log.Warn("failed to ensure config dir", logging.Err(err))
	}

	// A broken favorites file must not keep the explorer from starting
	store, err := favorites.Load(env.FavoritesFile)
	if errors.Is(err, favorites.ErrPersistence) {
		log.Error("favorites not loaded", logging.Path(env.FavoritesFile), logging.Err(err))
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	engine := listing.NewEngine(listing.WithLogger(logging.Named("listing")))
	ops := fileops.NewService()
	elevator := platform.NewElevator(os.Args[1:])

	ui.NewRootUI(myWindow, myApp, ui.Options{
		Engine:      engine,
		Favorites:   store,
		Operator:    ops,
		Elevator:    elevator,
		StartDir:    startDir,
		SearchLimit: env.SearchLimit,
	})

	// Show and run
	myWindow.ShowAndRun()
}
