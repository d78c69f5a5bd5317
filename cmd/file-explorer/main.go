package main

import (
	"os"

	"github.com/ytget/file-explorer/internal/commands"
	"github.com/ytget/file-explorer/internal/logging"
)

func main() {
	code := commands.Run(os.Args)
	_ = logging.Sync()
	os.Exit(code)
}
