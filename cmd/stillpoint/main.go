package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stillpoint/app"
	"github.com/ayoisaiah/stillpoint/config"
	"github.com/ayoisaiah/stillpoint/internal/logutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	config.InitializePaths()

	logutil.Init(config.LogFilePath())

	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
