//go:build !cli

package main

import (
	"fmt"
	"os"

	"EncodingConverter/internal/cli"
	"EncodingConverter/internal/ui"
)

// run is the GUI+CLI entry point.
// It first checks for CLI subcommands, and if none are found, launches the GUI.
func run() {
	if cli.Execute(version) {
		return
	}

	app, err := ui.NewApp(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app.Run()
}
