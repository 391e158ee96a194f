// Package main is the entry point for the ghissues CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hmori/ghissues/internal/app"
	"github.com/hmori/ghissues/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// A missing git repository or gh binary is reported inside the TUI
	// table, so container construction never blocks startup on them.
	container := app.New(cwd)
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
