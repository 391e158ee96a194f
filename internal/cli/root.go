// Package cli provides the command-line interface for ghissues.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hmori/ghissues/internal/app"
	"github.com/hmori/ghissues/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for ghissues.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "ghissues",
		Short: "Browse GitHub issues in the terminal",
		Long: `ghissues shows the most recent issues of the current repository
in an interactive terminal table, fetched with the gh CLI.

Press Enter to open the selected issue in your browser,
Ctrl+R to refresh, and Ctrl+Q to quit.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddCommand(newListCommand(c))
	return root
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container) error {
	c.Logger.Info("tui", "starting")
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
