package domain

import "context"

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns stdout and stderr separately.
	Execute(cmd *ExecCommand) (stdout, stderr []byte, err error)

	// ExecuteContext is Execute with a context for cancellation.
	ExecuteContext(ctx context.Context, cmd *ExecCommand) (stdout, stderr []byte, err error)
}

// IssueLister fetches issues of the current repository.
type IssueLister interface {
	// List returns up to limit most recent issues.
	List(ctx context.Context, limit int) ([]Issue, error)
}

// RepoResolver derives a display name for the current repository.
type RepoResolver interface {
	// RepoName returns an "owner/repo" label, degrading to
	// "Unknown Repository" on any failure.
	RepoName() string
}

// BrowserLauncher opens URLs in the default web browser.
type BrowserLauncher interface {
	// Open launches the browser for the given URL, fire-and-forget.
	Open(url string) error
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the configuration, falling back to defaults when no
	// config file exists.
	Load() (*Config, error)
}

// Logger writes diagnostic messages. The TUI owns the terminal, so
// implementations must never write to stdout or stderr.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
