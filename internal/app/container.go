// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/hmori/ghissues/internal/domain"
	"github.com/hmori/ghissues/internal/infra/browser"
	"github.com/hmori/ghissues/internal/infra/config"
	"github.com/hmori/ghissues/internal/infra/executor"
	"github.com/hmori/ghissues/internal/infra/github"
	"github.com/hmori/ghissues/internal/infra/gitrepo"
	"github.com/hmori/ghissues/internal/infra/logging"
	"github.com/hmori/ghissues/internal/usecase"
)

// appDirName is the directory under the user cache root holding log files.
const appDirName = "ghissues"

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor domain.CommandExecutor
	Issues   domain.IssueLister
	Repo     domain.RepoResolver
	Browser  domain.BrowserLauncher
	Logger   domain.Logger

	// Pointer fields
	logger *logging.Logger

	// Configuration
	Config *domain.Config
}

// New creates a Container rooted at dir (usually the process working
// directory). Config load failures are non-fatal; defaults apply so the
// TUI can still start and report environment problems in its table.
func New(dir string) *Container {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		cfg = domain.NewDefaultConfig()
	}

	logger := logging.New(defaultLogDir(), logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		logger.Warn("config", "config load failed, using defaults: "+err.Error())
	}

	exec := executor.NewClient()
	return &Container{
		Executor: exec,
		Issues:   github.NewClient(exec, dir),
		Repo:     gitrepo.NewResolver(exec, dir),
		Browser:  browser.New(cfg.Browser),
		Logger:   logger,
		logger:   logger,
		Config:   cfg,
	}
}

// defaultLogDir returns the log directory, or empty (logging disabled)
// when no user cache directory is available.
func defaultLogDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cacheDir, appDirName)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logger == nil {
		return nil
	}
	return c.logger.Close()
}

// ListIssuesUseCase creates a ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Issues)
}

// OpenIssueUseCase creates an OpenIssue use case.
func (c *Container) OpenIssueUseCase() *usecase.OpenIssue {
	return usecase.NewOpenIssue(c.Browser)
}
