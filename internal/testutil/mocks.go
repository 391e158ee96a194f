// Package testutil provides fake port implementations for tests.
package testutil

import (
	"context"

	"github.com/hmori/ghissues/internal/domain"
)

// FakeExecutor implements domain.CommandExecutor with canned results.
type FakeExecutor struct {
	Err      error
	LastCmd  *domain.ExecCommand
	Stdout   []byte
	Stderr   []byte
	Commands []*domain.ExecCommand
}

var _ domain.CommandExecutor = (*FakeExecutor)(nil)

func (f *FakeExecutor) Execute(cmd *domain.ExecCommand) ([]byte, []byte, error) {
	return f.ExecuteContext(context.Background(), cmd)
}

func (f *FakeExecutor) ExecuteContext(_ context.Context, cmd *domain.ExecCommand) ([]byte, []byte, error) {
	f.LastCmd = cmd
	f.Commands = append(f.Commands, cmd)
	return f.Stdout, f.Stderr, f.Err
}

// FakeIssueLister implements domain.IssueLister with canned results.
type FakeIssueLister struct {
	Err       error
	Issues    []domain.Issue
	LastLimit int
	Calls     int
}

var _ domain.IssueLister = (*FakeIssueLister)(nil)

func (f *FakeIssueLister) List(_ context.Context, limit int) ([]domain.Issue, error) {
	f.Calls++
	f.LastLimit = limit
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Issues, nil
}

// FakeBrowser implements domain.BrowserLauncher and records opened URLs.
type FakeBrowser struct {
	Err    error
	Opened []string
}

var _ domain.BrowserLauncher = (*FakeBrowser)(nil)

func (f *FakeBrowser) Open(url string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Opened = append(f.Opened, url)
	return nil
}

// FakeRepoResolver implements domain.RepoResolver with a fixed name.
type FakeRepoResolver struct {
	Name string
}

var _ domain.RepoResolver = (*FakeRepoResolver)(nil)

func (f *FakeRepoResolver) RepoName() string {
	return f.Name
}

// NopLogger implements domain.Logger and discards everything.
type NopLogger struct{}

var _ domain.Logger = (*NopLogger)(nil)

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
