// Package browser opens URLs in the system default web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/hmori/ghissues/internal/domain"
)

// Launcher implements domain.BrowserLauncher.
type Launcher struct {
	// command overrides the platform default when non-empty.
	command string
}

// New creates a Launcher. command optionally names an explicit browser
// program; leave it empty to use the platform default.
func New(command string) *Launcher {
	return &Launcher{command: command}
}

// Ensure Launcher implements domain.BrowserLauncher interface.
var _ domain.BrowserLauncher = (*Launcher)(nil)

// Open launches the browser for url. The launch is fire-and-forget: the
// process is started but never waited on, and only a failure to start is
// reported.
func (l *Launcher) Open(url string) error {
	program, args := l.launchArgs(url)
	// #nosec G204 - program is a fixed platform opener or the configured browser
	cmd := exec.Command(program, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

func (l *Launcher) launchArgs(url string) (string, []string) {
	if l.command != "" {
		return l.command, []string{url}
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
