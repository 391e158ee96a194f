// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/hmori/ghissues/internal/domain"
)

// Client implements domain.CommandExecutor.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns stdout and stderr separately.
// Callers classify failures by inspecting stderr, so the streams are
// never combined.
func (c *Client) Execute(cmd *domain.ExecCommand) (stdout, stderr []byte, err error) {
	return c.ExecuteContext(context.Background(), cmd)
}

// ExecuteContext runs the command with a context for cancellation.
func (c *Client) ExecuteContext(ctx context.Context, cmd *domain.ExecCommand) (stdout, stderr []byte, err error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted caller code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	var outBuf, errBuf bytes.Buffer
	execCmd.Stdout = &outBuf
	execCmd.Stderr = &errBuf
	err = execCmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}
