// Package github provides GitHub issue access via the gh CLI.
package github

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/hmori/ghissues/internal/domain"
)

// issueFields are the JSON fields requested from gh issue list.
const issueFields = "number,title,createdAt,labels,url"

// Client implements domain.IssueLister using the gh CLI.
type Client struct {
	exec domain.CommandExecutor
	dir  string
}

// NewClient creates a new gh client. dir is the working directory for gh
// invocations; empty means the process working directory.
func NewClient(exec domain.CommandExecutor, dir string) *Client {
	return &Client{
		exec: exec,
		dir:  dir,
	}
}

// Ensure Client implements domain.IssueLister interface.
var _ domain.IssueLister = (*Client)(nil)

// issueJSON mirrors one element of the gh issue list output. Only the name
// field of each label object is kept.
type issueJSON struct {
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
	URL       string `json:"url"`
	Labels    []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Number int `json:"number"`
}

// List fetches up to limit most recent issues of the current repository.
// Failures are classified once and surfaced synchronously; there are no
// retries.
func (c *Client) List(ctx context.Context, limit int) ([]domain.Issue, error) {
	cmd := domain.NewCommand("gh", []string{
		"issue", "list",
		"--limit", strconv.Itoa(limit),
		"--json", issueFields,
	}, c.dir)

	stdout, stderr, err := c.exec.ExecuteContext(ctx, cmd)
	if err != nil {
		return nil, classify(err, stderr)
	}

	var raw []issueJSON
	if err := json.Unmarshal(stdout, &raw); err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchErrParse, Err: err}
	}

	issues := make([]domain.Issue, 0, len(raw))
	for _, item := range raw {
		var labels []string
		for _, label := range item.Labels {
			labels = append(labels, label.Name)
		}
		issues = append(issues, domain.Issue{
			Number:    item.Number,
			Title:     item.Title,
			CreatedAt: item.CreatedAt,
			Labels:    labels,
			URL:       item.URL,
		})
	}
	return issues, nil
}

// classify maps a gh invocation failure to a domain error. The
// "not a git repository" substring match is gh's only observable contract
// for that condition and is confined to this function.
func classify(err error, stderr []byte) error {
	msg := string(stderr)
	if strings.Contains(msg, "not a git repository") {
		return domain.ErrNotGitRepository
	}
	if errors.Is(err, exec.ErrNotFound) {
		return domain.ErrGHNotFound
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.FetchError{
			Kind:   domain.FetchErrCommand,
			Detail: strings.TrimSpace(msg),
			Err:    err,
		}
	}
	return &domain.FetchError{Kind: domain.FetchErrUnexpected, Err: err}
}
