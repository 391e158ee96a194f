package usecase

import (
	"context"
	"fmt"

	"github.com/hmori/ghissues/internal/domain"
)

// OpenIssueInput contains the parameters for opening an issue.
type OpenIssueInput struct {
	Key    string // Row key of the selected issue (stringified number)
	Issues []domain.Issue
}

// OpenIssueOutput contains the opened issue.
type OpenIssueOutput struct {
	Issue domain.Issue
}

// OpenIssue is the use case for opening a selected issue in the browser.
type OpenIssue struct {
	browser domain.BrowserLauncher
}

// NewOpenIssue creates a new OpenIssue use case.
func NewOpenIssue(browser domain.BrowserLauncher) *OpenIssue {
	return &OpenIssue{browser: browser}
}

// Execute resolves the row key against the issue list and launches the
// browser. The distinct failure modes let the caller pick a notification
// severity: ErrNoIssuesLoaded and ErrNoRowSelected are user states, not
// faults.
func (uc *OpenIssue) Execute(_ context.Context, in OpenIssueInput) (*OpenIssueOutput, error) {
	if len(in.Issues) == 0 {
		return nil, domain.ErrNoIssuesLoaded
	}
	if in.Key == "" {
		return nil, domain.ErrNoRowSelected
	}

	issue := domain.FindIssueByKey(in.Issues, in.Key)
	if issue == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrIssueNotFound, in.Key)
	}

	if err := uc.browser.Open(issue.URL); err != nil {
		return nil, fmt.Errorf("failed to open issue: %w", err)
	}
	return &OpenIssueOutput{Issue: *issue}, nil
}
