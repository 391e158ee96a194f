// Package usecase implements the application operations behind the CLI and TUI.
package usecase

import (
	"context"

	"github.com/hmori/ghissues/internal/domain"
)

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct {
	Limit int // Maximum number of issues; 0 means the default limit
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Issues []domain.Issue
}

// ListIssues is the use case for fetching the most recent issues.
type ListIssues struct {
	issues domain.IssueLister
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(issues domain.IssueLister) *ListIssues {
	return &ListIssues{issues: issues}
}

// Execute fetches the issues. Failures are surfaced once; there are no
// retries.
func (uc *ListIssues) Execute(ctx context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}

	issues, err := uc.issues.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &ListIssuesOutput{Issues: issues}, nil
}
