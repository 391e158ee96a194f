package domain

import "errors"

// Domain errors. The fetch sentinels carry their exact user-facing text
// because they are rendered verbatim as the sole table row.
var (
	ErrNotGitRepository = errors.New("Not in a git repository")
	ErrGHNotFound       = errors.New("gh CLI not found. Please install GitHub CLI: https://cli.github.com")
	ErrNoIssuesLoaded   = errors.New("No issues loaded")
	ErrNoRowSelected    = errors.New("No row selected")
	ErrIssueNotFound    = errors.New("Could not find issue with key")
)

// FetchErrorKind enumerates the remaining fetch failure classes.
type FetchErrorKind int

const (
	// FetchErrCommand is a non-zero exit from the gh CLI that matched no
	// known condition; Detail carries the trimmed stderr text.
	FetchErrCommand FetchErrorKind = iota

	// FetchErrParse is gh output that was not a valid JSON array.
	FetchErrParse

	// FetchErrUnexpected is any other failure to run or read the command.
	FetchErrUnexpected
)

// FetchError is a classified issue-fetch failure.
type FetchError struct {
	Err    error
	Detail string
	Kind   FetchErrorKind
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchErrCommand:
		return "Failed to fetch issues: " + e.Detail
	case FetchErrParse:
		return "Failed to parse GitHub response"
	case FetchErrUnexpected:
		if e.Err != nil {
			return "Unexpected error: " + e.Err.Error()
		}
		return "Unexpected error"
	}
	return "Unexpected error"
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
