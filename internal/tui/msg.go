package tui

import "github.com/hmori/ghissues/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgRepoResolved is sent when the repository display name is resolved.
type MsgRepoResolved struct {
	Name string
}

func (MsgRepoResolved) sealed() {}

// MsgIssuesLoaded is sent when a fetch completes successfully. Gen is the
// fetch generation the fetch was started with; results from a superseded
// generation are dropped.
type MsgIssuesLoaded struct {
	Issues []domain.Issue
	Gen    int
}

func (MsgIssuesLoaded) sealed() {}

// MsgFetchFailed is sent when a fetch fails.
type MsgFetchFailed struct {
	Err error
	Gen int
}

func (MsgFetchFailed) sealed() {}

// MsgIssueOpened is sent after the browser was launched for an issue.
type MsgIssueOpened struct {
	Number int
}

func (MsgIssueOpened) sealed() {}

// MsgOpenFailed is sent when opening the selected issue did not happen.
type MsgOpenFailed struct {
	Err error
}

func (MsgOpenFailed) sealed() {}

// MsgClearNotice is sent to clear the current transient notice.
type MsgClearNotice struct{}

func (MsgClearNotice) sealed() {}
