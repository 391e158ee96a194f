// Package tui provides the terminal user interface for ghissues.
package tui

// State represents the externally observable UI state.
type State int

const (
	StateLoading   State = iota // Fetch in flight, table cleared
	StatePopulated              // Fetch succeeded, rows shown
	StateError                  // Fetch failed, error row shown
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// NoticeKind is the severity of a transient notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)
