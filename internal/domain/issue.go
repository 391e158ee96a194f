// Package domain defines the core types, ports, and errors for ghissues.
package domain

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is the number of issues fetched when no limit is configured.
const DefaultLimit = 10

// Title display constraints for table rendering.
const (
	maxTitleWidth       = 80
	truncatedTitleWidth = 77
)

// Issue represents a GitHub issue fetched via the gh CLI.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Title     string
	CreatedAt string
	URL       string
	Labels    []string
	Number    int
}

// Key returns the stable row key used to map a table row back to this issue.
func (i Issue) Key() string {
	return strconv.Itoa(i.Number)
}

// DisplayTitle returns the title truncated for table display.
// Titles longer than 80 runes are cut at 77 runes plus an ellipsis.
func (i Issue) DisplayTitle() string {
	runes := []rune(i.Title)
	if len(runes) <= maxTitleWidth {
		return i.Title
	}
	return string(runes[:truncatedTitleWidth]) + "..."
}

// DisplayDate returns the creation time formatted as YYYY-MM-DD.
// CreatedAt is an ISO-8601 timestamp; a trailing Z UTC marker is accepted.
// If the timestamp does not parse, the raw string is returned.
func (i Issue) DisplayDate() string {
	t, err := time.Parse(time.RFC3339, i.CreatedAt)
	if err != nil {
		return i.CreatedAt
	}
	return t.Format("2006-01-02")
}

// DisplayLabels returns the label names joined for table display.
func (i Issue) DisplayLabels() string {
	return strings.Join(i.Labels, ", ")
}

// FindIssueByKey returns the issue whose row key matches, or nil if none does.
func FindIssueByKey(issues []Issue, key string) *Issue {
	for idx := range issues {
		if issues[idx].Key() == key {
			return &issues[idx]
		}
	}
	return nil
}
