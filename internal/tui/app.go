package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmori/ghissues/internal/app"
	"github.com/hmori/ghissues/internal/domain"
	"github.com/hmori/ghissues/internal/usecase"
)

// Table column indexes. Column 0 doubles as the row key.
const (
	colNumber = iota
	colTitle
	colDate
	colLabels
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container

	// State
	issues   []domain.Issue
	repoName string
	notice   string

	// Components
	keys    KeyMap
	styles  Styles
	table   table.Model
	spinner spinner.Model

	// Numeric state (smaller types last)
	state      State
	noticeKind NoticeKind
	fetchGen   int
	width      int
	height     int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	styles := DefaultStyles()

	columns := []table.Column{
		{Title: "Issue #", Width: 8},
		{Title: "Title", Width: 80},
		{Title: "Date", Width: 10},
		{Title: "Labels", Width: 24},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(domain.DefaultLimit+1),
		table.WithStyles(tableStyles()),
	)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &Model{
		container: c,
		repoName:  "Unknown Repository",
		keys:      DefaultKeyMap(),
		styles:    styles,
		table:     t,
		spinner:   sp,
		state:     StateLoading,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.resolveRepoName(),
		m.fetchIssues(),
	)
}

// resolveRepoName returns a command that resolves the repository display name.
func (m *Model) resolveRepoName() tea.Cmd {
	return func() tea.Msg {
		return MsgRepoResolved{Name: m.container.Repo.RepoName()}
	}
}

// fetchIssues returns a command that fetches issues on a background
// goroutine. The command captures the current fetch generation so a
// superseded result can be recognized and dropped.
func (m *Model) fetchIssues() tea.Cmd {
	gen := m.fetchGen
	limit := m.container.Config.Limit
	return func() tea.Msg {
		out, err := m.container.ListIssuesUseCase().Execute(context.Background(), usecase.ListIssuesInput{
			Limit: limit,
		})
		if err != nil {
			m.container.Logger.Error("fetch", err.Error())
			return MsgFetchFailed{Gen: gen, Err: err}
		}
		m.container.Logger.Info("fetch", fmt.Sprintf("fetched %d issues", len(out.Issues)))
		return MsgIssuesLoaded{Gen: gen, Issues: out.Issues}
	}
}

// openSelected returns a command that opens the selected issue in the
// browser. The issue list and row key are captured before the goroutine
// starts; the model is never touched off the event loop.
func (m *Model) openSelected() tea.Cmd {
	issues := m.issues
	key := m.selectedKey()
	return func() tea.Msg {
		out, err := m.container.OpenIssueUseCase().Execute(context.Background(), usecase.OpenIssueInput{
			Issues: issues,
			Key:    key,
		})
		if err != nil {
			m.container.Logger.Warn("open", err.Error())
			return MsgOpenFailed{Err: err}
		}
		m.container.Logger.Info("open", fmt.Sprintf("opening issue #%d", out.Issue.Number))
		return MsgIssueOpened{Number: out.Issue.Number}
	}
}

// selectedKey returns the row key of the selected table row, or "" when no
// row is selected or the row is informational.
func (m *Model) selectedKey() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[colNumber]
}

// SelectedIssue returns the issue for the selected row, or nil.
func (m *Model) SelectedIssue() *domain.Issue {
	return domain.FindIssueByKey(m.issues, m.selectedKey())
}

// setIssues replaces the issue list wholesale and rebuilds the table rows,
// keeping both in lock-step.
func (m *Model) setIssues(issues []domain.Issue) {
	m.issues = issues
	if len(issues) == 0 {
		m.table.SetRows([]table.Row{{"", "No issues found", "", ""}})
		m.table.SetCursor(0)
		return
	}

	rows := make([]table.Row, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, table.Row{
			issue.Key(),
			issue.DisplayTitle(),
			issue.DisplayDate(),
			issue.DisplayLabels(),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// setFetchError clears the issue list and shows the error as the sole row.
func (m *Model) setFetchError(err error) {
	m.issues = nil
	m.table.SetRows([]table.Row{{"", err.Error(), "", ""}})
	m.table.SetCursor(0)
}

// clearTable empties the table and the issue list for a new loading cycle.
func (m *Model) clearTable() {
	m.issues = nil
	m.table.SetRows(nil)
}
