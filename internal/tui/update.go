package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmori/ghissues/internal/domain"
)

// noticeTimeout is how long a transient notice stays visible.
const noticeTimeout = 3 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgRepoResolved:
		m.repoName = msg.Name
		return m, tea.SetWindowTitle("GitHub Issues - " + msg.Name)

	case MsgIssuesLoaded:
		if msg.Gen != m.fetchGen {
			// A newer refresh superseded this fetch; drop the result.
			return m, nil
		}
		m.state = StatePopulated
		m.setIssues(msg.Issues)
		return m, nil

	case MsgFetchFailed:
		if msg.Gen != m.fetchGen {
			return m, nil
		}
		m.state = StateError
		m.setFetchError(msg.Err)
		return m, nil

	case MsgIssueOpened:
		return m, m.showNotice(fmt.Sprintf("Opening issue #%d", msg.Number), NoticeInfo)

	case MsgOpenFailed:
		return m, m.showNotice(msg.Err.Error(), openFailureKind(msg.Err))

	case MsgClearNotice:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refresh clears the table and starts a new fetch cycle. Incrementing the
// fetch generation invalidates any fetch still in flight.
func (m *Model) refresh() tea.Cmd {
	m.fetchGen++
	m.state = StateLoading
	m.clearTable()
	return tea.Batch(
		m.spinner.Tick,
		m.fetchIssues(),
		m.showNotice("Refreshing issues...", NoticeInfo),
	)
}

// showNotice sets a transient notice and schedules its removal.
func (m *Model) showNotice(text string, kind NoticeKind) tea.Cmd {
	m.notice = text
	m.noticeKind = kind
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return MsgClearNotice{}
	})
}

// openFailureKind maps an open failure to a notice severity. Empty list and
// missing selection are user states, not faults.
func openFailureKind(err error) NoticeKind {
	if errors.Is(err, domain.ErrNoIssuesLoaded) || errors.Is(err, domain.ErrNoRowSelected) {
		return NoticeWarning
	}
	return NoticeError
}

// updateLayoutSizes recomputes widget sizes after a terminal resize.
func (m *Model) updateLayoutSizes() {
	frameW, frameH := m.styles.App.GetFrameSize()
	width := m.width - frameW
	if width > 0 {
		m.table.SetWidth(width)
	}
	// Header, notice, and footer each take one line plus spacing.
	height := m.height - frameH - 6
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
}
