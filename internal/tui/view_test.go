package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmori/ghissues/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel(t, &testutil.FakeIssueLister{}, &testutil.FakeBrowser{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(*Model)
}

func TestView_BeforeFirstResize(t *testing.T) {
	m := newTestModel(t, &testutil.FakeIssueLister{}, &testutil.FakeBrowser{})
	assert.Equal(t, "Loading...", m.View())
}

func TestView_Populated(t *testing.T) {
	m := sizedModel(t)
	updated, _ := m.Update(MsgRepoResolved{Name: "acme/widgets"})
	m = updated.(*Model)
	updated, _ = m.Update(MsgIssuesLoaded{Gen: 0, Issues: testIssues()})
	m = updated.(*Model)

	view := m.View()
	assert.Contains(t, view, "GitHub Issues - acme/widgets")
	assert.Contains(t, view, "Crash on startup")
	assert.Contains(t, view, "2024-03-05")
	assert.Contains(t, view, "open issue")
	assert.NotContains(t, view, "Loading issues")
}

func TestView_Loading(t *testing.T) {
	m := sizedModel(t)
	require.Equal(t, StateLoading, m.state)
	assert.Contains(t, m.View(), "Loading issues...")
}

func TestView_Notice(t *testing.T) {
	m := sizedModel(t)
	updated, _ := m.Update(MsgIssueOpened{Number: 7})
	m = updated.(*Model)
	assert.Contains(t, m.View(), "Opening issue #7")
}

func TestView_ErrorRow(t *testing.T) {
	m := sizedModel(t)
	updated, _ := m.Update(MsgFetchFailed{Gen: 0, Err: errFixture("Failed to parse GitHub response")})
	m = updated.(*Model)
	assert.Contains(t, m.View(), "Failed to parse GitHub response")
}

type errFixture string

func (e errFixture) Error() string { return string(e) }
