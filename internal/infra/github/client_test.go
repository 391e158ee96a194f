package github

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/hmori/ghissues/internal/domain"
	"github.com/hmori/ghissues/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `[
  {
    "number": 101,
    "title": "Crash on startup",
    "createdAt": "2024-03-05T10:00:00Z",
    "labels": [{"name": "bug"}, {"name": "p1"}],
    "url": "https://github.com/acme/widgets/issues/101"
  },
  {
    "number": 99,
    "title": "Add dark mode",
    "createdAt": "2024-02-28T08:30:00Z",
    "labels": [],
    "url": "https://github.com/acme/widgets/issues/99"
  }
]`

func TestClient_List(t *testing.T) {
	fake := &testutil.FakeExecutor{Stdout: []byte(sampleOutput)}
	client := NewClient(fake, "")

	issues, err := client.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, 101, issues[0].Number)
	assert.Equal(t, "Crash on startup", issues[0].Title)
	assert.Equal(t, "2024-03-05T10:00:00Z", issues[0].CreatedAt)
	assert.Equal(t, []string{"bug", "p1"}, issues[0].Labels)
	assert.Equal(t, "https://github.com/acme/widgets/issues/101", issues[0].URL)

	assert.Equal(t, 99, issues[1].Number)
	assert.Empty(t, issues[1].Labels)
}

func TestClient_List_CommandLine(t *testing.T) {
	fake := &testutil.FakeExecutor{Stdout: []byte("[]")}
	client := NewClient(fake, "/work/repo")

	_, err := client.List(context.Background(), 10)
	require.NoError(t, err)

	require.NotNil(t, fake.LastCmd)
	assert.Equal(t, "gh", fake.LastCmd.Program)
	assert.Equal(t, []string{"issue", "list", "--limit", "10", "--json",
		"number,title,createdAt,labels,url"}, fake.LastCmd.Args)
	assert.Equal(t, "/work/repo", fake.LastCmd.Dir)
}

func TestClient_List_EmptyResult(t *testing.T) {
	fake := &testutil.FakeExecutor{Stdout: []byte("[]")}
	client := NewClient(fake, "")

	issues, err := client.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestClient_List_NotGitRepository(t *testing.T) {
	// The substring classification applies regardless of surrounding text.
	fake := &testutil.FakeExecutor{
		Err:    errors.New("exit status 1"),
		Stderr: []byte("fatal: not a git repository (or any of the parent directories): .git\n"),
	}
	client := NewClient(fake, "")

	_, err := client.List(context.Background(), 10)
	require.ErrorIs(t, err, domain.ErrNotGitRepository)
	assert.Equal(t, "Not in a git repository", err.Error())
}

func TestClient_List_GHNotFound(t *testing.T) {
	fake := &testutil.FakeExecutor{
		Err: &exec.Error{Name: "gh", Err: exec.ErrNotFound},
	}
	client := NewClient(fake, "")

	_, err := client.List(context.Background(), 10)
	require.ErrorIs(t, err, domain.ErrGHNotFound)
	assert.Contains(t, err.Error(), "https://cli.github.com")
}

func TestClient_List_CommandFailure(t *testing.T) {
	fake := &testutil.FakeExecutor{
		Err:    &exec.ExitError{},
		Stderr: []byte("GraphQL: API rate limit exceeded\n"),
	}
	client := NewClient(fake, "")

	_, err := client.List(context.Background(), 10)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchErrCommand, fetchErr.Kind)
	assert.Equal(t, "Failed to fetch issues: GraphQL: API rate limit exceeded", err.Error())
}

func TestClient_List_ParseFailure(t *testing.T) {
	fake := &testutil.FakeExecutor{Stdout: []byte("gh: something went sideways")}
	client := NewClient(fake, "")

	issues, err := client.List(context.Background(), 10)
	require.Error(t, err)
	assert.Nil(t, issues)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchErrParse, fetchErr.Kind)
	assert.Equal(t, "Failed to parse GitHub response", err.Error())
}

func TestClient_List_UnexpectedFailure(t *testing.T) {
	fake := &testutil.FakeExecutor{Err: errors.New("fork/exec: resource exhausted")}
	client := NewClient(fake, "")

	_, err := client.List(context.Background(), 10)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.FetchErrUnexpected, fetchErr.Kind)
	assert.Contains(t, err.Error(), "Unexpected error: ")
}
