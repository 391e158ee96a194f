// Package gitrepo resolves a display name for the current repository.
package gitrepo

import (
	"strings"

	git "github.com/go-git/go-git/v5"

	"github.com/hmori/ghissues/internal/domain"
)

// UnknownRepository is the fallback display name when no remote URL can be
// resolved.
const UnknownRepository = "Unknown Repository"

// Resolver implements domain.RepoResolver. It asks the git CLI for the
// origin remote URL and falls back to reading the repository directly with
// go-git when the git binary is unavailable.
type Resolver struct {
	exec domain.CommandExecutor
	dir  string
}

// NewResolver creates a resolver rooted at dir.
func NewResolver(exec domain.CommandExecutor, dir string) *Resolver {
	return &Resolver{
		exec: exec,
		dir:  dir,
	}
}

// Ensure Resolver implements domain.RepoResolver interface.
var _ domain.RepoResolver = (*Resolver)(nil)

// RepoName returns an "owner/repo" label for the origin remote. It never
// fails; any error degrades to UnknownRepository.
func (r *Resolver) RepoName() string {
	url := r.remoteURL()
	if url == "" {
		return UnknownRepository
	}
	return RepoNameFromURL(url)
}

func (r *Resolver) remoteURL() string {
	cmd := domain.NewCommand("git", []string{"remote", "get-url", "origin"}, r.dir)
	stdout, _, err := r.exec.Execute(cmd)
	if err == nil {
		if url := strings.TrimSpace(string(stdout)); url != "" {
			return url
		}
	}
	return r.remoteURLFromDotGit()
}

// remoteURLFromDotGit reads the origin remote with go-git. This covers
// environments where the git binary itself is missing.
func (r *Resolver) remoteURLFromDotGit() string {
	repo, err := git.PlainOpenWithOptions(r.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// RepoNameFromURL derives the display name from a remote URL: a trailing
// .git suffix is stripped and the last two /-separated segments are joined.
// Only /-splitting is applied, so the SSH form git@host:owner/repo passes
// through unchanged (the host prefix stays glued to the owner segment).
func RepoNameFromURL(url string) string {
	url = strings.TrimSuffix(url, ".git")
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return UnknownRepository
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
