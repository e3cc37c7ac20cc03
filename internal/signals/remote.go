package signals

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Remote describes the origin remote of a local git checkout.
type Remote struct {
	URL string
	// Slug is "owner/name" when the URL follows the usual forge layout.
	Slug string
}

// ReadRemote opens the repository at root and returns its origin remote.
// It never touches the network. A root that is not a repository, or has no
// origin, yields (nil, nil).
func ReadRemote(root string) (*Remote, error) {
	if root == "" {
		return nil, nil
	}
	repo, err := git.PlainOpen(root)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil
		}
		return nil, err
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return nil, nil
		}
		return nil, err
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, nil
	}
	return &Remote{URL: urls[0], Slug: RepoSlug(urls[0])}, nil
}

// RepoSlug extracts "owner/name" from https, ssh and scp-style remote URLs.
func RepoSlug(raw string) string {
	raw = strings.TrimSpace(raw)
	var p string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		p = u.Path
	case strings.Contains(raw, ":"):
		// scp-like: git@host:owner/name.git
		p = raw[strings.Index(raw, ":")+1:]
	default:
		return ""
	}
	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	parts := strings.Split(p, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
