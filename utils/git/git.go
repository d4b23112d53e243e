package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Client materializes the declared state of an application from a git
// repository: a local working copy, checked out at the commit the
// application's target revision resolves to.
type Client interface {
	CloneOrFetch(ctx context.Context, url, path string) error
	Checkout(path, revision string) (string, error)
	ResolveRevision(path, revision string) (string, error)
	CleanUp(path string) error
}

type gitClient struct {
	token string
}

func NewClient(token string) Client {
	return &gitClient{
		token: token,
	}
}

// RepoPath returns the working copy location for an application's repository
// under the given cache root.
func RepoPath(root, appName, url string) string {
	return filepath.Join(root, appName, strings.Replace(url, "/", "_", -1))
}

func (g *gitClient) auth() *http.BasicAuth {
	if g.token == "" {
		return nil
	}

	// The intended use of a GitHub personal access token is in replace of your password
	// because access tokens can easily be revoked.
	// https://help.github.com/articles/creating-a-personal-access-token-for-the-command-line/
	return &http.BasicAuth{
		Username: "git", // yes, this can be anything except an empty string
		Password: g.token,
	}
}

func (g *gitClient) CloneOrFetch(ctx context.Context, url, path string) error {
	// Need to clone the repository
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
			Auth: g.auth(),
			URL:  url,
		})
		if err != nil {
			return fmt.Errorf("failed to clone repository: %w", err)
		}

		return nil
	}

	// Fetch the latest changes if it's already cloned
	r, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	err = r.FetchContext(ctx, &git.FetchOptions{
		Auth:  g.auth(),
		Force: true,
		Tags:  git.AllTags,
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("failed to fetch repository: %w", err)
	}

	return nil
}

// Checkout detaches the worktree at the commit the revision resolves to and
// returns that commit's SHA.
func (g *gitClient) Checkout(path, revision string) (string, error) {
	r, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	sha, err := resolve(r, revision)
	if err != nil {
		return "", err
	}

	w, err := r.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	err = w.Checkout(&git.CheckoutOptions{
		Hash:  plumbing.NewHash(sha),
		Force: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to checkout revision %s: %w", revision, err)
	}

	return sha, nil
}

// ResolveRevision maps a branch name, tag name or (abbreviated) commit SHA
// to a full commit SHA without touching the worktree.
func (g *gitClient) ResolveRevision(path, revision string) (string, error) {
	r, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	return resolve(r, revision)
}

func resolve(r *git.Repository, revision string) (string, error) {
	if revision == "" || revision == "HEAD" {
		ref, err := r.Head()
		if err != nil {
			return "", fmt.Errorf("failed to get HEAD: %w", err)
		}
		return ref.Hash().String(), nil
	}

	// Prefer the remote tracking ref so a fresh fetch wins over a stale
	// local branch. Tags and SHAs only resolve through the plain form.
	for _, rev := range []string{"refs/remotes/origin/" + revision, revision} {
		hash, err := r.ResolveRevision(plumbing.Revision(rev))
		if err == nil {
			return hash.String(), nil
		}
	}

	return "", fmt.Errorf("failed to resolve revision %q", revision)
}

func (g *gitClient) CleanUp(path string) error {
	err := os.RemoveAll(path)
	if err != nil {
		return fmt.Errorf("failed to clean up repository: %w", err)
	}

	return nil
}
