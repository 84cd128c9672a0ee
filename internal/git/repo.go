package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/ljgarcia/gitstart/internal/errors"
)

// ValidRemoteURL reports whether url looks like a GitHub repository URL:
// an https://github.com/ or git@github.com: prefix and a .git suffix.
func ValidRemoteURL(url string) bool {
	if !strings.HasSuffix(url, ".git") {
		return false
	}
	return strings.HasPrefix(url, "https://github.com/") ||
		strings.HasPrefix(url, "git@github.com:")
}

// Init initialises a repository in the active workspace.
// git init is idempotent; re-running on an initialised workspace is not
// guarded against here.
func (c *Client) Init(ctx context.Context) error {
	if _, err := c.run(ctx, "init"); err != nil {
		return fmt.Errorf("initialising repository: %w", err)
	}
	return nil
}

// Commit stages all changes and commits them with the given message.
// A blank message is rejected before any command is issued.
func (c *Client) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message: %w", errors.ErrEmptyField)
	}

	if _, err := c.run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	if _, err := c.run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// RemoteURL returns the URL of the configured remote, if one exists.
func (c *Client) RemoteURL(ctx context.Context) (string, bool) {
	result, err := c.run(ctx, "remote", "get-url", c.Remote)
	if err != nil {
		return "", false
	}
	url := strings.TrimSpace(result.Stdout)
	return url, url != ""
}

// LinkRemote registers url as the repository's remote.
// The URL is validated and the remote name checked for a prior
// registration before any mutating command is issued.
func (c *Client) LinkRemote(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if !ValidRemoteURL(url) {
		return fmt.Errorf("%q: %w", url, errors.ErrInvalidRemoteURL)
	}

	if existing, ok := c.RemoteURL(ctx); ok {
		return fmt.Errorf("%s -> %s: %w", c.Remote, existing, errors.ErrRemoteExists)
	}

	if _, err := c.run(ctx, "remote", "add", c.Remote, url); err != nil {
		return fmt.Errorf("adding remote: %w", err)
	}
	return nil
}

// Push renames the current branch to the configured branch name and
// pushes it with upstream tracking. Both steps must succeed.
func (c *Client) Push(ctx context.Context) error {
	if _, err := c.run(ctx, "branch", "-M", c.Branch); err != nil {
		return fmt.Errorf("renaming branch: %w", err)
	}
	if _, err := c.run(ctx, "push", "-u", c.Remote, c.Branch); err != nil {
		return fmt.Errorf("pushing to %s: %w", c.Remote, err)
	}
	return nil
}
