// Package git wraps the external git binary behind a small client.
// All repository state lives with git itself; this package only builds
// argument lists, runs them through an exec.Commander, and classifies
// the outcome.
package git

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ljgarcia/gitstart/internal/errors"
	"github.com/ljgarcia/gitstart/internal/exec"
)

// Client executes git operations in a working directory.
// Dir may be empty until a workspace is selected; commands then run in
// the process's current directory, which is all the version and global
// config queries need.
type Client struct {
	commander exec.Commander
	logger    *log.Logger

	// Dir is the active workspace all repository operations run in.
	Dir string

	// Remote is the name used when linking a remote. Defaults to origin.
	Remote string

	// Branch is the branch pushed to the remote. Defaults to main.
	Branch string
}

// NewClient creates a Client with the given Commander.
// If commander is nil, a RealCommander is used.
func NewClient(commander exec.Commander) *Client {
	if commander == nil {
		commander = &exec.RealCommander{}
	}
	return &Client{
		commander: commander,
		logger:    log.Default(),
		Remote:    "origin",
		Branch:    "main",
	}
}

// SetLogger replaces the logger used for command tracing.
func (c *Client) SetLogger(logger *log.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// run invokes git with the given arguments and converts a non-zero exit
// into a CommandError carrying git's stderr.
func (c *Client) run(ctx context.Context, args ...string) (exec.Result, error) {
	c.logger.Debug("running git", "args", args, "dir", c.Dir)

	result, err := c.commander.Run(ctx, c.Dir, "git", args...)
	if err != nil {
		if exec.IsNotFound(err) {
			return result, errors.ErrGitNotInstalled
		}
		return result, &errors.CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(result.Stderr),
			Err:    err,
		}
	}
	return result, nil
}

// IsInstalled reports whether the git binary can be launched at all.
// A non-zero exit from the version query still counts as installed;
// only a missing executable does not.
func (c *Client) IsInstalled(ctx context.Context) bool {
	_, err := c.commander.Run(ctx, "", "git", "--version")
	return err == nil || !exec.IsNotFound(err)
}

// GuideEntry is one platform's git installation instruction.
type GuideEntry struct {
	Platform    string
	Instruction string
}

// InstallGuide returns installation guidance for the three supported
// platforms. The entries are static data; acting on them is up to the
// user.
func InstallGuide() []GuideEntry {
	return []GuideEntry{
		{Platform: "Windows", Instruction: "https://git-scm.com/download/win"},
		{Platform: "macOS", Instruction: "https://git-scm.com/download/mac"},
		{Platform: "Linux", Instruction: "sudo apt-get install git"},
	}
}
