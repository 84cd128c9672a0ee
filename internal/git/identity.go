package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/ljgarcia/gitstart/internal/errors"
)

// Identity is the name/email pair git associates with authored commits.
type Identity struct {
	Name  string
	Email string
}

// ReadIdentity queries git's global user.name and user.email.
// The identity is returned only when both queries succeed and yield a
// value; otherwise ok is false. An unset key is not an error.
func (c *Client) ReadIdentity(ctx context.Context) (Identity, bool) {
	name, err := c.run(ctx, "config", "--global", "user.name")
	if err != nil {
		return Identity{}, false
	}
	email, err := c.run(ctx, "config", "--global", "user.email")
	if err != nil {
		return Identity{}, false
	}

	id := Identity{
		Name:  strings.TrimSpace(name.Stdout),
		Email: strings.TrimSpace(email.Stdout),
	}
	if id.Name == "" || id.Email == "" {
		return Identity{}, false
	}
	return id, true
}

// SetIdentity writes the identity to git's global configuration.
// Both fields are required; an empty field is rejected before any
// command is issued.
func (c *Client) SetIdentity(ctx context.Context, id Identity) error {
	if strings.TrimSpace(id.Name) == "" {
		return fmt.Errorf("user name: %w", errors.ErrEmptyField)
	}
	if strings.TrimSpace(id.Email) == "" {
		return fmt.Errorf("user email: %w", errors.ErrEmptyField)
	}

	if _, err := c.run(ctx, "config", "--global", "user.name", id.Name); err != nil {
		return fmt.Errorf("setting user.name: %w", err)
	}
	if _, err := c.run(ctx, "config", "--global", "user.email", id.Email); err != nil {
		return fmt.Errorf("setting user.email: %w", err)
	}
	return nil
}
