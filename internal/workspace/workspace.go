// Package workspace tracks the project directory all repository
// operations run in.
package workspace

import (
	"fmt"
	"os"
	"strings"

	"github.com/ljgarcia/gitstart/internal/errors"
)

// Workspace holds the active project directory. Dir is empty until a
// directory has been selected; no repository operation may proceed
// while it is unset.
type Workspace struct {
	Dir string
}

// Selected reports whether a directory has been chosen.
func (w *Workspace) Selected() bool {
	return w.Dir != ""
}

// Select validates path and makes it the active directory. Surrounding
// whitespace and quotes are stripped first, matching what users paste
// from file managers. On success the process working directory is
// changed as well, so externally launched tools inherit it. On failure
// the active directory is left unchanged.
func (w *Workspace) Select(path string) error {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		return fmt.Errorf("directory path: %w", errors.ErrEmptyField)
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", path, errors.ErrInvalidDirectory)
	}

	if err := os.Chdir(path); err != nil {
		return fmt.Errorf("changing directory to %q: %w", path, err)
	}

	w.Dir = path
	return nil
}

// Require returns an error when no directory has been selected yet.
func (w *Workspace) Require() error {
	if !w.Selected() {
		return errors.ErrNoWorkspace
	}
	return nil
}
