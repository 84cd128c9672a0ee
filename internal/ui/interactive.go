package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ljgarcia/gitstart/internal/git"
)

// Section identifiers for the form variant's navigation.
const (
	SectionDirectory   = "directory"
	SectionCredentials = "credentials"
	SectionInit        = "init"
	SectionIgnore      = "gitignore"
	SectionCommit      = "commit"
	SectionRemote      = "remote"
	SectionPush        = "push"
	SectionExit        = "exit"
)

// SelectSection renders the persistent navigation of the form variant.
// The current workspace is shown in the description so the user always
// knows where operations will run.
func SelectSection(workspaceDir string) (string, error) {
	description := "No project directory selected yet"
	if workspaceDir != "" {
		description = "Project directory: " + workspaceDir
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Git & GitHub Setup").
				Description(description).
				Options(
					huh.NewOption("Select project directory", SectionDirectory),
					huh.NewOption("Configure Git credentials", SectionCredentials),
					huh.NewOption("Initialize local repository", SectionInit),
					huh.NewOption("Create .gitignore", SectionIgnore),
					huh.NewOption("Stage and commit changes", SectionCommit),
					huh.NewOption("Link remote repository", SectionRemote),
					huh.NewOption("Push to GitHub", SectionPush),
					huh.NewOption("Exit", SectionExit),
				).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return selected, nil
}

// PromptDirectory asks for the project directory path.
func PromptDirectory() (string, error) {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project directory").
				Description("Full path to the project root").
				Placeholder("/home/user/code/piano").
				Value(&path).
				Validate(validateDirectory),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return path, nil
}

func validateDirectory(s string) error {
	path := strings.Trim(strings.TrimSpace(s), `"'`)
	if path == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not an existing directory")
	}
	return nil
}

// Credential choices offered when an identity already exists.
const (
	CredentialKeep   = "keep"
	CredentialUpdate = "update"
	CredentialCancel = "cancel"
)

// SelectCredentialAction asks what to do with an existing identity.
func SelectCredentialAction(id git.Identity) (string, error) {
	var choice string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Existing Git configuration found").
				Description(fmt.Sprintf("Name: %s\nEmail: %s", id.Name, id.Email)).
				Options(
					huh.NewOption("Keep existing", CredentialKeep),
					huh.NewOption("Update", CredentialUpdate),
					huh.NewOption("Cancel", CredentialCancel),
				).
				Value(&choice),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return choice, nil
}

// PromptIdentity asks for a new name/email pair. Both fields are
// required; the form refuses submission while either is blank.
func PromptIdentity() (git.Identity, error) {
	var id git.Identity

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Git username").
				Value(&id.Name).
				Validate(requireNonEmpty("username")),
			huh.NewInput().
				Title("Git email").
				Placeholder("you@example.com").
				Value(&id.Email).
				Validate(requireNonEmpty("email")),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return git.Identity{}, NormalizeAbort(err)
	}

	return id, nil
}

// SelectIgnoreTemplates asks which template groups to apply plus any
// free-form entries (comma-separated). Returns the chosen keys and the
// parsed custom entries.
func SelectIgnoreTemplates(keys []string, patterns func(string) ([]string, bool)) ([]string, []string, error) {
	options := make([]huh.Option[string], 0, len(keys))
	for _, key := range keys {
		label := key
		if group, ok := patterns(key); ok {
			label = fmt.Sprintf("%s (%s)", key, strings.Join(group, ", "))
		}
		options = append(options, huh.NewOption(label, key))
	}

	var selected []string
	var custom string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select .gitignore templates").
				Description("Space to toggle, Enter to confirm").
				Options(options...).
				Value(&selected),
			huh.NewInput().
				Title("Custom entries").
				Description("Comma-separated, optional").
				Placeholder("dist/, *.secret").
				Value(&custom),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return nil, nil, NormalizeAbort(err)
	}

	return selected, splitEntries(custom), nil
}

// PromptCommitMessage asks for a non-empty commit message.
func PromptCommitMessage() (string, error) {
	var message string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Commit message").
				Placeholder("initial commit").
				Value(&message).
				Validate(requireNonEmpty("commit message")),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return message, nil
}

// PromptRemoteURL asks for a GitHub repository URL; submission is
// refused until the URL matches the accepted patterns.
func PromptRemoteURL() (string, error) {
	var url string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub repository URL").
				Placeholder("https://github.com/username/repo.git").
				Value(&url).
				Validate(validateRemoteURL),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", NormalizeAbort(err)
	}

	return url, nil
}

func validateRemoteURL(s string) error {
	if !git.ValidRemoteURL(strings.TrimSpace(s)) {
		return fmt.Errorf("must start with https://github.com/ or git@github.com: and end with .git")
	}
	return nil
}

// ConfirmPush asks before pushing, since the push may prompt for
// credentials or fail on diverged history.
func ConfirmPush(remote, branch string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Push to GitHub").
				Description(fmt.Sprintf("Push branch %q to %q with upstream tracking?", branch, remote)).
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// splitEntries parses a comma-separated input into trimmed non-empty
// entries.
func splitEntries(input string) []string {
	var entries []string
	for _, entry := range strings.Split(input, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
