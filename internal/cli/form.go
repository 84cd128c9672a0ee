package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ljgarcia/gitstart/internal/config"
	"github.com/ljgarcia/gitstart/internal/git"
	"github.com/ljgarcia/gitstart/internal/ignore"
	"github.com/ljgarcia/gitstart/internal/ui"
	"github.com/ljgarcia/gitstart/internal/workspace"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Run the form-based setup variant",
	Long: `Runs the setup flow as navigable form sections instead of the
digit-keyed menu. Sections can be visited in any order and revisited at
any time; each renders its own inputs with an explicit submit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("form mode requires a terminal; run gitstart without arguments instead")
		}

		client, builder := buildComponents()
		f := &formFlow{
			git:       client,
			ignore:    builder,
			workspace: &workspace.Workspace{},
		}
		return f.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// formFlow holds the session state of the form variant.
type formFlow struct {
	git       *git.Client
	ignore    *ignore.Builder
	workspace *workspace.Workspace
}

// run loops over the section navigation until the user exits. Aborting
// inside a section returns to the navigation; aborting the navigation
// itself ends the session.
func (f *formFlow) run(ctx context.Context) error {
	if !f.git.IsInstalled(ctx) {
		ui.PrintWarning("Git is not installed. Repository operations will fail until it is.")
		for _, entry := range git.InstallGuide() {
			ui.PrintInfo("%s: %s", entry.Platform, entry.Instruction)
		}
	}

	for {
		section, err := ui.SelectSection(f.workspace.Dir)
		if err != nil {
			if ui.IsAbort(err) {
				return nil
			}
			return err
		}

		if section == ui.SectionExit {
			return nil
		}

		if err := f.dispatch(ctx, section); err != nil {
			if ui.IsAbort(err) {
				continue
			}
			ui.PrintError("%v", err)
		}
	}
}

func (f *formFlow) dispatch(ctx context.Context, section string) error {
	// Everything beyond directory selection and credentials operates on
	// the selected workspace.
	switch section {
	case ui.SectionInit, ui.SectionIgnore, ui.SectionCommit, ui.SectionRemote, ui.SectionPush:
		if err := f.workspace.Require(); err != nil {
			return fmt.Errorf("select a project directory first: %w", err)
		}
	}

	switch section {
	case ui.SectionDirectory:
		return f.selectDirectory()
	case ui.SectionCredentials:
		return f.configureCredentials(ctx)
	case ui.SectionInit:
		if err := f.git.Init(ctx); err != nil {
			return err
		}
		ui.PrintSuccess("Local Git repository initialized!")
	case ui.SectionIgnore:
		return f.createIgnoreFile()
	case ui.SectionCommit:
		return f.stageAndCommit(ctx)
	case ui.SectionRemote:
		return f.linkRemote(ctx)
	case ui.SectionPush:
		return f.push(ctx)
	}
	return nil
}

// selectDirectory handles one submission; resubmission is user-driven
// through the navigation, with no internal retry loop.
func (f *formFlow) selectDirectory() error {
	path, err := ui.PromptDirectory()
	if err != nil {
		return err
	}
	if err := f.workspace.Select(path); err != nil {
		return err
	}
	f.git.Dir = f.workspace.Dir
	ui.PrintSuccess("Project directory set to: %s", f.workspace.Dir)

	if project, err := config.LoadProject(f.workspace.Dir); err == nil && project != nil && project.RepositoryURL != "" {
		ui.PrintInfo("Previously linked remote: %s", project.RepositoryURL)
	}
	return nil
}

func (f *formFlow) configureCredentials(ctx context.Context) error {
	if existing, ok := f.git.ReadIdentity(ctx); ok {
		choice, err := ui.SelectCredentialAction(existing)
		if err != nil {
			return err
		}
		switch choice {
		case ui.CredentialKeep:
			ui.PrintSuccess("Existing Git configuration retained.")
			return nil
		case ui.CredentialCancel:
			ui.PrintInfo("Git configuration setup cancelled.")
			return nil
		}
	}

	id, err := ui.PromptIdentity()
	if err != nil {
		return err
	}
	if err := f.git.SetIdentity(ctx, id); err != nil {
		return err
	}
	ui.PrintSuccess("Git credentials configured successfully!")
	return nil
}

func (f *formFlow) createIgnoreFile() error {
	keys, custom, err := ui.SelectIgnoreTemplates(f.ignore.Keys(), f.ignore.Patterns)
	if err != nil {
		return err
	}

	entries, err := f.ignore.Build(keys, custom)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ui.PrintInfo("No entries selected; .gitignore not created.")
		return nil
	}

	if err := ignore.Write(f.workspace.Dir, entries); err != nil {
		return err
	}
	ui.PrintSuccess(".gitignore created with %d entries.", len(entries))
	return nil
}

func (f *formFlow) stageAndCommit(ctx context.Context) error {
	message, err := ui.PromptCommitMessage()
	if err != nil {
		return err
	}
	if err := f.git.Commit(ctx, message); err != nil {
		return err
	}
	ui.PrintSuccess("Changes staged and committed!")
	return nil
}

func (f *formFlow) linkRemote(ctx context.Context) error {
	if _, linked := f.git.RemoteURL(ctx); !linked {
		ui.PrintHeader("GitHub Repository Creation Guide")
		ui.PrintInfo("1. Visit https://github.com/new")
		ui.PrintInfo("2. Create an empty repository")
		ui.PrintInfo("3. Do NOT add README, .gitignore, or LICENSE")
	}

	url, err := ui.PromptRemoteURL()
	if err != nil {
		return err
	}
	if err := f.git.LinkRemote(ctx, url); err != nil {
		return err
	}
	ui.PrintSuccess("Remote repository linked successfully!")

	project := &config.Project{RepositoryURL: url, DefaultBranch: f.git.Branch}
	if err := config.SaveProject(f.workspace.Dir, project); err != nil {
		ui.PrintWarning("Could not save project record: %v", err)
	}
	return nil
}

func (f *formFlow) push(ctx context.Context) error {
	confirmed, err := ui.ConfirmPush(f.git.Remote, f.git.Branch)
	if err != nil || !confirmed {
		return err
	}

	var pushErr error
	if err := spinner.New().
		Title(fmt.Sprintf("Pushing to %s...", f.git.Remote)).
		Action(func() { pushErr = f.git.Push(ctx) }).
		Run(); err != nil {
		return err
	}
	if pushErr != nil {
		return pushErr
	}

	ui.PrintSuccess("Code pushed to GitHub!")
	return nil
}
