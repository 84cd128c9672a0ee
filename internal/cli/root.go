// Package cli wires the cobra command tree over the shared operation
// components. The root command runs the terminal-menu wizard; the form
// subcommand runs the form-based variant over the same components.
package cli

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ljgarcia/gitstart/internal/config"
	gserrors "github.com/ljgarcia/gitstart/internal/errors"
	"github.com/ljgarcia/gitstart/internal/git"
	"github.com/ljgarcia/gitstart/internal/ignore"
	"github.com/ljgarcia/gitstart/internal/ui"
	"github.com/ljgarcia/gitstart/internal/wizard"
)

var rootCmd = &cobra.Command{
	Use:   "gitstart",
	Short: "Interactive wizard for Git and GitHub project setup",
	Long: `Gitstart guides you through setting up a local Git repository
and connecting it to a remote GitHub repository: credentials, init,
.gitignore, first commit, remote linking and push.

Run without arguments for the terminal menu, or use "gitstart form"
for the form-based variant.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, builder := buildComponents()
		w := wizard.New(client, builder, os.Stdin, os.Stdout)
		return w.Run(cmd.Context())
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !ui.IsAbort(err) && !wizardReported(err) {
		ui.PrintError("%v", err)
	}
	return err
}

// wizardReported covers startup failures the wizard has already
// explained to the user in its own format.
func wizardReported(err error) bool {
	return errors.Is(err, gserrors.ErrGitNotInstalled) || errors.Is(err, gserrors.ErrNoWorkspace)
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose command tracing")
}

// buildComponents assembles the git client and ignore builder from the
// global settings. A broken settings file degrades to defaults with a
// warning rather than blocking the session.
func buildComponents() (*git.Client, *ignore.Builder) {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Warn("loading settings, falling back to defaults", "err", err)
		settings = &config.Settings{DefaultBranch: "main", Remote: "origin"}
	}

	client := git.NewClient(nil)
	client.Remote = settings.Remote
	client.Branch = settings.DefaultBranch

	return client, ignore.NewBuilder(settings.Templates)
}
