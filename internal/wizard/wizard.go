// Package wizard implements the terminal variant of the setup flow:
// a digit-keyed menu looping over the repository operations until the
// user exits. All IO runs through injected reader/writer so the loop
// can be driven by tests.
package wizard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ljgarcia/gitstart/internal/config"
	gserrors "github.com/ljgarcia/gitstart/internal/errors"
	"github.com/ljgarcia/gitstart/internal/git"
	"github.com/ljgarcia/gitstart/internal/ignore"
	"github.com/ljgarcia/gitstart/internal/workspace"
)

// Menu choices, keyed by the digits printed in the menu.
const (
	choiceCredentials = "1"
	choiceInit        = "2"
	choiceIgnore      = "3"
	choiceCommit      = "4"
	choiceRemote      = "5"
	choicePush        = "6"
	choiceExit        = "7"
)

// Wizard drives the terminal menu over the shared operation components.
type Wizard struct {
	git       *git.Client
	workspace *workspace.Workspace
	ignore    *ignore.Builder
	logger    *log.Logger

	in  *bufio.Scanner
	out io.Writer

	// inputClosed is set once the scanner is exhausted (stdin closed).
	// Prompts then yield empty answers, so loops that would otherwise
	// re-prompt forever must check it and end the session instead.
	inputClosed bool
}

// New creates a Wizard reading prompts from in and writing to out.
func New(client *git.Client, builder *ignore.Builder, in io.Reader, out io.Writer) *Wizard {
	return &Wizard{
		git:       client,
		workspace: &workspace.Workspace{},
		ignore:    builder,
		logger:    log.Default(),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run executes the session: environment check, directory selection,
// then the menu loop until the user exits. A failed directory
// selection is fatal for the session; a failed operation is not.
func (w *Wizard) Run(ctx context.Context) error {
	if !w.git.IsInstalled(ctx) {
		w.printInstallGuide()
		return gserrors.ErrGitNotInstalled
	}
	w.printf("Git is already installed.\n")

	if !w.selectDirectory() {
		w.printf("Project directory selection failed. Exiting.\n")
		return gserrors.ErrNoWorkspace
	}
	w.git.Dir = w.workspace.Dir

	for {
		w.printMenu()
		choice := w.prompt("Select an option (1-7): ")
		if w.inputClosed {
			w.printf("\nInput closed. Exiting Git Setup Wizard...\n")
			return nil
		}

		switch choice {
		case choiceCredentials:
			w.configureCredentials(ctx)
		case choiceInit:
			w.initRepository(ctx)
		case choiceIgnore:
			w.createIgnoreFile()
		case choiceCommit:
			w.stageAndCommit(ctx)
		case choiceRemote:
			w.linkRemote(ctx)
		case choicePush:
			w.push(ctx)
		case choiceExit:
			w.printf("Exiting Git Setup Wizard...\n")
			return nil
		default:
			w.fail("Invalid option. Try again.")
		}
	}
}

func (w *Wizard) printInstallGuide() {
	w.printf("Git is not installed.\n")
	w.printf("\n--- Git Installation Guide ---\n")
	for _, entry := range git.InstallGuide() {
		w.printf("%s: %s\n", entry.Platform, entry.Instruction)
	}
	w.prompt("Press Enter after installing Git...")
}

// selectDirectory loops until a valid directory is chosen or the user
// declines to retry.
func (w *Wizard) selectDirectory() bool {
	for {
		path := w.prompt("Enter full project directory path: ")
		if w.inputClosed {
			return false
		}
		if err := w.workspace.Select(path); err == nil {
			w.success("Project directory set to: %s", w.workspace.Dir)
			w.showProjectRecord()
			return true
		}

		w.fail("Invalid directory. Please check the path and try again.")
		if !w.confirm("Would you like to try again? (y/n): ") {
			return false
		}
	}
}

// showProjectRecord reports a previously linked remote, if a project
// record exists from an earlier session.
func (w *Wizard) showProjectRecord() {
	project, err := config.LoadProject(w.workspace.Dir)
	if err != nil {
		w.logger.Debug("loading project record", "err", err)
		return
	}
	if project != nil && project.RepositoryURL != "" {
		w.printf("Previously linked remote: %s\n", project.RepositoryURL)
	}
}

func (w *Wizard) printMenu() {
	w.printf("\n--- Git & GitHub Setup Wizard ---\n")
	w.printf("Current Directory: %s\n", w.workspace.Dir)
	w.printf("1. Configure Git Credentials\n")
	w.printf("2. Initialize Local Repository\n")
	w.printf("3. Create .gitignore\n")
	w.printf("4. Stage and Commit Changes\n")
	w.printf("5. Link Remote Repository\n")
	w.printf("6. Push to GitHub\n")
	w.printf("7. Exit\n")
}

func (w *Wizard) configureCredentials(ctx context.Context) {
	if existing, ok := w.git.ReadIdentity(ctx); ok {
		w.printf("\n--- Existing Git Configuration Found ---\n")
		w.printf("Current Username: %s\n", existing.Name)
		w.printf("Current Email: %s\n", existing.Email)

		switch strings.ToLower(w.prompt("Do you want to (K)eep existing, (U)pdate, or (C)ancel? ")) {
		case "k":
			w.success("Existing Git configuration retained.")
			return
		case "c":
			w.printf("Git configuration setup cancelled.\n")
			return
		}
	}

	id := git.Identity{
		Name:  w.prompt("Enter Git Username: "),
		Email: w.prompt("Enter Git Email: "),
	}
	if err := w.git.SetIdentity(ctx, id); err != nil {
		w.fail("Configuration failed: %v", err)
		return
	}
	w.success("Git credentials configured successfully!")
}

func (w *Wizard) initRepository(ctx context.Context) {
	if err := w.git.Init(ctx); err != nil {
		w.fail("Repository initialization failed: %v", err)
		return
	}
	w.success("Local Git repository initialized!")
}

func (w *Wizard) createIgnoreFile() {
	keys := w.ignore.Keys()
	customChoice := strconv.Itoa(len(keys) + 1)
	skipChoice := strconv.Itoa(len(keys) + 2)

	w.printf("\n--- .gitignore Configuration ---\n")
	w.printf("Select predefined .gitignore templates (multiple choices allowed):\n")
	for i, key := range keys {
		patterns, _ := w.ignore.Patterns(key)
		w.printf("%d. %s (%s)\n", i+1, key, strings.Join(patterns, ", "))
	}
	w.printf("%s. Custom manual entry\n", customChoice)
	w.printf("%s. Skip .gitignore creation\n", skipChoice)

	var selected []string
	var custom []string
	for _, choice := range strings.Split(w.prompt("Enter your choices (comma-separated): "), ",") {
		choice = strings.TrimSpace(choice)
		switch {
		case choice == skipChoice:
			w.printf(".gitignore creation skipped.\n")
			return
		case choice == customChoice:
			entries := w.prompt("Enter custom ignores (comma-separated): ")
			for _, entry := range strings.Split(entries, ",") {
				if entry = strings.TrimSpace(entry); entry != "" {
					custom = append(custom, entry)
				}
			}
		default:
			if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(keys) {
				selected = append(selected, keys[n-1])
			}
		}
	}

	entries, err := w.ignore.Build(selected, custom)
	if err != nil {
		w.fail(".gitignore configuration error: %v", err)
		return
	}
	if len(entries) == 0 {
		w.printf("No entries selected; .gitignore not created.\n")
		return
	}

	if err := ignore.Write(w.workspace.Dir, entries); err != nil {
		w.fail(".gitignore creation error: %v", err)
		return
	}
	w.success(".gitignore file created successfully!")
	w.printf("Ignored files: %s\n", strings.Join(entries, ", "))
}

func (w *Wizard) stageAndCommit(ctx context.Context) {
	message := w.prompt("Enter commit message: ")
	if err := w.git.Commit(ctx, message); err != nil {
		if gserrors.IsValidation(err) {
			w.fail("Commit message cannot be empty.")
			return
		}
		w.fail("Staging or commit failed: %v", err)
		return
	}
	w.success("Changes staged and committed!")
}

func (w *Wizard) linkRemote(ctx context.Context) {
	if _, linked := w.git.RemoteURL(ctx); !linked {
		w.printCreationGuide()
	}

	for {
		url := w.prompt("Enter full GitHub Repository URL (e.g., https://github.com/username/repo.git): ")

		err := w.git.LinkRemote(ctx, url)
		switch {
		case err == nil:
			w.success("Remote repository linked successfully!")
			w.saveProjectRecord(url)
			return
		case gserrors.IsValidation(err):
			w.fail("Invalid GitHub repository URL. Please provide a valid URL.")
			if !w.confirm("Try again? (y/n): ") {
				return
			}
		default:
			w.fail("Failed to link repository: %v", err)
			return
		}
	}
}

func (w *Wizard) printCreationGuide() {
	w.printf("\n--- GitHub Repository Creation Guide ---\n")
	w.printf("1. Visit https://github.com/new\n")
	w.printf("2. Create an empty repository\n")
	w.printf("3. Do NOT add README, .gitignore, or LICENSE\n")
}

func (w *Wizard) saveProjectRecord(url string) {
	project := &config.Project{
		RepositoryURL: url,
		DefaultBranch: w.git.Branch,
	}
	if err := config.SaveProject(w.workspace.Dir, project); err != nil {
		w.logger.Warn("saving project record", "err", err)
	}
}

func (w *Wizard) push(ctx context.Context) {
	if err := w.git.Push(ctx); err != nil {
		w.fail("GitHub push failed: %v", err)
		return
	}
	w.success("Code pushed to GitHub!")
}

func (w *Wizard) prompt(label string) string {
	fmt.Fprint(w.out, label)
	if !w.in.Scan() {
		w.inputClosed = true
		return ""
	}
	return strings.TrimSpace(w.in.Text())
}

func (w *Wizard) confirm(label string) bool {
	return strings.ToLower(w.prompt(label)) == "y"
}

func (w *Wizard) printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

func (w *Wizard) success(format string, args ...any) {
	w.printf("✅ "+format+"\n", args...)
}

func (w *Wizard) fail(format string, args ...any) {
	w.printf("❌ "+format+"\n", args...)
}
