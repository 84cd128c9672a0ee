// Package ui holds the user-facing surface shared by both wizard
// variants: styled status output, huh prompts, and abort handling.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// PrintSuccess prints a green success line.
func PrintSuccess(format string, args ...any) {
	fmt.Println(successStyle.Render("✅ " + fmt.Sprintf(format, args...)))
}

// PrintError prints a red error line.
func PrintError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints an amber warning line.
func PrintWarning(format string, args ...any) {
	fmt.Println(warningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints a blue informational line.
func PrintInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintHeader prints a bold section header.
func PrintHeader(text string) {
	fmt.Println(headerStyle.Render(text))
}
