package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// User-facing output functions with status glyphs.
// These write to UserOut/UserErr directly for CLI output,
// separate from the structured debug logging.

var (
	// UserOut receives info and success messages.
	UserOut io.Writer = os.Stdout

	// UserErr receives warnings and errors.
	UserErr io.Writer = os.Stderr
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// UserInfo prints an info message to UserOut.
func UserInfo(format string, args ...interface{}) {
	userf(UserOut, infoStyle.Render("ℹ"), format, args...)
}

// UserSuccess prints a success message to UserOut.
func UserSuccess(format string, args ...interface{}) {
	userf(UserOut, successStyle.Render("✓"), format, args...)
}

// UserWarning prints a warning message to UserErr.
func UserWarning(format string, args ...interface{}) {
	userf(UserErr, warningStyle.Render("⚠"), format, args...)
}

// UserError prints an error message to UserErr.
func UserError(format string, args ...interface{}) {
	userf(UserErr, errorStyle.Render("✗"), format, args...)
}

func userf(w io.Writer, glyph, format string, args ...interface{}) {
	fmt.Fprintf(w, glyph+" "+format+"\n", args...)
}
