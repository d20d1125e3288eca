package output

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SuccessMark is the glyph that starts a success line.
func SuccessMark() string { return successStyle.Render("✓") }

// FailureMark is the glyph that starts a diagnostic line.
func FailureMark() string { return failureStyle.Render("✗") }

// Hint styles a remediation hint.
func Hint(s string) string { return hintStyle.Render(s) }
