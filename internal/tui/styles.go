package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles shared by the shell's rendered output.
var (
	// PromptStyle renders the working-directory prompt.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// HeaderStyle renders the listing header row.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// DirStyle renders directory names in listings.
	DirStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// ErrorStyle renders command failures reported to the user.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// SuccessStyle renders confirmation messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// MutedStyle renders hints and secondary text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)
