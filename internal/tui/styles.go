package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Chat roles
	styleUser      = lipgloss.NewStyle().Foreground(colorSecondary)
	styleAssistant = lipgloss.NewStyle().Foreground(colorWhite)
	styleSystem    = lipgloss.NewStyle().Foreground(colorSuccess).Italic(true)
	styleInsight   = lipgloss.NewStyle().Foreground(colorPrimary)
	styleStrong    = lipgloss.NewStyle().Bold(true)
	styleTyping    = lipgloss.NewStyle().Foreground(colorPrimary)

	// Smart actions
	styleAction        = lipgloss.NewStyle().Foreground(colorWhite)
	styleLearnedAction = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleQuickReply    = lipgloss.NewStyle().Foreground(colorSecondary)

	// Toast
	styleToast = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().Foreground(colorMuted).Width(22)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)
