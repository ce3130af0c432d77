package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Commands
	commands := []string{
		"  /step N                 Move the guide to step N (1-4)",
		"  /paste FILE             Import content from .txt, .md or .pdf",
		"  /content TEXT           Replace the content with TEXT",
		"  /section add TITLE      Add a section",
		"  /section rm N           Remove section N",
		"  /section rename N TITLE Rename section N",
		"  /section outline        Add sections from markdown headings",
		"  /set FIELD VALUE        Set brand_color, brand_name, client_name,",
		"                          audience or goal",
		"  /a N, /r N              Run smart action N, send quick reply N",
		"  /a NAME                 Run an action by name (e.g. /a numberSteps)",
		"  /learn, /detect         Learn from this session, detect content",
		"  /profile, /reset        Show or clear what was learned",
		"  /help, /quit",
		"",
		"  Anything else is sent to the assistant",
	}

	commandsBox := styleBox.Copy().
		Width(min(66, a.width-4)).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Tab            Open / close the assistant",
		"  Up/Down, PgUp  Scroll the conversation",
		"  Esc            Go back / Quit",
		"  Ctrl+C         Quit",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(min(66, a.width-4)).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
