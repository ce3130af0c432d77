package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderProfile() string {
	sum := a.assistant.Profile().Summarize()
	boxWidth := min(60, a.width-4)
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
	}
	row := func(label, value string) string {
		return styleLabel.Render(label) + styleValue.Render(value)
	}

	var b strings.Builder
	b.WriteString(center(styleLogo.Render("Your Profile")))
	b.WriteString("\n\n")

	tabs := "Learning..."
	if n := sum.PreferredTabCount; n != nil && *n > 0 {
		tabs = fmt.Sprintf("%d", *n)
	}
	stats := []string{
		styleSubtitle.Render("📊 Usage Stats"),
		row("Guides Created", fmt.Sprintf("%d", sum.GuidesCreated)),
		row("Sessions", fmt.Sprintf("%d", sum.Sessions)),
		row("Preferred Tab Count", tabs),
	}
	b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(strings.Join(stats, "\n"))))
	b.WriteString("\n")

	if len(sum.ContentTypes) > 0 {
		lines := []string{styleSubtitle.Render("📁 Content Types")}
		for _, c := range sum.ContentTypes {
			line := fmt.Sprintf("%s %s (%d)", c.Icon, c.Label, c.Count)
			if c.Frequent {
				line = styleLearnedAction.Render(line + "  frequent")
			}
			lines = append(lines, line)
		}
		b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(strings.Join(lines, "\n"))))
		b.WriteString("\n")
	}

	if len(sum.StructureNames) > 0 {
		lines := []string{styleSubtitle.Render("📋 Saved Structures")}
		for _, name := range sum.StructureNames {
			lines = append(lines, "• "+name)
		}
		b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(strings.Join(lines, "\n"))))
		b.WriteString("\n")
	}

	if len(sum.TabNames) > 0 {
		body := styleSubtitle.Render("🏷️ Your Tab Names") + "\n" + wrapText(strings.Join(sum.TabNames, ", "), boxWidth-4)
		b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(body)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(styleStatusBar.Render("/reset clears your learning data  [Esc] Back")))

	return a.centerVertically(b.String())
}

func (a *App) renderConfirm() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true).
		Render("Clear your learning profile?")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	body := styleBox.Copy().
		Width(min(50, a.width-4)).
		BorderForeground(colorWarning).
		Render("Saved structures, preferences and usage stats will be removed. This cannot be undone.")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, body))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render("[y] Clear  [n] Cancel")))

	return a.centerVertically(b.String())
}
