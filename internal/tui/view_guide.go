package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/itabs/internal/document"
	"github.com/sant0-9/itabs/internal/steps"
)

// renderGuide shows the draft with the assistant closed.
func (a *App) renderGuide() string {
	g := a.state.guide
	session := a.assistant.Session()
	boxWidth := min(70, a.width-4)
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
	}

	var b strings.Builder
	if g.Content() == "" && len(g.Sections) == 0 {
		b.WriteString(center(a.renderWelcome()))
		b.WriteString("\n\n")
	}

	// Step tracker
	var stepParts []string
	for id := steps.First; id <= steps.Last; id++ {
		label := fmt.Sprintf("%d %s", id, strings.TrimPrefix(steps.Get(id).Context, fmt.Sprintf("Step %d: ", id)))
		if id == session.Step {
			stepParts = append(stepParts, styleLogo.Render(label))
		} else {
			stepParts = append(stepParts, styleSubtitle.Render(label))
		}
	}
	b.WriteString(center(strings.Join(stepParts, "  >  ")))
	b.WriteString("\n\n")

	// Form fields
	var fields []string
	for _, f := range document.Fields {
		v := g.Field(f)
		if v == "" {
			v = styleSubtitle.Render("-")
		}
		fields = append(fields, styleLabel.Render(string(f))+v)
	}
	b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(strings.Join(fields, "\n"))))
	b.WriteString("\n")

	// Sections
	var sections []string
	for i, s := range g.Sections {
		sections = append(sections, fmt.Sprintf("%d. %s", i+1, truncate(s.Title, boxWidth-8)))
	}
	if len(sections) == 0 {
		sections = append(sections, styleSubtitle.Render("No sections yet. /section add <title>"))
	}
	b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(strings.Join(sections, "\n"))))
	b.WriteString("\n")

	// Content
	if g.Content() != "" {
		var meta []string
		if doc := a.state.lastImport; doc != nil {
			meta = append(meta, doc.Name, strings.ToUpper(doc.Format), doc.SizeLabel())
			if doc.Pages > 0 {
				meta = append(meta, fmt.Sprintf("%d pages", doc.Pages))
			}
		}
		meta = append(meta, fmt.Sprintf("~%d words", len(strings.Fields(g.Content()))))
		if session.Detected != "" {
			meta = append(meta, session.Detected.Icon()+" "+session.Detected.Label())
		}
		text := truncate(strings.Join(strings.Fields(g.Content()), " "), 280)
		if doc := a.state.lastImport; doc != nil && doc.Content == g.Content() {
			text = doc.Preview
		}
		preview := wrapText(text, boxWidth-4)
		content := lipgloss.JoinVertical(lipgloss.Left, styleSubtitle.Render(strings.Join(meta, "  |  ")), preview)
		b.WriteString(center(styleBox.Copy().Width(boxWidth).BorderForeground(colorSuccess).Render(content)))
		b.WriteString("\n")
	}

	if t := a.state.toast; t != nil {
		b.WriteString(center(renderToast(t.Toast, boxWidth)))
		b.WriteString("\n")
	}

	b.WriteString(center(styleBox.Copy().Width(boxWidth).Render(a.state.input.View())))
	b.WriteString("\n")

	var status []string
	if a.state.notice != "" {
		status = append(status, a.state.notice)
	}
	assistantHint := "[Tab] Assistant"
	if session.Unread {
		assistantHint = "[Tab] Assistant (new message)"
	}
	status = append(status, assistantHint, "[/help]  [Esc] Quit")
	b.WriteString(center(styleStatusBar.Render(strings.Join(status, "  "))))

	return b.String()
}
