package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/itabs/internal/actions"
	"github.com/sant0-9/itabs/internal/assistant"
	"github.com/sant0-9/itabs/internal/steps"
)

// chatChromeHeight is everything on the chat screen except the transcript:
// header, actions, quick replies, toast, input box and status bar.
const chatChromeHeight = 14

// syncTranscript re-renders the chat history into the viewport.
func (a *App) syncTranscript(toBottom bool) {
	width := a.state.transcript.Width - 2
	var lines []string
	for _, msg := range a.state.chatHistory {
		lines = append(lines, renderMessage(msg, width)...)
		lines = append(lines, "")
	}
	a.state.transcript.SetContent(strings.Join(lines, "\n"))
	if toBottom {
		a.state.transcript.GotoBottom()
	}
}

func renderMessage(msg assistant.Message, width int) []string {
	switch msg.Role {
	case assistant.RoleUser:
		lines := strings.Split(wrapText(msg.Content, width-2), "\n")
		for i, line := range lines {
			prefix := "> "
			if i > 0 {
				prefix = "  "
			}
			lines[i] = styleUser.Render(prefix + line)
		}
		return lines

	case assistant.RoleSystem:
		return []string{styleSystem.Width(width).Render("  " + plainMarkup(msg.Content))}

	default:
		body := lipgloss.NewStyle().Width(width - 2).Render(renderMarkup(msg.Content))
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = styleAssistant.Render("  " + line)
		}
		if msg.InsightSaved {
			lines = append(lines, styleInsight.Render("  🧠 Insight saved"))
		}
		return lines
	}
}

func (a *App) renderChat() string {
	boxWidth := min(70, a.width-4)
	session := a.assistant.Session()
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
	}

	// === HEADER ===
	var header strings.Builder
	titleText := "iTabs Assistant"
	if session.Learning {
		titleText += "  🧠 learning..."
	}
	header.WriteString(center(styleLogo.Render(titleText)))
	header.WriteString("\n")
	header.WriteString(center(styleSubtitle.Render(steps.Get(session.Step).Context)))
	header.WriteString("\n\n")

	// === TRANSCRIPT ===
	transcript := a.state.transcript.View()
	if session.Typing {
		transcript += "\n  " + a.state.typing.View() + styleSubtitle.Render(" typing...")
	}

	// === ACTIONS & QUICK REPLIES ===
	var panel strings.Builder
	panel.WriteString(renderActions(a.state.actions, boxWidth))
	panel.WriteString("\n")
	panel.WriteString(renderQuickReplies(a.state.quickReplies, boxWidth))

	// === FOOTER ===
	var footer strings.Builder
	if t := a.state.toast; t != nil {
		footer.WriteString(center(renderToast(t.Toast, boxWidth)))
		footer.WriteString("\n")
	}
	inputBox := styleBox.Copy().
		Width(boxWidth).
		Render(a.state.input.View())
	footer.WriteString(center(inputBox))
	footer.WriteString("\n")

	var statusParts []string
	if a.state.notice != "" {
		statusParts = append(statusParts, a.state.notice)
	}
	if !a.state.transcript.AtBottom() {
		statusParts = append(statusParts, fmt.Sprintf("[scroll: %.0f%%]", a.state.transcript.ScrollPercent()*100))
	}
	statusParts = append(statusParts, "[/a N] Action  [/r N] Reply  [Tab] Close  [/help]")
	footer.WriteString(center(styleStatusBar.Render(strings.Join(statusParts, "  "))))

	body := lipgloss.JoinVertical(lipgloss.Left, transcript, "", panel.String())
	return header.String() + center(lipgloss.NewStyle().Width(boxWidth).Render(body)) + "\n" + footer.String()
}

func renderActions(list []actions.Action, width int) string {
	if len(list) == 0 {
		return ""
	}
	parts := make([]string, len(list))
	for i, act := range list {
		label := fmt.Sprintf("%d %s %s", i+1, act.Icon, truncate(act.Label, 32))
		style := styleAction
		if act.Learned {
			style = styleLearnedAction
		}
		parts[i] = style.Render("[" + label + "]")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, " "))
}

func renderQuickReplies(replies []string, width int) string {
	if len(replies) == 0 {
		return ""
	}
	parts := make([]string, len(replies))
	for i, r := range replies {
		parts[i] = styleQuickReply.Render(fmt.Sprintf("r%d %s", i+1, r))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, "  "))
}

func renderToast(t assistant.Toast, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styleStrong.Render(t.Title),
		styleSubtitle.Render(t.Message),
	)
	return styleToast.Copy().Width(min(40, width)).Render(body)
}
