package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/itabs/internal/actions"
	"github.com/sant0-9/itabs/internal/document"
	"github.com/sant0-9/itabs/internal/steps"
)

// command is a parsed slash command.
type command struct {
	name string
	args []string
	rest string
}

// parseCommand splits "/name a b c" into its name, fields and the raw text
// after the name. ok is false for input that is not a command.
func parseCommand(input string) (command, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return command{}, false
	}
	name, rest, _ := strings.Cut(input[1:], " ")
	rest = strings.TrimSpace(rest)
	return command{
		name: strings.ToLower(name),
		args: strings.Fields(rest),
		rest: rest,
	}, true
}

// index parses a 1-based position and checks it against n.
func index(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("expected a number from 1 to %d, got %q", n, arg)
	}
	return i - 1, nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()
	a.state.notice = ""

	cmd, ok := parseCommand(input)
	if !ok {
		if a.view != viewChat {
			a.setChatOpen(true)
		}
		a.assistant.Send(input)
		return nil
	}
	return a.runCommand(cmd)
}

func (a *App) runCommand(c command) tea.Cmd {
	switch c.name {
	case "help", "h":
		a.show(viewHelp)
	case "quit", "q":
		a.quitting = true
		return tea.Quit
	case "profile", "p":
		a.show(viewProfile)
	case "reset":
		a.show(viewConfirm)
	case "chat":
		a.setChatOpen(true)
	case "guide":
		a.setChatOpen(false)
	case "step":
		a.cmdStep(c)
	case "paste":
		if c.rest == "" {
			a.state.notice = "Usage: /paste <file>"
			return nil
		}
		return a.importFile(c.rest)
	case "content":
		a.setContent(c.rest)
	case "section", "s":
		a.cmdSection(c)
	case "set":
		a.cmdSet(c)
	case "a", "action":
		a.cmdAction(c)
	case "r", "reply":
		a.cmdReply(c)
	case "learn":
		a.assistant.Dispatch(a.ctx, actions.LearnSession)
	case "detect":
		a.assistant.Dispatch(a.ctx, actions.DetectContentType)
	default:
		a.state.notice = fmt.Sprintf("Unknown command /%s. Try /help.", c.name)
	}
	return nil
}

func (a *App) cmdStep(c command) {
	if len(c.args) != 1 {
		a.state.notice = "Usage: /step <1-4>"
		return
	}
	i, err := index(c.args[0], int(steps.Last))
	if err != nil {
		a.state.notice = err.Error()
		return
	}
	if !a.assistant.OnStepChanged(a.ctx, steps.ID(i+1)) {
		a.state.notice = fmt.Sprintf("Already at step %d", i+1)
	}
}

func (a *App) cmdSection(c command) {
	g := a.state.guide
	if len(c.args) == 0 {
		a.state.notice = "Usage: /section add <title> | rm <n> | rename <n> <title> | outline"
		return
	}

	switch c.args[0] {
	case "add":
		title := strings.TrimSpace(strings.TrimPrefix(c.rest, c.args[0]))
		if title == "" {
			a.state.notice = "Usage: /section add <title>"
			return
		}
		g.AddSection(title)
	case "rm", "remove":
		if len(c.args) != 2 {
			a.state.notice = "Usage: /section rm <n>"
			return
		}
		i, err := index(c.args[1], len(g.Sections))
		if err != nil {
			a.state.notice = err.Error()
			return
		}
		g.RemoveSection(i)
	case "rename":
		if len(c.args) < 3 {
			a.state.notice = "Usage: /section rename <n> <title>"
			return
		}
		i, err := index(c.args[1], len(g.Sections))
		if err != nil {
			a.state.notice = err.Error()
			return
		}
		g.SetSectionTitle(i, strings.Join(c.args[2:], " "))
	case "outline":
		titles := document.Outline(g.Content())
		if len(titles) == 0 {
			a.state.notice = "No markdown headings found in the content"
			return
		}
		for _, t := range titles {
			g.AddSection(t)
		}
		a.state.notice = fmt.Sprintf("Added %d sections from headings", len(titles))
	default:
		a.state.notice = fmt.Sprintf("Unknown section command %q", c.args[0])
		return
	}
	a.out().Refresh()
}

func (a *App) cmdSet(c command) {
	if len(c.args) == 0 {
		a.state.notice = "Usage: /set <field> <value>"
		return
	}
	f, ok := document.ParseField(strings.ToLower(c.args[0]))
	if !ok {
		a.state.notice = fmt.Sprintf("Unknown field %q", c.args[0])
		return
	}
	a.state.guide.SetField(f, strings.TrimSpace(strings.TrimPrefix(c.rest, c.args[0])))
	a.out().Refresh()
}

// cmdAction runs a listed action by position, or any action by its name
// (/a numberSteps).
func (a *App) cmdAction(c command) {
	if len(c.args) != 1 {
		a.state.notice = "Usage: /a <n|name>"
		return
	}
	if _, err := strconv.Atoi(c.args[0]); err != nil {
		kind := actions.ParseKind(c.args[0])
		if kind == actions.KindUnknown {
			a.state.notice = fmt.Sprintf("Unknown action %q", c.args[0])
			return
		}
		a.setChatOpen(true)
		a.assistant.Dispatch(a.ctx, kind)
		return
	}
	i, err := index(c.args[0], len(a.state.actions))
	if err != nil {
		a.state.notice = err.Error()
		return
	}
	a.setChatOpen(true)
	a.assistant.Dispatch(a.ctx, a.state.actions[i].Kind)
}

func (a *App) cmdReply(c command) {
	if len(c.args) != 1 {
		a.state.notice = "Usage: /r <n>"
		return
	}
	i, err := index(c.args[0], len(a.state.quickReplies))
	if err != nil {
		a.state.notice = err.Error()
		return
	}
	a.setChatOpen(true)
	a.assistant.QuickReply(a.state.quickReplies[i])
}
