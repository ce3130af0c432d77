package tui

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/itabs/internal/assistant"
	"github.com/sant0-9/itabs/internal/config"
	"github.com/sant0-9/itabs/internal/document"
	"github.com/sant0-9/itabs/internal/profile"
	"github.com/sant0-9/itabs/internal/steps"
)

type view int

const (
	viewGuide view = iota
	viewChat
	viewProfile
	viewHelp
	viewConfirm
	viewError
)

// Options wires the app to its config, profile store and guide draft.
type Options struct {
	Config *config.Config
	Store  *profile.Store
	Guide  *document.Guide
}

type App struct {
	ctx       context.Context
	width     int
	height    int
	view      view
	back      view
	state     *state
	assistant *assistant.Assistant
	sched     *scheduler
	quitting  bool
}

func NewApp(ctx context.Context, opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	guide := opts.Guide
	if guide == nil {
		guide = document.NewGuide("")
	}

	a := &App{
		ctx:   ctx,
		view:  viewGuide,
		state: newState(cfg, guide),
		sched: &scheduler{},
	}
	a.assistant = assistant.New(assistant.Deps{
		Store:     opts.Store,
		Page:      guide,
		Sink:      sink{app: a},
		Scheduler: a.sched,
		Timing:    cfg.Timing,
	})
	if info, err := os.Stat(guide.Path()); err == nil {
		a.state.guideMod = info.ModTime()
	}
	return a
}

type pollMsg struct{}

type importedMsg struct {
	doc *document.Imported
	err error
}

func (a *App) Init() tea.Cmd {
	a.assistant.Start(a.ctx, steps.ID(a.state.guide.Step))
	a.assistant.OnContentChanged(a.ctx, a.state.guide.Content())
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.state.typing.Tick,
		a.poll(),
		a.sched.flush(),
	)
}

func (a *App) poll() tea.Cmd {
	return tea.Tick(a.state.config.Timing.PollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case deferredMsg:
		msg.fn()

	case pollMsg:
		a.checkGuide()
		cmds = append(cmds, a.poll())

	case importedMsg:
		a.applyImport(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.state.typing, cmd = a.state.typing.Update(msg)
		cmds = append(cmds, cmd)
	}

	if a.view == viewChat || a.view == viewGuide {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, a.sched.flush())
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewConfirm:
		return a.handleConfirmKey(msg)
	case viewProfile, viewHelp, viewError:
		if key.Matches(msg, keys.Back) {
			a.view = a.back
			a.state.err = nil
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		if a.view == viewChat {
			a.setChatOpen(false)
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Toggle):
		a.setChatOpen(a.view != viewChat)
		return nil

	case key.Matches(msg, keys.Enter):
		return a.handleInput()

	case key.Matches(msg, keys.Up):
		a.state.transcript.LineUp(1)
	case key.Matches(msg, keys.Down):
		a.state.transcript.LineDown(1)
	case key.Matches(msg, keys.PageUp):
		a.state.transcript.HalfViewUp()
	case key.Matches(msg, keys.PageDown):
		a.state.transcript.HalfViewDown()
	}
	return nil
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Confirm):
		if err := a.assistant.ClearProfile(a.ctx, true); err != nil {
			a.state.notice = "Profile reset failed: " + err.Error()
		}
		a.view = a.back
	case key.Matches(msg, keys.Decline):
		a.view = a.back
	}
	return nil
}

func (a *App) setChatOpen(open bool) {
	a.assistant.SetOpen(open)
	if open {
		a.view = viewChat
		a.state.input.Focus()
		a.syncTranscript(true)
		return
	}
	a.view = viewGuide
}

// show switches to an overlay view that Esc returns from.
func (a *App) show(v view) {
	if a.view != v {
		a.back = a.view
	}
	a.view = v
}

func (a *App) showError(err error) {
	slog.Warn("command failed", "error", err)
	a.state.err = err
	a.show(viewError)
}

// checkGuide reloads the draft when it changed on disk and feeds the step
// and content to the assistant.
func (a *App) checkGuide() {
	g := a.state.guide
	if g.Path() == "" {
		return
	}
	info, err := os.Stat(g.Path())
	if err != nil || !info.ModTime().After(a.state.guideMod) {
		return
	}

	loaded, err := document.LoadGuide(g.Path())
	if err != nil {
		slog.Warn("could not reload guide", "path", g.Path(), "error", err)
		return
	}
	*g = *loaded
	a.state.guideMod = info.ModTime()
	slog.Debug("guide reloaded", "path", g.Path(), "step", g.Step)

	if !a.assistant.OnStepChanged(a.ctx, steps.ID(g.Step)) {
		a.out().Refresh()
	}
	a.assistant.OnContentChanged(a.ctx, g.Content())
}

func (a *App) importFile(path string) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		doc, err := document.Import(ctx, path)
		return importedMsg{doc: doc, err: err}
	}
}

func (a *App) applyImport(msg importedMsg) {
	if msg.err != nil {
		a.showError(msg.err)
		return
	}
	a.state.lastImport = msg.doc
	a.setContent(msg.doc.Content)
	a.state.notice = "Imported " + msg.doc.Name
}

func (a *App) setContent(text string) {
	a.state.guide.RawContent = text
	a.assistant.OnContentChanged(a.ctx, text)
	a.out().Refresh()
}

func (a *App) out() sink {
	return sink{app: a}
}

func (a *App) resize() {
	w := min(70, a.width-4)
	if w < 20 {
		w = 20
	}
	a.state.input.Width = w - 4
	a.state.transcript.Width = w
	a.state.transcript.Height = max(5, a.height-chatChromeHeight)
	a.syncTranscript(false)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewChat:
		return a.renderChat()
	case viewProfile:
		return a.renderProfile()
	case viewHelp:
		return a.renderHelp()
	case viewConfirm:
		return a.renderConfirm()
	case viewError:
		return a.renderError()
	default:
		return a.renderGuide()
	}
}
