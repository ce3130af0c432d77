package tui

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/itabs/internal/assistant"
)

// deferredMsg carries a scheduled assistant callback back onto the update
// loop.
type deferredMsg struct{ fn func() }

// scheduler turns assistant delays into tea.Tick commands. Callbacks run
// from Update, so the assistant only ever sees one goroutine.
type scheduler struct {
	pending []tea.Cmd
}

func (s *scheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredMsg{fn: fn}
	}))
}

// flush returns the ticks queued since the last flush.
func (s *scheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// sink renders assistant output into the app state.
type sink struct {
	app *App
}

func (s sink) Message(m assistant.Message) {
	st := s.app.state
	st.chatHistory = append(st.chatHistory, m)
	s.app.syncTranscript(true)
}

func (s sink) Toast(t assistant.Toast) {
	st := s.app.state
	st.toastSeq++
	id := st.toastSeq
	st.toast = &activeToast{id: id, Toast: t}
	s.app.sched.After(t.Duration, func() {
		if st.toast != nil && st.toast.id == id {
			st.toast = nil
		}
	})
}

func (s sink) Refresh() {
	a := s.app
	a.state.actions = a.assistant.Actions()
	a.state.quickReplies = a.assistant.QuickReplies()
	a.saveGuide()
}

// saveGuide writes the draft and remembers its mtime so the poller does not
// reload our own write.
func (a *App) saveGuide() {
	g := a.state.guide
	a.state.guide.Step = int(a.assistant.Session().Step)
	if err := g.Save(); err != nil {
		slog.Warn("could not save guide", "path", g.Path(), "error", err)
		a.state.notice = "Could not save guide: " + err.Error()
		return
	}
	if g.Path() == "" {
		return
	}
	if info, err := os.Stat(g.Path()); err == nil {
		a.state.guideMod = info.ModTime()
	}
}
