package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/itabs/internal/actions"
	"github.com/sant0-9/itabs/internal/assistant"
	"github.com/sant0-9/itabs/internal/config"
	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/document"
	"github.com/sant0-9/itabs/internal/profile"
	"github.com/sant0-9/itabs/internal/steps"
	"github.com/sant0-9/itabs/internal/storage"
)

const meetingNotes = "Weekly meeting agenda. The minutes show we discussed hiring and decided to follow up on Friday with every attendee."

func newTestApp(t *testing.T, guide *document.Guide) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timing = config.TimingConfig{}
	if guide == nil {
		guide = document.NewGuide("")
	}
	a := NewApp(context.Background(), Options{
		Config: cfg,
		Store:  profile.NewStore(storage.NewMemoryStore()),
		Guide:  guide,
	})
	// Init hands its ticks to the runtime; queue them so drain runs them.
	a.sched.pending = append(a.sched.pending, a.Init())
	return a
}

// drain runs every scheduled assistant callback, including ones scheduled
// while draining. Batches are unpacked and other messages are dropped.
func drain(a *App) {
	for len(a.sched.pending) > 0 {
		cmd := a.sched.pending[0]
		a.sched.pending = a.sched.pending[1:]
		if cmd == nil {
			continue
		}
		switch m := cmd().(type) {
		case deferredMsg:
			m.fn()
		case tea.BatchMsg:
			a.sched.pending = append(a.sched.pending, m...)
		}
	}
}

func run(a *App, input string) {
	c, ok := parseCommand(input)
	if !ok {
		panic("not a command: " + input)
	}
	a.runCommand(c)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want command
	}{
		{"hello", false, command{}},
		{"/help", true, command{name: "help", rest: ""}},
		{"  /Section add  Key Points ", true, command{name: "section", args: []string{"add", "Key", "Points"}, rest: "add  Key Points"}},
		{"/set audience New hires", true, command{name: "set", args: []string{"audience", "New", "hires"}, rest: "audience New hires"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCommand(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want.name, got.name)
				assert.Equal(t, tt.want.rest, got.rest)
				if len(tt.want.args) > 0 {
					assert.Equal(t, tt.want.args, got.args)
				}
			}
		})
	}
}

func TestIndex(t *testing.T) {
	i, err := index("2", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	for _, bad := range []string{"0", "4", "x", "-1"} {
		_, err := index(bad, 3)
		assert.Error(t, err, bad)
	}
}

func TestStartGreetsAfterDelay(t *testing.T) {
	a := newTestApp(t, nil)
	assert.Empty(t, a.state.chatHistory)
	assert.Equal(t, []actions.Action{{ID: "learn", Icon: "🧠", Label: "Learn from this session", Kind: actions.LearnSession}}, a.state.actions)

	drain(a)
	require.Len(t, a.state.chatHistory, 2)
	assert.Equal(t, steps.Get(steps.Setup).FirstTimeGreeting, a.state.chatHistory[0].Content)
	assert.True(t, a.assistant.Session().Unread, "chat starts closed")
}

func TestGuideCommands(t *testing.T) {
	a := newTestApp(t, nil)

	run(a, "/section add Overview")
	run(a, "/section add Install steps")
	run(a, "/section add Wrap up")
	run(a, "/section rename 3 Key Points")
	run(a, "/section rm 2")
	assert.Equal(t, []string{"Overview", "Key Points"}, a.state.guide.SectionTitles())

	run(a, "/set audience New hires")
	assert.Equal(t, "New hires", a.state.guide.Field(document.Audience))

	run(a, "/set colour red")
	assert.Contains(t, a.state.notice, "Unknown field")

	run(a, "/section rm 9")
	assert.Contains(t, a.state.notice, "expected a number from 1 to 2")
}

func TestSectionOutline(t *testing.T) {
	a := newTestApp(t, nil)

	run(a, "/section outline")
	assert.Equal(t, "No markdown headings found in the content", a.state.notice)

	a.setContent("# Install\nGet the app.\n\n# Configure\nSet it up.")
	run(a, "/section outline")
	assert.Equal(t, []string{"Install", "Configure"}, a.state.guide.SectionTitles())
	assert.Equal(t, "Added 2 sections from headings", a.state.notice)
}

func TestStepCommandMovesSession(t *testing.T) {
	a := newTestApp(t, nil)

	run(a, "/step 3")
	assert.Equal(t, steps.Edit, a.assistant.Session().Step)
	assert.Equal(t, 3, a.state.guide.Step)
	assert.Equal(t, 1, a.assistant.Profile().TotalGuidesCreated)
	assert.Equal(t, steps.QuickReplies(steps.Edit), a.state.quickReplies)

	run(a, "/step 3")
	assert.Equal(t, "Already at step 3", a.state.notice)
}

func TestContentCommandDetectsType(t *testing.T) {
	a := newTestApp(t, nil)
	run(a, "/step 2")
	run(a, "/content "+meetingNotes)

	assert.Equal(t, content.Meeting, a.assistant.Session().Detected)
	require.NotNil(t, a.state.toast)
	assert.Equal(t, "Content detected", a.state.toast.Title)

	var kinds []actions.Kind
	for _, act := range a.state.actions {
		kinds = append(kinds, act.Kind)
	}
	assert.Contains(t, kinds, actions.StructureAsActions)

	drain(a)
	assert.Nil(t, a.state.toast, "toast expires")
}

func TestPlainTextOpensChatAndReplies(t *testing.T) {
	a := newTestApp(t, nil)
	drain(a)

	a.state.input.SetValue("is my data safe?")
	a.handleInput()
	assert.Equal(t, viewChat, a.view)
	assert.Equal(t, "", a.state.input.Value())

	drain(a)
	last := a.state.chatHistory[len(a.state.chatHistory)-1]
	assert.Equal(t, assistant.RoleAssistant, last.Role)
	assert.Contains(t, last.Content, "your browser only")
	assert.False(t, a.assistant.Session().Unread)
}

func TestActionAndReplyCommands(t *testing.T) {
	a := newTestApp(t, nil)
	drain(a)

	run(a, "/r 1")
	drain(a)
	last := a.state.chatHistory[len(a.state.chatHistory)-1]
	assert.Contains(t, last.Content, "Get your key")

	run(a, "/a 1")
	assert.Equal(t, 1, a.assistant.Profile().SuggestionsAccepted["learnSession"])
	drain(a)
	assert.False(t, a.assistant.Session().Learning)

	run(a, "/a 7")
	assert.Contains(t, a.state.notice, "expected a number")

	run(a, "/a numberSteps")
	assert.Equal(t, 1, a.assistant.Profile().SuggestionsAccepted["numberSteps"])

	run(a, "/a launchRockets")
	assert.Equal(t, `Unknown action "launchRockets"`, a.state.notice)
	assert.NotContains(t, a.assistant.Profile().SuggestionsAccepted, "unknown")
}

func TestResetNeedsConfirmation(t *testing.T) {
	a := newTestApp(t, nil)
	require.Equal(t, 1, a.assistant.Profile().TotalSessions)

	run(a, "/reset")
	assert.Equal(t, viewConfirm, a.view)

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, viewGuide, a.view)
	assert.Equal(t, 1, a.assistant.Profile().TotalSessions)

	run(a, "/reset")
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, viewGuide, a.view)
	assert.Equal(t, profile.Default(), a.assistant.Profile())
}

func TestTabTogglesChat(t *testing.T) {
	a := newTestApp(t, nil)

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewChat, a.view)
	assert.True(t, a.assistant.Session().Open)

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewGuide, a.view)
	assert.False(t, a.assistant.Session().Open)
}

func TestPollReloadsChangedGuide(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.yaml")
	a := newTestApp(t, document.NewGuide(path))

	edited := document.NewGuide(path)
	edited.Step = 2
	edited.RawContent = meetingNotes
	require.NoError(t, edited.Save())
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	a.checkGuide()
	assert.Equal(t, steps.AddContent, a.assistant.Session().Step)
	assert.Equal(t, content.Meeting, a.assistant.Session().Detected)
	assert.Equal(t, meetingNotes, a.state.guide.Content())
}

func TestImportFailureShowsError(t *testing.T) {
	a := newTestApp(t, nil)

	msg := a.importFile(filepath.Join(t.TempDir(), "missing.txt"))()
	a.Update(msg)
	assert.Equal(t, viewError, a.view)
	assert.Contains(t, a.state.err.Error(), "file not found")

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewGuide, a.view)
	assert.Nil(t, a.state.err)
}

func TestImportSetsContent(t *testing.T) {
	a := newTestApp(t, nil)
	run(a, "/step 2")

	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(meetingNotes), 0o644))

	a.Update(a.importFile(path)())
	assert.Equal(t, meetingNotes, a.state.guide.Content())
	assert.Equal(t, "Imported notes", a.state.notice)
	assert.Equal(t, content.Meeting, a.assistant.Session().Detected)
}
