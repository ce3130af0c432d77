// Package assistant is the decision core of the guide-authoring chat: it
// tracks the session, answers free text, offers smart actions and runs them
// against the page and the learned profile.
//
// An Assistant is not safe for concurrent use. Every method, and every
// function handed to the Scheduler, must run on the same goroutine.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sant0-9/itabs/internal/actions"
	"github.com/sant0-9/itabs/internal/config"
	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/intent"
	"github.com/sant0-9/itabs/internal/learner"
	"github.com/sant0-9/itabs/internal/profile"
	"github.com/sant0-9/itabs/internal/steps"
)

const (
	// MinDetectLength is the content length a manual detection needs.
	MinDetectLength = 50
	// WatchLength is the content length above which pasted content is
	// classified automatically.
	WatchLength = 100
)

// ErrNotConfirmed is returned by ClearProfile without user confirmation.
var ErrNotConfirmed = errors.New("profile reset needs confirmation")

// Session is the ephemeral state of one run.
type Session struct {
	Step     steps.ID
	Detected content.Type
	Learning bool
	Typing   bool
	Open     bool
	Unread   bool
	Messages int
}

// Deps wires an Assistant to its collaborators.
type Deps struct {
	Store     *profile.Store
	Page      Page
	Sink      Sink
	Scheduler Scheduler
	Timing    config.TimingConfig
}

type Assistant struct {
	store    *profile.Store
	learner  *learner.Learner
	resolver *intent.Resolver
	page     Page
	sink     Sink
	sched    Scheduler
	timing   config.TimingConfig

	// randN returns a value in [0, n).
	randN func(n int64) int64

	session Session
}

func New(d Deps) *Assistant {
	return &Assistant{
		store:    d.Store,
		learner:  learner.New(d.Store),
		resolver: intent.NewResolver(),
		page:     d.Page,
		sink:     d.Sink,
		sched:    d.Scheduler,
		timing:   d.Timing,
		randN:    rand.Int64N,
		session:  Session{Step: steps.First},
	}
}

// Session returns a copy of the session state.
func (a *Assistant) Session() Session {
	return a.session
}

// Profile returns a copy of the learned profile.
func (a *Assistant) Profile() profile.Profile {
	return a.store.Profile()
}

// Actions returns the smart actions to offer right now.
func (a *Assistant) Actions() []actions.Action {
	p := a.store.Profile()
	return actions.Select(a.session.Step, a.session.Detected, &p)
}

// QuickReplies returns the quick replies for the current step.
func (a *Assistant) QuickReplies() []string {
	return actions.QuickReplies(a.session.Step)
}

// Start counts a new session and schedules the greeting.
func (a *Assistant) Start(ctx context.Context, step steps.ID) {
	if step.Valid() {
		a.session.Step = step
	}
	now := a.store.Now()
	a.store.Update(ctx, func(p *profile.Profile) {
		p.RecordVisit(now)
	})
	a.sched.After(a.timing.GreetingDelay, a.greet)
	a.sink.Refresh()
}

func (a *Assistant) greet() {
	cfg := steps.Get(a.session.Step)
	p := a.store.Profile()
	returning := p.IsReturning()

	greeting := cfg.Greeting
	if !returning && cfg.FirstTimeGreeting != "" {
		greeting = cfg.FirstTimeGreeting
	}
	if returning && p.TotalGuidesCreated > 0 {
		greeting = fmt.Sprintf("👋 Welcome back! You've created <strong>%d guides</strong> so far. Ready for another?", p.TotalGuidesCreated)
	}
	a.say(greeting)

	a.sched.After(a.timing.TipDelay, func() {
		p := a.store.Profile()
		if p.IsReturning() && p.HasHistory() {
			a.say(fmt.Sprintf("💡 You have <strong>%d saved structures</strong>. I can apply them to new content automatically.", len(p.SavedStructures)))
			return
		}
		tips := steps.Get(a.session.Step).Tips
		a.say(tips[a.randN(int64(len(tips)))])
	})
}

// SetOpen records whether the chat is visible. Opening clears the unread flag.
func (a *Assistant) SetOpen(open bool) {
	a.session.Open = open
	if open {
		a.session.Unread = false
	}
}

// OnStepChanged moves the session to step. Invalid or unchanged steps are
// ignored; it reports whether the step changed.
func (a *Assistant) OnStepChanged(ctx context.Context, step steps.ID) bool {
	if !step.Valid() || step == a.session.Step {
		return false
	}
	a.session.Step = step

	if a.session.Open {
		a.say(steps.Get(step).Greeting)
	}
	if step == steps.Edit {
		a.store.Update(ctx, func(p *profile.Profile) {
			p.RecordGuideCreated()
		})
	}
	a.sink.Refresh()
	return true
}

// OnContentChanged classifies pasted content while the user is adding
// content. Short content and unchanged classifications are ignored.
func (a *Assistant) OnContentChanged(ctx context.Context, text string) {
	if a.session.Step != steps.AddContent || utf8.RuneCountInString(text) <= WatchLength {
		return
	}
	detected := content.Classify(text)
	if detected == a.session.Detected {
		return
	}
	a.session.Detected = detected
	if detected == content.None {
		a.sink.Refresh()
		return
	}
	a.contentDetected(ctx, detected, true)
}

func (a *Assistant) contentDetected(ctx context.Context, t content.Type, announce bool) {
	label := t.Label()
	a.store.Update(ctx, func(p *profile.Profile) {
		p.RecordContentType(t)
	})
	a.sink.Refresh()

	if announce && a.session.Open {
		a.sched.After(a.timing.NoticeDelay, func() {
			a.say(fmt.Sprintf("I detected this looks like <strong>%s</strong>. I can suggest a structure optimized for this type of content.", label))
		})
	}
	a.toast("Content detected", "Looks like "+label)
}

// Send posts the user's message and answers it after a typing delay.
// Blank input is ignored.
func (a *Assistant) Send(input string) {
	msg := strings.TrimSpace(input)
	if msg == "" {
		return
	}
	a.post(Message{Role: RoleUser, Content: msg})
	a.respondAfter(a.delay(a.timing.TypingBase, a.timing.TypingJitter), msg)
}

// QuickReply posts a quick-reply prompt as the user and answers it.
func (a *Assistant) QuickReply(text string) {
	a.post(Message{Role: RoleUser, Content: text})
	a.respondAfter(a.delay(a.timing.QuickReplyBase, a.timing.QuickReplyJitter), text)
}

func (a *Assistant) respondAfter(d time.Duration, input string) {
	a.session.Typing = true
	a.sched.After(d, func() {
		a.session.Typing = false
		a.say(a.resolver.Resolve(input, a.session.Step))
	})
}

func (a *Assistant) delay(base, jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return base
	}
	return base + time.Duration(a.randN(int64(jitter)))
}

// ClearProfile erases everything learned. It refuses to run unless the user
// confirmed.
func (a *Assistant) ClearProfile(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	err := a.store.Reset(ctx)
	a.session.Messages = 0
	a.toast("Profile cleared", "Your learning data has been reset")
	a.sink.Refresh()
	return err
}

func (a *Assistant) say(content string) {
	a.post(Message{Role: RoleAssistant, Content: content})
}

func (a *Assistant) system(content string) {
	a.post(Message{Role: RoleSystem, Content: content})
}

func (a *Assistant) post(m Message) {
	a.session.Messages++
	if !a.session.Open && m.Role == RoleAssistant {
		a.session.Unread = true
	}
	a.sink.Message(m)
}

func (a *Assistant) toast(title, message string) {
	slog.Debug("toast", "title", title)
	a.sink.Toast(Toast{Title: title, Message: message, Duration: a.timing.ToastDuration})
}
