package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sant0-9/itabs/internal/actions"
	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/document"
	"github.com/sant0-9/itabs/internal/learner"
	"github.com/sant0-9/itabs/internal/profile"
)

type handler func(a *Assistant, ctx context.Context)

var handlers = map[actions.Kind]handler{
	actions.LearnSession:           (*Assistant).learnSession,
	actions.DetectContentType:      (*Assistant).detectContentType,
	actions.SuggestAudience:        (*Assistant).suggestAudience,
	actions.SuggestTabNames:        (*Assistant).suggestTabNames,
	actions.OptimizeMobile:         (*Assistant).optimizeMobile,
	actions.MakeProfessional:       (*Assistant).makeProfessional,
	actions.ApplyPreviousStructure: (*Assistant).applyPreviousStructure,
	actions.StructureAsActions:     (*Assistant).structureAsActions,
	actions.AddQuizSections:        (*Assistant).addQuizSections,
	actions.NumberSteps:            (*Assistant).numberSteps,
	actions.AddExecutiveSummary:    (*Assistant).addExecutiveSummary,
}

// Dispatch runs the smart action of the given kind and counts it as accepted.
// Unknown kinds get a generic reply but are counted too.
func (a *Assistant) Dispatch(ctx context.Context, kind actions.Kind) {
	if h, ok := handlers[kind]; ok {
		h(a, ctx)
	} else {
		slog.Debug("no handler for action", "kind", kind.String())
		a.say("I'll help you with that! This feature is being refined based on user feedback.")
	}

	a.store.Update(ctx, func(p *profile.Profile) {
		p.RecordAccepted(kind.String())
	})
}

func (a *Assistant) learnSession(ctx context.Context) {
	if a.session.Learning {
		a.say("Still learning from this session. Give me a moment.")
		return
	}
	a.session.Learning = true

	obs := learner.Observation{
		SectionTitles: a.page.SectionTitles(),
		BrandColor:    a.page.Field(document.BrandColor),
		Audience:      a.page.Field(document.Audience),
		Goal:          a.page.Field(document.Goal),
		DetectedType:  a.session.Detected,
	}
	// A failed save is logged by the store; the in-memory profile is updated.
	a.learner.Learn(ctx, obs)

	a.sched.After(a.timing.LearnDelay, func() {
		a.session.Learning = false
		a.system("🧠 Session learned! I'll use these patterns for future suggestions.")
		a.toast("Learned!", "Saved your structure and preferences")
		a.sink.Refresh()
	})

	a.post(Message{
		Role:         RoleAssistant,
		Content:      "Learning from this session... I'm saving your tab structure, naming patterns, and preferences.",
		InsightSaved: true,
	})
}

func (a *Assistant) detectContentType(ctx context.Context) {
	text := a.page.Content()
	if utf8.RuneCountInString(text) < MinDetectLength {
		a.say("Please paste some content first (at least a few sentences), then I can detect what type it is.")
		return
	}

	detected := content.Classify(text)
	if detected == content.None {
		a.say("I couldn't detect a specific content type. It might be general content - which is fine! The AI will create a good structure for it.")
		return
	}

	a.session.Detected = detected
	a.contentDetected(ctx, detected, false)

	p, _ := content.Lookup(detected)
	lines := make([]string, len(p.SuggestedStructure))
	for i, s := range p.SuggestedStructure {
		lines[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	a.say(fmt.Sprintf("This looks like <strong>%s</strong>! I'd suggest this structure:<br><br>", p.Label) + strings.Join(lines, "<br>"))
}

type audienceSignal struct {
	words []string
	label string
}

// Checked in order; the first group with a hit wins.
var audienceSignals = []audienceSignal{
	{words: []string{"beginner", "introduction", "getting started"}, label: "Beginners new to this topic"},
	{words: []string{"advanced", "expert", "deep dive"}, label: "Experienced practitioners"},
	{words: []string{"team", "employee", "staff"}, label: "Team members / employees"},
	{words: []string{"client", "customer"}, label: "Clients / customers"},
}

const defaultAudience = "General audience"

// SuggestAudience picks an audience label for text, falling back to the
// remembered audience and then to a generic one. It reports whether the
// fallback came from the profile.
func SuggestAudience(text, remembered string) (string, bool) {
	lower := strings.ToLower(text)
	for _, s := range audienceSignals {
		for _, w := range s.words {
			if strings.Contains(lower, w) {
				return s.label, false
			}
		}
	}
	if remembered != "" {
		return remembered, true
	}
	return defaultAudience, false
}

func (a *Assistant) suggestAudience(ctx context.Context) {
	p := a.store.Profile()
	suggestion, fromProfile := SuggestAudience(a.page.Content(), p.PreferredAudience)

	basis := "the content"
	if fromProfile {
		basis = "your previous guides"
	}
	a.say(fmt.Sprintf(`Based on %s, I'd suggest: <strong>"%s"</strong><br><br>You can adjust this in the 'Who is this guide for?' field.`, basis, suggestion))

	if a.page.Field(document.Audience) == "" {
		a.page.SetField(document.Audience, suggestion)
		a.system("✓ Filled in the audience field for you")
		a.sink.Refresh()
	}
}

type rename struct {
	pattern string
	better  string
}

var renames = []rename{
	{"overview", "What You'll Learn"},
	{"introduction", "Quick Start"},
	{"conclusion", "Key Takeaways"},
	{"summary", "TL;DR"},
	{"steps", "How To Do It"},
	{"resources", "Tools & Links"},
	{"tips", "Pro Tips"},
	{"examples", "Real Examples"},
}

// TitleSuggestion proposes a better title for one section.
type TitleSuggestion struct {
	Index     int
	Current   string
	Suggested string
}

// SuggestTitles returns at most one suggestion per title, in section order.
// A title already equal to the suggestion is left alone.
func SuggestTitles(titles []string) []TitleSuggestion {
	var out []TitleSuggestion
	for i, title := range titles {
		current := strings.ToLower(title)
		for _, r := range renames {
			if strings.Contains(current, r.pattern) && current != strings.ToLower(r.better) {
				out = append(out, TitleSuggestion{Index: i, Current: title, Suggested: r.better})
				break
			}
		}
	}
	return out
}

func (a *Assistant) suggestTabNames(ctx context.Context) {
	titles := a.page.SectionTitles()
	if len(titles) == 0 {
		a.say("No sections to improve yet. Generate your guide first, then I can suggest better names.")
		return
	}

	suggestions := SuggestTitles(titles)
	if len(suggestions) == 0 {
		a.say(`Your tab names look good! They're clear and descriptive. If you want more action-oriented names, try starting with verbs like "Learn", "Do", "Check", "Get".`)
		return
	}

	var b strings.Builder
	b.WriteString("Here are some more engaging titles:<br><br>")
	for _, s := range suggestions {
		fmt.Fprintf(&b, `• "%s" → <strong>"%s"</strong><br>`, s.Current, s.Suggested)
	}
	b.WriteString("<br>Want me to apply these changes?")
	a.say(b.String())
}

func (a *Assistant) optimizeMobile(ctx context.Context) {
	a.say("Mobile optimization tips:<br><br>" +
		"• <strong>Keep titles short</strong> - under 25 characters is best<br>" +
		"• <strong>Use 4-5 sections max</strong> - easier to navigate on small screens<br>" +
		"• <strong>Front-load key info</strong> - put the most important stuff first<br>" +
		"• <strong>Short paragraphs</strong> - 2-3 sentences per section<br><br>" +
		"Your guide already works on mobile - these tips just make it better!")
}

func (a *Assistant) makeProfessional(ctx context.Context) {
	var b strings.Builder
	b.WriteString("Making it more professional:<br><br>")
	if a.page.Field(document.ClientName) == "" {
		b.WriteString(`• <strong>Add a client name</strong> in the "Prepared For" field<br>`)
	}
	b.WriteString(`• <strong>Use formal language</strong> - avoid casual phrases like "gonna", "kinda"<br>`)
	b.WriteString(`• <strong>Add specific numbers</strong> - "3 steps" is better than "a few steps"<br>`)
	b.WriteString(`• <strong>Include timeframes</strong> - "Takes 5 minutes" sets expectations<br>`)

	if color := a.store.Profile().PreferredBrandColor; color != "" {
		fmt.Fprintf(&b, "<br>💡 You usually use this brand color: <strong>%s</strong>", color)
	}
	a.say(b.String())
}

func (a *Assistant) applyPreviousStructure(ctx context.Context) {
	p := a.store.Profile()
	s, ok := p.LatestStructure()
	if !ok {
		a.say(`You don't have any saved structures yet. Create a guide and click "Learn from this session" to save one.`)
		return
	}

	lines := make([]string, len(s.TabNames))
	for i, n := range s.TabNames {
		lines[i] = fmt.Sprintf("%d. %s", i+1, n)
	}
	a.say(fmt.Sprintf(`Applying your saved structure: <strong>"%s"</strong><br><br>This had %d tabs:<br>`, s.Name, s.TabCount) +
		strings.Join(lines, "<br>") +
		"<br><br>Note: The AI will use these as guidance when generating your guide.")
	a.toast("Structure applied", fmt.Sprintf(`Using "%s"`, s.Name))
}

func (a *Assistant) structureAsActions(ctx context.Context) {
	a.say("Restructuring as action items...<br><br>" +
		"I'll organize the content into:<br>" +
		"• <strong>Decisions Made</strong> - What was agreed<br>" +
		"• <strong>Action Items</strong> - Who does what by when<br>" +
		"• <strong>Discussion Notes</strong> - Key points covered<br>" +
		"• <strong>Next Meeting</strong> - Follow-up items<br><br>" +
		"Tip: Make sure your transcript includes names and dates for best results.")
}

func (a *Assistant) addQuizSections(ctx context.Context) {
	a.say("Adding quiz-style sections:<br><br>" +
		"Each section will include:<br>" +
		"• <strong>Key concept</strong> explained simply<br>" +
		`• <strong>Quick check</strong> - "Can you answer this?"<br>` +
		"• <strong>Common mistakes</strong> to avoid<br><br>" +
		"Great for training content and certifications!")
}

var numbered = regexp.MustCompile(`^(Step )?\d+[.:]`)

// NumberTitles prefixes every title not already numbered with "Step N: ",
// counting only the titles it changes. It returns the new titles and how
// many changed.
func NumberTitles(titles []string) ([]string, int) {
	out := make([]string, len(titles))
	count := 0
	for i, t := range titles {
		if numbered.MatchString(t) {
			out[i] = t
			continue
		}
		count++
		out[i] = fmt.Sprintf("Step %d: %s", count, t)
	}
	return out, count
}

func (a *Assistant) numberSteps(ctx context.Context) {
	titles, count := NumberTitles(a.page.SectionTitles())
	if count == 0 {
		a.say("Your sections are already numbered or don't need numbering.")
		return
	}
	for i, t := range titles {
		a.page.SetSectionTitle(i, t)
	}
	a.system(fmt.Sprintf("✓ Numbered %d sections", count))
	a.say("Done! I've numbered your sections as steps. This makes tutorials much easier to follow.")
	a.sink.Refresh()
}

func (a *Assistant) addExecutiveSummary(ctx context.Context) {
	a.say("For a proper executive summary, I recommend:<br><br>" +
		`<strong>Add a new first section called "Executive Summary" with:</strong><br>` +
		"• One sentence on the topic/purpose<br>" +
		"• 3 key findings as bullet points<br>" +
		"• One recommended action<br><br>" +
		`Click "+ Add Section", drag it to the top, and use this structure.`)
}
