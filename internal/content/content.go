package content

// Type identifies a category of pasted content. The zero value means no
// category was detected.
type Type string

const (
	None         Type = ""
	Meeting      Type = "meeting"
	Training     Type = "training"
	Tutorial     Type = "tutorial"
	Report       Type = "report"
	Presentation Type = "presentation"
	Video        Type = "video"
)

// Pattern describes how a content type is recognised and presented.
type Pattern struct {
	Type               Type
	Icon               string
	Label              string
	Keywords           []string
	SuggestedStructure []string
}

// patterns is kept in declaration order; Classify breaks ties by it.
var patterns = []Pattern{
	{
		Type:               Meeting,
		Icon:               "📋",
		Label:              "Meeting Notes",
		Keywords:           []string{"meeting", "agenda", "minutes", "action item", "attendee", "discussed", "decided", "follow up", "next steps"},
		SuggestedStructure: []string{"Key Decisions", "Action Items", "Discussion Points", "Next Steps", "Attendees"},
	},
	{
		Type:               Training,
		Icon:               "🎓",
		Label:              "Training Material",
		Keywords:           []string{"training", "lesson", "module", "learn", "exercise", "practice", "skill", "certificate", "course"},
		SuggestedStructure: []string{"Overview", "Key Concepts", "Step-by-Step", "Practice Exercise", "Summary"},
	},
	{
		Type:               Tutorial,
		Icon:               "📖",
		Label:              "Tutorial",
		Keywords:           []string{"how to", "step 1", "step 2", "tutorial", "guide", "instructions", "setup", "install", "configure"},
		SuggestedStructure: []string{"Prerequisites", "Steps", "Common Issues", "Tips", "Next Steps"},
	},
	{
		Type:               Report,
		Icon:               "📊",
		Label:              "Report",
		Keywords:           []string{"report", "analysis", "findings", "data", "results", "metrics", "quarterly", "annual", "performance"},
		SuggestedStructure: []string{"Executive Summary", "Key Findings", "Data Analysis", "Recommendations", "Appendix"},
	},
	{
		Type:               Presentation,
		Icon:               "📽️",
		Label:              "Presentation",
		Keywords:           []string{"slide", "presentation", "deck", "pitch", "keynote", "audience", "speaker notes"},
		SuggestedStructure: []string{"Introduction", "Main Points", "Supporting Data", "Call to Action", "Q&A Prep"},
	},
	{
		Type:               Video,
		Icon:               "🎬",
		Label:              "Video Content",
		Keywords:           []string{"[00:", "timestamp", "youtube", "video", "watch", "clip", "footage"},
		SuggestedStructure: []string{"Overview", "Key Moments", "Main Takeaways", "Action Items", "Resources"},
	},
}

// Types returns every known content type in declaration order.
func Types() []Type {
	out := make([]Type, len(patterns))
	for i, p := range patterns {
		out[i] = p.Type
	}
	return out
}

// Lookup returns the pattern registered for t.
func Lookup(t Type) (Pattern, bool) {
	for _, p := range patterns {
		if p.Type == t {
			return p, true
		}
	}
	return Pattern{}, false
}

// Label returns the display label for t, or the raw identifier when t is
// not a registered type.
func (t Type) Label() string {
	if p, ok := Lookup(t); ok {
		return p.Label
	}
	return string(t)
}

// Icon returns the display icon for t.
func (t Type) Icon() string {
	if p, ok := Lookup(t); ok {
		return p.Icon
	}
	return "📄"
}

// Valid reports whether t is one of the registered content types.
func (t Type) Valid() bool {
	_, ok := Lookup(t)
	return ok
}
