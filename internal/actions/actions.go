// Package actions decides which smart actions and quick replies the
// assistant offers for the current step, content and profile.
package actions

import (
	"fmt"
	"slices"

	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/profile"
	"github.com/sant0-9/itabs/internal/steps"
)

// ApplyPreviousID is the id shared by the generic and the learned
// "apply previous structure" actions.
const ApplyPreviousID = "applyPrevious"

// Action is one smart action offered to the user.
type Action struct {
	ID    string
	Icon  string
	Label string
	Kind  Kind

	// RequiresHistory hides the action until a structure has been saved.
	RequiresHistory bool
	// Learned marks actions synthesized from the user's profile.
	Learned bool
}

var universal = []Action{
	{ID: "learn", Icon: "🧠", Label: "Learn from this session", Kind: LearnSession},
}

var byStep = map[steps.ID][]Action{
	steps.AddContent: {
		{ID: "detectType", Icon: "🔍", Label: "Detect content type", Kind: DetectContentType},
		{ID: "suggestAudience", Icon: "👥", Label: "Suggest audience", Kind: SuggestAudience},
	},
	steps.Edit: {
		{ID: "betterNames", Icon: "✏️", Label: "Suggest better tab names", Kind: SuggestTabNames},
		{ID: "optimize", Icon: "📱", Label: "Optimize for mobile", Kind: OptimizeMobile},
		{ID: "professional", Icon: "💼", Label: "Make more professional", Kind: MakeProfessional},
		{ID: ApplyPreviousID, Icon: "📋", Label: "Apply previous structure", Kind: ApplyPreviousStructure, RequiresHistory: true},
	},
}

var byContent = map[content.Type][]Action{
	content.Meeting: {
		{ID: "actionItems", Icon: "✅", Label: "Structure as action items", Kind: StructureAsActions},
	},
	content.Training: {
		{ID: "quizFormat", Icon: "❓", Label: "Add quiz sections", Kind: AddQuizSections},
	},
	content.Tutorial: {
		{ID: "numbered", Icon: "🔢", Label: "Number all steps", Kind: NumberSteps},
	},
	content.Report: {
		{ID: "executive", Icon: "📝", Label: "Add executive summary", Kind: AddExecutiveSummary},
	},
}

// Select returns the smart actions to show, in display order:
//
//  1. the universal actions;
//  2. the step's actions, minus history-only ones when nothing is saved;
//  3. the actions registered for the detected content type;
//  4. at the edit step with saved history, a learned "apply" action naming
//     the latest structure goes first and takes the place of the generic one.
func Select(step steps.ID, detected content.Type, p *profile.Profile) []Action {
	out := slices.Clone(universal)

	for _, a := range byStep[step] {
		if a.RequiresHistory && !p.HasHistory() {
			continue
		}
		out = append(out, a)
	}

	if detected != content.None {
		out = append(out, byContent[detected]...)
	}

	if latest, ok := p.LatestStructure(); ok && step == steps.Edit {
		out = slices.DeleteFunc(out, func(a Action) bool {
			return a.ID == ApplyPreviousID
		})
		out = slices.Insert(out, 0, Action{
			ID:      ApplyPreviousID,
			Icon:    "⚡",
			Label:   fmt.Sprintf(`Apply "%s"`, latest.Name),
			Kind:    ApplyPreviousStructure,
			Learned: true,
		})
	}

	return out
}

// QuickReplies returns the step's configured quick-reply prompts unchanged.
func QuickReplies(step steps.ID) []string {
	return steps.QuickReplies(step)
}
