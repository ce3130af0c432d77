package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/profile"
	"github.com/sant0-9/itabs/internal/steps"
)

func ids(list []Action) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func withHistory(name string) *profile.Profile {
	p := profile.Default()
	p.AddStructure(profile.SavedStructure{Name: name, TabCount: 3, TabNames: []string{"a", "b", "c"}})
	return &p
}

func TestSelect(t *testing.T) {
	empty := profile.Default()

	tests := []struct {
		name     string
		step     steps.ID
		detected content.Type
		profile  *profile.Profile
		want     []string
	}{
		{
			name:    "setup step has only universal actions",
			step:    steps.Setup,
			profile: &empty,
			want:    []string{"learn"},
		},
		{
			name:    "add content step",
			step:    steps.AddContent,
			profile: &empty,
			want:    []string{"learn", "detectType", "suggestAudience"},
		},
		{
			name:     "content specific actions follow step actions",
			step:     steps.AddContent,
			detected: content.Meeting,
			profile:  &empty,
			want:     []string{"learn", "detectType", "suggestAudience", "actionItems"},
		},
		{
			name:     "types without actions add nothing",
			step:     steps.Share,
			detected: content.Video,
			profile:  &empty,
			want:     []string{"learn"},
		},
		{
			name:    "edit step hides history actions without history",
			step:    steps.Edit,
			profile: &empty,
			want:    []string{"learn", "betterNames", "optimize", "professional"},
		},
		{
			name:     "edit step with history leads with the learned action",
			step:     steps.Edit,
			detected: content.Tutorial,
			profile:  withHistory("Tutorial (4 tabs)"),
			want:     []string{ApplyPreviousID, "learn", "betterNames", "optimize", "professional", "numbered"},
		},
		{
			name:    "history outside the edit step is not surfaced",
			step:    steps.AddContent,
			profile: withHistory("Custom (3 tabs)"),
			want:    []string{"learn", "detectType", "suggestAudience"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Select(tt.step, tt.detected, tt.profile)))
		})
	}
}

func TestSelectLearnedAction(t *testing.T) {
	got := Select(steps.Edit, content.None, withHistory("Report (5 tabs)"))
	require.NotEmpty(t, got)

	first := got[0]
	assert.Equal(t, ApplyPreviousID, first.ID)
	assert.Equal(t, `Apply "Report (5 tabs)"`, first.Label)
	assert.Equal(t, ApplyPreviousStructure, first.Kind)
	assert.True(t, first.Learned)

	count := 0
	for _, a := range got {
		if a.ID == ApplyPreviousID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSelectUsesLatestStructure(t *testing.T) {
	p := withHistory("old")
	p.AddStructure(profile.SavedStructure{Name: "new", TabCount: 4})
	assert.Equal(t, `Apply "new"`, Select(steps.Edit, content.None, p)[0].Label)
}

func TestSelectDoesNotShareRegistry(t *testing.T) {
	p := profile.Default()
	got := Select(steps.Setup, content.None, &p)
	got[0].Label = "mutated"
	assert.Equal(t, "Learn from this session", Select(steps.Setup, content.None, &p)[0].Label)
}

func TestQuickReplies(t *testing.T) {
	assert.Equal(t, []string{"How to host?", "Save this structure", "Create another"}, QuickReplies(steps.Share))
}

func TestKindNames(t *testing.T) {
	for k := LearnSession; k <= AddExecutiveSummary; k++ {
		assert.NotEqual(t, "unknown", k.String())
		assert.Equal(t, k, ParseKind(k.String()))
	}
	assert.Equal(t, KindUnknown, ParseKind("launchRockets"))
	assert.Equal(t, "unknown", KindUnknown.String())
}
