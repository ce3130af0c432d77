// Package learner folds what is on screen at the end of a session into the
// user profile.
package learner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/profile"
)

// MinStructureTabs is the number of titled sections needed before a layout is
// worth saving as a structure.
const MinStructureTabs = 3

// Observation is the on-screen state captured when learning is triggered.
type Observation struct {
	SectionTitles []string
	BrandColor    string
	Audience      string
	Goal          string
	DetectedType  content.Type
}

// Result describes what a learn pass changed.
type Result struct {
	TabCount  int
	Structure *profile.SavedStructure
	NewGoal   bool
}

// Learner applies observations to a profile store.
type Learner struct {
	store *profile.Store
	newID func() string
}

func New(store *profile.Store) *Learner {
	return &Learner{
		store: store,
		newID: uuid.NewString,
	}
}

// Learn applies obs in a single store update, so the profile is never seen
// half-learned, and persists it.
func (l *Learner) Learn(ctx context.Context, obs Observation) (Result, error) {
	var res Result
	now := l.store.Now()
	_, err := l.store.Update(ctx, func(p *profile.Profile) {
		res = Apply(p, obs, now, l.newID)
	})
	return res, err
}

// Apply mutates p with obs. Empty titles are ignored.
func Apply(p *profile.Profile, obs Observation, now time.Time, newID func() string) Result {
	titles := make([]string, 0, len(obs.SectionTitles))
	for _, t := range obs.SectionTitles {
		if t != "" {
			titles = append(titles, t)
		}
	}

	res := Result{TabCount: len(titles)}

	if len(titles) >= MinStructureTabs {
		s := profile.SavedStructure{
			ID:          newID(),
			Name:        StructureName(obs.DetectedType, len(titles)),
			TabCount:    len(titles),
			TabNames:    titles,
			ContentType: obs.DetectedType,
			SavedAt:     now,
		}
		p.AddStructure(s)
		res.Structure = &s
	}

	if obs.BrandColor != "" {
		p.PreferredBrandColor = obs.BrandColor
	}
	if obs.Audience != "" {
		p.PreferredAudience = obs.Audience
	}
	res.NewGoal = p.RememberGoal(strings.TrimSpace(obs.Goal))

	p.RememberTabNames(titles)
	p.BlendTabCount(len(titles))

	return res
}

// StructureName names a saved structure after its content type and size.
func StructureName(t content.Type, tabs int) string {
	if p, ok := content.Lookup(t); ok {
		return fmt.Sprintf("%s (%d tabs)", p.Label, tabs)
	}
	return fmt.Sprintf("Custom (%d tabs)", tabs)
}
