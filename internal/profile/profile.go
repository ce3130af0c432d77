// Package profile holds the persisted user profile the assistant learns from:
// usage counters, remembered preferences and saved tab structures.
package profile

import (
	"slices"
	"time"

	"github.com/sant0-9/itabs/internal/content"
)

// Caps on the most-recent-first lists.
const (
	MaxCommonTabNames  = 20
	MaxSavedStructures = 5
	MaxCommonGoals     = 5
)

// SavedStructure is a remembered tab layout the user can reapply.
type SavedStructure struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	TabCount    int          `json:"tabCount"`
	TabNames    []string     `json:"tabNames"`
	ContentType content.Type `json:"contentType,omitempty"`
	SavedAt     time.Time    `json:"savedAt"`
}

// Profile is the single persisted record per device.
type Profile struct {
	TotalSessions      int        `json:"totalSessions"`
	TotalGuidesCreated int        `json:"totalGuidesCreated"`
	FirstVisit         *time.Time `json:"firstVisit"`
	LastVisit          *time.Time `json:"lastVisit"`

	ContentTypes      map[content.Type]int `json:"contentTypes"`
	PreferredTabCount *int                 `json:"preferredTabCount"`
	CommonTabNames    []string             `json:"commonTabNames"`

	SavedStructures     []SavedStructure `json:"savedStructures"`
	SuggestionsAccepted map[string]int   `json:"suggestionsAccepted"`

	PreferredBrandColor string   `json:"preferredBrandColor,omitempty"`
	PreferredAudience   string   `json:"preferredAudience,omitempty"`
	CommonGoals         []string `json:"commonGoals"`
}

// Default returns the shape of a profile that has never been used.
func Default() Profile {
	return Profile{
		ContentTypes:        map[content.Type]int{},
		CommonTabNames:      []string{},
		SavedStructures:     []SavedStructure{},
		SuggestionsAccepted: map[string]int{},
		CommonGoals:         []string{},
	}
}

// normalize replaces nil collections left behind by explicit JSON nulls and
// trims lists that are over their cap.
func (p *Profile) normalize() {
	if p.ContentTypes == nil {
		p.ContentTypes = map[content.Type]int{}
	}
	if p.CommonTabNames == nil {
		p.CommonTabNames = []string{}
	}
	if p.SavedStructures == nil {
		p.SavedStructures = []SavedStructure{}
	}
	if p.SuggestionsAccepted == nil {
		p.SuggestionsAccepted = map[string]int{}
	}
	if p.CommonGoals == nil {
		p.CommonGoals = []string{}
	}
	p.CommonTabNames = capped(p.CommonTabNames, MaxCommonTabNames)
	p.SavedStructures = capped(p.SavedStructures, MaxSavedStructures)
	p.CommonGoals = capped(p.CommonGoals, MaxCommonGoals)
}

func capped[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	cp := p
	if p.FirstVisit != nil {
		t := *p.FirstVisit
		cp.FirstVisit = &t
	}
	if p.LastVisit != nil {
		t := *p.LastVisit
		cp.LastVisit = &t
	}
	if p.PreferredTabCount != nil {
		n := *p.PreferredTabCount
		cp.PreferredTabCount = &n
	}
	if p.ContentTypes != nil {
		cp.ContentTypes = make(map[content.Type]int, len(p.ContentTypes))
		for k, v := range p.ContentTypes {
			cp.ContentTypes[k] = v
		}
	}
	if p.SuggestionsAccepted != nil {
		cp.SuggestionsAccepted = make(map[string]int, len(p.SuggestionsAccepted))
		for k, v := range p.SuggestionsAccepted {
			cp.SuggestionsAccepted[k] = v
		}
	}
	cp.CommonTabNames = slices.Clone(p.CommonTabNames)
	cp.CommonGoals = slices.Clone(p.CommonGoals)
	if p.SavedStructures != nil {
		cp.SavedStructures = make([]SavedStructure, len(p.SavedStructures))
		for i, s := range p.SavedStructures {
			s.TabNames = slices.Clone(s.TabNames)
			cp.SavedStructures[i] = s
		}
	}
	return cp
}

// IsReturning reports whether the user has been here in an earlier session.
func (p *Profile) IsReturning() bool {
	return p.TotalSessions > 1
}

// HasHistory reports whether at least one structure has been saved.
func (p *Profile) HasHistory() bool {
	return len(p.SavedStructures) > 0
}

// LatestStructure returns the most recently saved structure.
func (p *Profile) LatestStructure() (SavedStructure, bool) {
	if len(p.SavedStructures) == 0 {
		return SavedStructure{}, false
	}
	return p.SavedStructures[0], true
}

// RecordVisit counts a new session starting at now.
func (p *Profile) RecordVisit(now time.Time) {
	p.TotalSessions++
	t := now
	p.LastVisit = &t
	if p.FirstVisit == nil {
		first := now
		p.FirstVisit = &first
	}
}

// RecordGuideCreated counts a guide reaching the edit step.
func (p *Profile) RecordGuideCreated() {
	p.TotalGuidesCreated++
}

// RecordContentType counts one detection of t.
func (p *Profile) RecordContentType(t content.Type) {
	if t == content.None {
		return
	}
	p.normalize()
	p.ContentTypes[t]++
}

// RecordAccepted counts one use of a smart action.
func (p *Profile) RecordAccepted(action string) {
	p.normalize()
	p.SuggestionsAccepted[action]++
}

// AddStructure puts s in front of the saved structures, evicting the oldest
// beyond MaxSavedStructures.
func (p *Profile) AddStructure(s SavedStructure) {
	p.SavedStructures = pushFront(p.SavedStructures, s, MaxSavedStructures)
}

// RememberGoal puts goal in front of the common goals unless it is already
// known. It reports whether the list changed.
func (p *Profile) RememberGoal(goal string) bool {
	if goal == "" || slices.Contains(p.CommonGoals, goal) {
		return false
	}
	p.CommonGoals = pushFront(p.CommonGoals, goal, MaxCommonGoals)
	return true
}

// RememberTabNames puts every unseen name in front of the common tab names,
// one at a time, so the last new name of names ends up first.
func (p *Profile) RememberTabNames(names []string) {
	for _, name := range names {
		if slices.Contains(p.CommonTabNames, name) {
			continue
		}
		p.CommonTabNames = slices.Insert(p.CommonTabNames, 0, name)
	}
	if len(p.CommonTabNames) > MaxCommonTabNames {
		p.CommonTabNames = p.CommonTabNames[:MaxCommonTabNames]
	}
}

// BlendTabCount folds n into the preferred tab count: the first observation
// is taken as is, later ones are averaged with the previous value and
// rounded half up. A stored zero counts as no observation.
func (p *Profile) BlendTabCount(n int) {
	if p.PreferredTabCount == nil || *p.PreferredTabCount == 0 {
		p.PreferredTabCount = &n
		return
	}
	blended := (*p.PreferredTabCount + n + 1) / 2
	p.PreferredTabCount = &blended
}

func pushFront[T any](list []T, item T, limit int) []T {
	out := make([]T, 0, min(len(list)+1, limit))
	out = append(out, item)
	for _, v := range list {
		if len(out) == limit {
			break
		}
		out = append(out, v)
	}
	return out
}
