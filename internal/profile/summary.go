package profile

import (
	"sort"

	"github.com/sant0-9/itabs/internal/content"
)

// FrequentThreshold is the count above which a content type is flagged as
// frequently used.
const FrequentThreshold = 2

// summaryTabNames caps the tab names shown in a summary.
const summaryTabNames = 10

// ContentUsage is one content type and how often it was detected.
type ContentUsage struct {
	Type     content.Type
	Label    string
	Icon     string
	Count    int
	Frequent bool
}

// Summary is the read-only view of a profile shown to the user.
type Summary struct {
	GuidesCreated     int
	Sessions          int
	PreferredTabCount *int
	ContentTypes      []ContentUsage
	StructureNames    []string
	TabNames          []string
}

// Summarize builds the profile panel view. Content types are ordered by count
// descending; equal counts keep declaration order, unknown types sort last.
func (p Profile) Summarize() Summary {
	s := Summary{
		GuidesCreated:  p.TotalGuidesCreated,
		Sessions:       p.TotalSessions,
		StructureNames: make([]string, 0, len(p.SavedStructures)),
	}
	if p.PreferredTabCount != nil {
		n := *p.PreferredTabCount
		s.PreferredTabCount = &n
	}

	rank := make(map[content.Type]int)
	for i, t := range content.Types() {
		rank[t] = i
	}
	for t, count := range p.ContentTypes {
		s.ContentTypes = append(s.ContentTypes, ContentUsage{
			Type:     t,
			Label:    t.Label(),
			Icon:     t.Icon(),
			Count:    count,
			Frequent: count > FrequentThreshold,
		})
	}
	sort.SliceStable(s.ContentTypes, func(i, j int) bool {
		a, b := s.ContentTypes[i], s.ContentTypes[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		validA, validB := a.Type.Valid(), b.Type.Valid()
		switch {
		case validA && validB:
			return rank[a.Type] < rank[b.Type]
		case validA != validB:
			return validA
		default:
			return a.Type < b.Type
		}
	})

	for _, st := range p.SavedStructures {
		s.StructureNames = append(s.StructureNames, st.Name)
	}

	names := p.CommonTabNames
	if len(names) > summaryTabNames {
		names = names[:summaryTabNames]
	}
	s.TabNames = append([]string(nil), names...)

	return s
}
