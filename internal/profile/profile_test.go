package profile

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/itabs/internal/content"
)

func intPtr(n int) *int { return &n }

func TestDefaultShape(t *testing.T) {
	p := Default()
	assert.Zero(t, p.TotalSessions)
	assert.Zero(t, p.TotalGuidesCreated)
	assert.Nil(t, p.FirstVisit)
	assert.Nil(t, p.LastVisit)
	assert.Nil(t, p.PreferredTabCount)
	assert.NotNil(t, p.ContentTypes)
	assert.Empty(t, p.ContentTypes)
	assert.NotNil(t, p.CommonTabNames)
	assert.NotNil(t, p.SavedStructures)
	assert.NotNil(t, p.SuggestionsAccepted)
	assert.NotNil(t, p.CommonGoals)
	assert.Empty(t, p.PreferredBrandColor)
	assert.Empty(t, p.PreferredAudience)
}

func TestRecordVisit(t *testing.T) {
	p := Default()
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	p.RecordVisit(first)
	assert.Equal(t, 1, p.TotalSessions)
	assert.False(t, p.IsReturning())
	require.NotNil(t, p.FirstVisit)
	assert.Equal(t, first, *p.FirstVisit)

	p.RecordVisit(second)
	assert.Equal(t, 2, p.TotalSessions)
	assert.True(t, p.IsReturning())
	assert.Equal(t, first, *p.FirstVisit)
	assert.Equal(t, second, *p.LastVisit)
}

func TestRecordContentTypeOnlyIncreases(t *testing.T) {
	p := Default()
	p.RecordContentType(content.Meeting)
	p.RecordContentType(content.Meeting)
	p.RecordContentType(content.None)
	assert.Equal(t, map[content.Type]int{content.Meeting: 2}, p.ContentTypes)
}

func TestAddStructureEvictsOldest(t *testing.T) {
	p := Default()
	for i := 1; i <= 7; i++ {
		p.AddStructure(SavedStructure{Name: fmt.Sprintf("s%d", i), TabCount: 3})
	}
	require.Len(t, p.SavedStructures, MaxSavedStructures)
	assert.Equal(t, "s7", p.SavedStructures[0].Name)
	assert.Equal(t, "s3", p.SavedStructures[4].Name)

	latest, ok := p.LatestStructure()
	assert.True(t, ok)
	assert.Equal(t, "s7", latest.Name)
}

func TestRememberGoal(t *testing.T) {
	p := Default()
	assert.False(t, p.RememberGoal(""))
	for i := 1; i <= 6; i++ {
		assert.True(t, p.RememberGoal(fmt.Sprintf("g%d", i)))
	}
	assert.False(t, p.RememberGoal("g6"))
	assert.Equal(t, []string{"g6", "g5", "g4", "g3", "g2"}, p.CommonGoals)
}

func TestRememberTabNames(t *testing.T) {
	p := Default()
	p.RememberTabNames([]string{"A", "B", "C", "A"})
	assert.Equal(t, []string{"C", "B", "A"}, p.CommonTabNames)

	p.RememberTabNames([]string{"B", "D"})
	assert.Equal(t, []string{"D", "C", "B", "A"}, p.CommonTabNames)

	var many []string
	for i := 0; i < 30; i++ {
		many = append(many, fmt.Sprintf("t%02d", i))
	}
	p.RememberTabNames(many)
	require.Len(t, p.CommonTabNames, MaxCommonTabNames)
	assert.Equal(t, "t29", p.CommonTabNames[0])
	assert.Equal(t, "t10", p.CommonTabNames[19])
}

func TestBlendTabCount(t *testing.T) {
	p := Default()
	p.BlendTabCount(4)
	assert.Equal(t, intPtr(4), p.PreferredTabCount)

	p.BlendTabCount(7) // (4+7)/2 = 5.5 rounds up
	assert.Equal(t, intPtr(6), p.PreferredTabCount)

	p.BlendTabCount(2) // (6+2)/2 = 4, not the mean of 4, 7, 2
	assert.Equal(t, intPtr(4), p.PreferredTabCount)

	zero := Default()
	zero.PreferredTabCount = intPtr(0)
	zero.BlendTabCount(5)
	assert.Equal(t, intPtr(5), zero.PreferredTabCount)
}

func TestCloneIsDeep(t *testing.T) {
	p := Default()
	p.RecordVisit(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	p.RecordContentType(content.Report)
	p.RememberTabNames([]string{"A"})
	p.AddStructure(SavedStructure{Name: "x", TabNames: []string{"A", "B", "C"}})
	p.BlendTabCount(3)

	cp := p.Clone()
	assert.Equal(t, p, cp)

	cp.ContentTypes[content.Report] = 99
	cp.CommonTabNames[0] = "Z"
	cp.SavedStructures[0].TabNames[0] = "Z"
	*cp.PreferredTabCount = 10
	*cp.FirstVisit = time.Time{}

	assert.Equal(t, 1, p.ContentTypes[content.Report])
	assert.Equal(t, "A", p.CommonTabNames[0])
	assert.Equal(t, "A", p.SavedStructures[0].TabNames[0])
	assert.Equal(t, 3, *p.PreferredTabCount)
	assert.False(t, p.FirstVisit.IsZero())
}

func TestSummarize(t *testing.T) {
	p := Default()
	p.ContentTypes = map[content.Type]int{
		content.Video:   3,
		content.Meeting: 1,
		content.Report:  3,
		"podcast":       1,
	}
	p.AddStructure(SavedStructure{Name: "Report (4 tabs)"})
	for i := 0; i < 12; i++ {
		p.RememberTabNames([]string{fmt.Sprintf("n%d", i)})
	}

	s := p.Summarize()
	require.Len(t, s.ContentTypes, 4)
	assert.Equal(t, content.Report, s.ContentTypes[0].Type)
	assert.True(t, s.ContentTypes[0].Frequent)
	assert.Equal(t, content.Video, s.ContentTypes[1].Type)
	assert.Equal(t, content.Meeting, s.ContentTypes[2].Type)
	assert.False(t, s.ContentTypes[2].Frequent)
	assert.Equal(t, content.Type("podcast"), s.ContentTypes[3].Type)
	assert.Equal(t, "📄", s.ContentTypes[3].Icon)

	assert.Equal(t, []string{"Report (4 tabs)"}, s.StructureNames)
	assert.Len(t, s.TabNames, 10)
	assert.Equal(t, "n11", s.TabNames[0])
	assert.Nil(t, s.PreferredTabCount)
}
