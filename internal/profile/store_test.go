package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/storage"
)

// --- Fakes ---

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type failingBackend struct {
	getErr, putErr, deleteErr error
	puts                      int
}

func (b *failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, b.getErr
}

func (b *failingBackend) Put(context.Context, string, []byte) error {
	b.puts++
	return b.putErr
}

func (b *failingBackend) Delete(context.Context, string) error {
	return b.deleteErr
}

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return NewStoreWithClock(kv, fixedClock{testNow}), kv
}

// --- Tests ---

func TestLoadEmptyBackendGivesDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, Default(), s.Load(context.Background()))
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	saved, err := s.Update(ctx, func(p *Profile) {
		p.RecordVisit(testNow)
		p.RecordGuideCreated()
		p.RecordContentType(content.Tutorial)
		p.RecordAccepted("learnSession")
		p.RememberTabNames([]string{"Intro", "Setup", "Usage"})
		p.RememberGoal("onboard new hires")
		p.AddStructure(SavedStructure{
			ID:          "a",
			Name:        "Tutorial (3 tabs)",
			TabCount:    3,
			TabNames:    []string{"Intro", "Setup", "Usage"},
			ContentType: content.Tutorial,
			SavedAt:     testNow,
		})
		p.AddStructure(SavedStructure{ID: "b", Name: "Custom (4 tabs)", TabCount: 4, TabNames: []string{"a", "b", "c", "d"}, SavedAt: testNow})
		p.BlendTabCount(3)
		p.PreferredBrandColor = "#7C3AED"
		p.PreferredAudience = "Team members / employees"
	})
	require.NoError(t, err)

	reloaded := NewStoreWithClock(kv, fixedClock{testNow}).Load(ctx)
	assert.Equal(t, saved, reloaded)
	assert.Equal(t, "Custom (4 tabs)", reloaded.SavedStructures[0].Name)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, kv.Put(ctx, StorageKey, []byte(`{"totalSessions":3,"commonGoals":null,"averageEditTime":12}`)))

	p := s.Load(ctx)
	assert.Equal(t, 3, p.TotalSessions)
	assert.NotNil(t, p.CommonGoals)
	assert.NotNil(t, p.ContentTypes)
	assert.NotNil(t, p.SavedStructures)
}

func TestLoadTrimsListsOverCap(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	raw := `{"commonGoals":["g1","g2","g3","g4","g5","g6","g7"],` +
		`"savedStructures":[{"id":"1"},{"id":"2"},{"id":"3"},{"id":"4"},{"id":"5"},{"id":"6"}]}`
	require.NoError(t, kv.Put(ctx, StorageKey, []byte(raw)))

	p := s.Load(ctx)
	assert.Equal(t, []string{"g1", "g2", "g3", "g4", "g5"}, p.CommonGoals)
	assert.Len(t, p.SavedStructures, MaxSavedStructures)
	assert.Equal(t, "1", p.SavedStructures[0].ID)

	p, err := s.Update(ctx, func(p *Profile) { p.RememberGoal("g3") })
	require.NoError(t, err)
	assert.Len(t, p.CommonGoals, MaxCommonGoals)
}

func TestLoadCorruptRecordGivesDefaults(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	require.NoError(t, kv.Put(ctx, StorageKey, []byte(`{"totalSessions": "many"`)))
	assert.Equal(t, Default(), s.Load(ctx))
}

func TestLoadBackendFailureGivesDefaults(t *testing.T) {
	s := NewStore(&failingBackend{getErr: errors.New("disk unavailable")})
	assert.Equal(t, Default(), s.Load(context.Background()))
}

func TestUpdateKeepsMemoryWhenSaveFails(t *testing.T) {
	backend := &failingBackend{putErr: errors.New("quota exceeded")}
	s := NewStore(backend)

	p, err := s.Update(context.Background(), func(p *Profile) { p.RecordGuideCreated() })
	assert.Error(t, err)
	assert.Equal(t, 1, p.TotalGuidesCreated)
	assert.Equal(t, 1, s.Profile().TotalGuidesCreated)
	assert.Equal(t, 1, backend.puts)
}

func TestProfileReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	p := s.Profile()
	p.CommonGoals = append(p.CommonGoals, "leak")
	p.ContentTypes[content.Video] = 5
	assert.Empty(t, s.Profile().CommonGoals)
	assert.Empty(t, s.Profile().ContentTypes)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	_, err := s.Update(ctx, func(p *Profile) {
		p.RecordVisit(testNow)
		p.AddStructure(SavedStructure{Name: "x", TabCount: 3})
		p.PreferredAudience = "Clients / customers"
	})
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.Equal(t, Default(), s.Profile())

	_, err = kv.Get(ctx, StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, Default(), NewStore(kv).Load(ctx))
}

func TestResetReportsBackendFailure(t *testing.T) {
	s := NewStore(&failingBackend{deleteErr: errors.New("locked")})
	_, _ = s.Update(context.Background(), func(p *Profile) { p.TotalSessions = 4 })

	assert.Error(t, s.Reset(context.Background()))
	assert.Equal(t, Default(), s.Profile())
}

func TestNowUsesClock(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, testNow, s.Now())
}
