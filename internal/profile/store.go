package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sant0-9/itabs/internal/storage"
)

// StorageKey is the key the profile record is persisted under.
const StorageKey = "itabs_assistant_profile"

// Backend persists opaque records by key. Implemented by the storage package.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// Store owns the in-memory profile and writes it through to a Backend after
// every mutation. Persistence failures are logged and never block the caller;
// the in-memory value stays authoritative.
type Store struct {
	backend Backend
	clock   Clock

	mu      sync.RWMutex
	current Profile
}

// NewStore creates a Store holding the default profile. Call Load to read
// the persisted record.
func NewStore(backend Backend) *Store {
	return NewStoreWithClock(backend, realClock{})
}

// NewStoreWithClock creates a Store with a custom clock (for testing).
func NewStoreWithClock(backend Backend, clock Clock) *Store {
	return &Store{
		backend: backend,
		clock:   clock,
		current: Default(),
	}
}

// Now returns the store's notion of the current time.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Load reads the persisted record and merges it over the defaults, so fields
// missing from older records keep their default value. A missing, unreadable
// or corrupt record leaves the defaults in place.
func (s *Store) Load(ctx context.Context) Profile {
	p := Default()

	raw, err := s.backend.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		slog.Warn("could not load assistant profile, using defaults", "error", err)
	case len(raw) > 0:
		if err := json.Unmarshal(raw, &p); err != nil {
			slog.Warn("malformed assistant profile, using defaults", "error", err)
			p = Default()
		}
	}
	p.normalize()

	s.mu.Lock()
	s.current = p
	s.mu.Unlock()

	return p.Clone()
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies fn to a copy of the profile, makes the copy current and
// persists it. Readers never observe a partially applied fn. The returned
// error reports a failed save only; the update itself always takes effect.
func (s *Store) Update(ctx context.Context, fn func(p *Profile)) (Profile, error) {
	s.mu.Lock()
	next := s.current.Clone()
	fn(&next)
	next.normalize()
	s.current = next
	snapshot := next.Clone()
	s.mu.Unlock()

	if err := s.save(ctx, snapshot); err != nil {
		slog.Warn("could not save assistant profile", "error", err)
		return snapshot, err
	}
	return snapshot, nil
}

// Reset removes the persisted record and restores the default profile.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.current = Default()
	s.mu.Unlock()

	if err := s.backend.Delete(ctx, StorageKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("could not remove assistant profile", "error", err)
		return fmt.Errorf("removing profile: %w", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := s.backend.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}
