package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()

	sqliteStore, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]KV{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(t.TempDir()),
		"sqlite": sqliteStore,
	}
}

func TestBackends(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "profile")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Put(ctx, "profile", []byte(`{"a":1}`)))
			got, err := kv.Get(ctx, "profile")
			require.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, kv.Put(ctx, "profile", []byte(`{"a":2}`)))
			got, err = kv.Get(ctx, "profile")
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, string(got))

			require.NoError(t, kv.Delete(ctx, "profile"))
			_, err = kv.Get(ctx, "profile")
			assert.ErrorIs(t, err, ErrNotFound)

			// deleting a missing key is not an error
			assert.NoError(t, kv.Delete(ctx, "profile"))
		})
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "nested"))
	require.NoError(t, s.Put(context.Background(), "itabs_assistant_profile", []byte("{}")))

	_, err := os.Stat(filepath.Join(dir, "nested", "itabs_assistant_profile.json"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s := NewFileStore(t.TempDir())
	assert.Error(t, s.Put(context.Background(), "../escape", []byte("{}")))
	_, err := s.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(dir)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestOpen(t *testing.T) {
	kv, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)

	kv, err = Open("", t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, kv)

	_, err = Open("redis", t.TempDir())
	assert.Error(t, err)
}

func TestParseMigrationVersion(t *testing.T) {
	v, err := parseMigrationVersion("001_kv.sql")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = parseMigrationVersion("kv.sql")
	assert.Error(t, err)
}
