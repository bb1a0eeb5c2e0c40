package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	_, found, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.Set(ctx, "devmood-theme", "dark"))
	require.NoError(t, b.Set(ctx, "devmood-theme", "light"))
	require.NoError(t, b.Set(ctx, "devmood-particles", "false"))

	v, found, err := b.Get(ctx, "devmood-theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", v)

	if snap, ok := b.(Snapshotter); ok {
		all, err := snap.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"devmood-theme": "light", "devmood-particles": "false"}, all)
	}

	require.NoError(t, b.Clear(ctx))
	_, found, err = b.Get(ctx, "devmood-theme")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, NewMemoryBackend())
}

func TestFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	b := NewFileBackend(path)
	assert.Equal(t, path, b.Path())
	exerciseBackend(t, b)

	require.NoError(t, b.Clear(context.Background()), "clearing a missing file is fine")
}

func TestFileBackend_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	s := NewStore(NewFileBackend(path), nil)
	_, err := s.Save(ctx, KeyAutoInterval, "90")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "devmood-auto-interval")

	reopened := NewStore(NewFileBackend(path), nil)
	assert.Equal(t, 90, reopened.Load(ctx).AutoInterval)
}

func TestFileBackend_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences: [not, a, map"), 0o644))

	b := NewFileBackend(path)
	_, _, err := b.Get(context.Background(), "devmood-theme")
	require.Error(t, err)

	assert.Equal(t, Defaults(), NewStore(b, nil).Load(context.Background()))
}

func TestSQLiteBackend(t *testing.T) {
	b, err := OpenSQLite(context.Background(), SQLiteConfig{DSN: ":memory:"})
	require.NoError(t, err)
	defer func() { assert.NoError(t, b.Close()) }()
	exerciseBackend(t, b)
}

func TestSQLiteBackend_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.db")

	b, err := Open(ctx, Options{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	s := NewStore(b, nil)
	_, err = s.Save(ctx, KeyColorTheme, "midnight")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	b, err = Open(ctx, Options{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	s = NewStore(b, nil)
	defer s.Close()
	assert.Equal(t, ColorMidnight, s.Load(ctx).ColorTheme)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	b, err := Open(ctx, Options{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = Open(ctx, Options{Driver: "", Path: filepath.Join(t.TempDir(), "p.yaml")})
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, b)

	_, err = Open(ctx, Options{Driver: DriverFile})
	require.Error(t, err)

	_, err = Open(ctx, Options{Driver: "redis"})
	require.Error(t, err)
}

func TestWatcher_ReportsExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	changed := make(chan struct{}, 8)

	w, err := Watch(path, func() { changed <- struct{}{} }, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, w.Close()) }()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.txt"), []byte("x"), 0o644))

	_, err = NewStore(NewFileBackend(path), nil).Save(context.Background(), KeyTheme, "dark")
	require.NoError(t, err)

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcher_ReportsSQLiteWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preferences.db")

	writer, err := Open(ctx, Options{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	defer writer.Close()

	changed := make(chan struct{}, 8)
	w, err := Watch(path, func() { changed <- struct{}{} }, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, w.Close()) }()

	_, err = NewStore(writer, nil).Save(ctx, KeyTheme, "dark")
	require.NoError(t, err)

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification for a WAL write")
	}
}

func TestWatcher_MatchesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.db")
	w, err := Watch(path, nil, nil)
	require.NoError(t, err)
	defer w.Close()

	assert.True(t, w.matches(path))
	assert.True(t, w.matches(path+"-wal"))
	assert.False(t, w.matches(path+"-shm"))
	assert.False(t, w.matches(filepath.Join(filepath.Dir(path), "other.db")))
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "preferences.yaml"), nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
