package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getOnly hides the Snapshotter side of a backend so Load reads key by key.
type getOnly struct{ Backend }

func TestStore_LoadEmptyGivesDefaults(t *testing.T) {
	ctx := context.Background()
	for name, backend := range map[string]Backend{
		"memory":      NewMemoryBackend(),
		"per key":     getOnly{NewMemoryBackend()},
		"unavailable": Unavailable(),
		"nil":         nil,
	} {
		t.Run(name, func(t *testing.T) {
			s := NewStore(backend, nil)
			assert.Equal(t, Defaults(), s.Load(ctx))
		})
	}
}

func TestStore_LoadIgnoresBadValues(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryBackend()
	require.NoError(t, mem.Set(ctx, string(KeyTheme), "dark"))
	require.NoError(t, mem.Set(ctx, string(KeyColorTheme), "neon"))
	require.NoError(t, mem.Set(ctx, string(KeyParticles), "nope"))
	require.NoError(t, mem.Set(ctx, string(KeyParticleDensity), "500"))
	require.NoError(t, mem.Set(ctx, string(KeyAutoChange), "true"))
	require.NoError(t, mem.Set(ctx, string(KeyAutoInterval), "NaN"))
	require.NoError(t, mem.Set(ctx, "unrelated", "value"))

	p := NewStore(mem, nil).Load(ctx)
	assert.Equal(t, Preferences{
		Theme:           ThemeDark,
		ColorTheme:      ColorDefault,
		Particles:       true,
		ParticleDensity: MaxParticleDensity,
		AutoChange:      true,
		AutoInterval:    DefaultAutoInterval,
	}, p)
}

func TestStore_SaveClampsDensity(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryBackend()
	s := NewStore(mem, nil)

	stored, err := s.Save(ctx, KeyParticleDensity, "5")
	require.NoError(t, err)
	assert.Equal(t, "10", stored)

	raw, ok, err := mem.Get(ctx, string(KeyParticleDensity))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "10", raw)

	stored, err = s.Save(ctx, KeyParticleDensity, "101")
	require.NoError(t, err)
	assert.Equal(t, "100", stored)
	assert.Equal(t, 100, s.Load(ctx).ParticleDensity)
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryBackend()
	s := NewStore(mem, nil)

	_, err := s.Save(ctx, KeyTheme, "sepia")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = s.Save(ctx, KeyParticleDensity, "dense")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = s.Save(ctx, Key("devmood-volume"), "11")
	require.ErrorIs(t, err, ErrUnknownKey)

	all, err := mem.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected values are never written")
}

func TestStore_UnavailableBackendIsSilent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Unavailable(), nil)

	stored, err := s.Save(ctx, KeyAutoChange, "true")
	require.NoError(t, err)
	assert.Equal(t, "true", stored)
	assert.False(t, s.Load(ctx).AutoChange, "nothing persisted")

	require.NoError(t, s.SaveAll(ctx, Defaults()))
	s.Reset(ctx)
	assert.Empty(t, s.Raw(ctx))
}

func TestStore_ThemeListeners(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryBackend(), nil)

	var got []DisplayTheme
	unsubscribe := s.OnThemeChange(func(t DisplayTheme) { got = append(got, t) })

	_, err := s.Save(ctx, KeyTheme, "dark")
	require.NoError(t, err)
	_, err = s.Save(ctx, KeyColorTheme, "ocean")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.ToggleTheme(ctx))
	assert.Equal(t, []DisplayTheme{ThemeDark, ThemeLight}, got)

	unsubscribe()
	unsubscribe()
	_, err = s.Save(ctx, KeyTheme, "dark")
	require.NoError(t, err)
	assert.Len(t, got, 2, "no notifications after unsubscribe")
}

func TestStore_ThemeListenerFiresWithoutStorage(t *testing.T) {
	s := NewStore(Unavailable(), nil)
	var got DisplayTheme
	defer s.OnThemeChange(func(t DisplayTheme) { got = t })()

	_, err := s.Save(context.Background(), KeyTheme, "dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)
}

func TestStore_SaveAllAndReset(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryBackend(), nil)

	want := Preferences{
		Theme:           ThemeDark,
		ColorTheme:      ColorSunset,
		Particles:       false,
		ParticleDensity: 80,
		AutoChange:      true,
		AutoInterval:    30,
	}
	require.NoError(t, s.SaveAll(ctx, want))
	assert.Equal(t, want, s.Load(ctx))
	assert.Len(t, s.Raw(ctx), len(Keys()))

	var notified DisplayTheme
	defer s.OnThemeChange(func(t DisplayTheme) { notified = t })()
	s.Reset(ctx)
	assert.Equal(t, Defaults(), s.Load(ctx))
	assert.Equal(t, ThemeLight, notified)
}
