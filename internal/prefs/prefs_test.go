package prefs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		raw     string
		want    string
		wantErr error
	}{
		{"theme dark", KeyTheme, "dark", "dark", nil},
		{"theme case folded", KeyTheme, " LIGHT ", "light", nil},
		{"theme invalid", KeyTheme, "sepia", "", ErrInvalidValue},
		{"color theme", KeyColorTheme, "Ocean", "ocean", nil},
		{"color theme invalid", KeyColorTheme, "neon", "", ErrInvalidValue},
		{"particles bool", KeyParticles, "false", "false", nil},
		{"particles lenient bool", KeyParticles, "1", "true", nil},
		{"particles invalid", KeyParticles, "maybe", "", ErrInvalidValue},
		{"density in range", KeyParticleDensity, "55", "55", nil},
		{"density clamped low", KeyParticleDensity, "3", "10", nil},
		{"density clamped high", KeyParticleDensity, "250", "100", nil},
		{"density not a number", KeyParticleDensity, "lots", "", ErrInvalidValue},
		{"interval clamped low", KeyAutoInterval, "1", "10", nil},
		{"interval clamped high", KeyAutoInterval, "9000", "300", nil},
		{"auto change", KeyAutoChange, "true", "true", nil},
		{"unknown key", Key("devmood-volume"), "11", "", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.key, tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("particle-density")
	require.NoError(t, err)
	assert.Equal(t, KeyParticleDensity, k)

	k, err = ParseKey("devmood-theme")
	require.NoError(t, err)
	assert.Equal(t, KeyTheme, k)

	_, err = ParseKey("volume")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in    string
		key   Key
		value string
		err   error
	}{
		{in: "theme=Dark", key: KeyTheme, value: "dark"},
		{in: " particle-density = 500 ", key: KeyParticleDensity, value: "100"},
		{in: "devmood-auto-change=true", key: KeyAutoChange, value: "true"},
		{in: "theme", err: ErrInvalidValue},
		{in: "=dark", err: ErrUnknownKey},
		{in: "volume=11", err: ErrUnknownKey},
		{in: "particles=maybe", err: ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, value, err := ParseAssignment(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestNormalize(t *testing.T) {
	p := Preferences{
		Theme:           "purple",
		ColorTheme:      "neon",
		ParticleDensity: 0,
		AutoInterval:    1000,
	}.Normalize()

	assert.Equal(t, ThemeLight, p.Theme)
	assert.Equal(t, ColorDefault, p.ColorTheme)
	assert.Equal(t, MinParticleDensity, p.ParticleDensity)
	assert.Equal(t, MaxAutoInterval, p.AutoInterval)
	assert.Equal(t, 300*time.Second, p.AutoIntervalDuration())
}

func TestDisplayThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, DisplayTheme("").Toggle())
}

func TestValueRoundTrip(t *testing.T) {
	p := Preferences{
		Theme:           ThemeDark,
		ColorTheme:      ColorForest,
		Particles:       false,
		ParticleDensity: 35,
		AutoChange:      true,
		AutoInterval:    120,
	}
	var got Preferences
	for _, k := range Keys() {
		v, err := ParseValue(k, p.Value(k))
		require.NoError(t, err)
		got.apply(k, v)
	}
	assert.Equal(t, p, got)
}
