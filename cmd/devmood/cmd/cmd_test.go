package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/devmood/internal/prefs"
)

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"theme=dark", " particle-density = 80 ", "", "theme=light"})
	require.NoError(t, err)
	assert.Equal(t, map[prefs.Key]string{
		prefs.KeyTheme:           "light",
		prefs.KeyParticleDensity: "80",
	}, got)

	_, err = parseAssignments([]string{"theme=dark", "auto-interval=soon"})
	assert.ErrorIs(t, err, prefs.ErrInvalidValue)

	_, err = parseAssignments([]string{"=dark"})
	assert.ErrorIs(t, err, prefs.ErrUnknownKey)
}

func TestSettingsInputRoundTrip(t *testing.T) {
	p := prefs.Defaults()
	p.Theme = prefs.ThemeDark
	p.AutoChange = true
	p.AutoInterval = 45

	in := newSettingsInput(p)
	assert.Equal(t, p, in.preferences(prefs.Defaults()))
}

func TestSettingsInputKeepsBaseOnBadNumbers(t *testing.T) {
	base := prefs.Defaults()
	in := newSettingsInput(base)
	in.density = "lots"
	in.autoInterval = "9999"

	got := in.preferences(base)
	assert.Equal(t, base.ParticleDensity, got.ParticleDensity)
	assert.Equal(t, prefs.MaxAutoInterval, got.AutoInterval)
}

func TestValidateRange(t *testing.T) {
	check := validateRange(10, 100)
	assert.NoError(t, check("10"))
	assert.NoError(t, check("100"))
	assert.Error(t, check("9"))
	assert.Error(t, check("abc"))
}

func TestOnOff(t *testing.T) {
	assert.Equal(t, "off", onOff(false, "x"))
	assert.Equal(t, "on, every 60s", onOff(true, "every 60s"))
}
