// Package prefs persists the board's user preferences in a key/value backend.
package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownKey   = errors.New("unknown preference")
	ErrInvalidValue = errors.New("invalid preference value")
)

// Key is a storage key.
type Key string

const (
	KeyTheme           Key = "devmood-theme"
	KeyColorTheme      Key = "devmood-color-theme"
	KeyParticles       Key = "devmood-particles"
	KeyParticleDensity Key = "devmood-particle-density"
	KeyAutoChange      Key = "devmood-auto-change"
	KeyAutoInterval    Key = "devmood-auto-interval"
)

// Keys returns every preference key in display order.
func Keys() []Key {
	return []Key{KeyTheme, KeyColorTheme, KeyParticles, KeyParticleDensity, KeyAutoChange, KeyAutoInterval}
}

// ParseKey accepts a full key or its short form without the "devmood-" prefix.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(name, "devmood-") {
		name = "devmood-" + name
	}
	for _, k := range Keys() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// ParseAssignment parses "name=value" into a key and the value's canonical
// encoding, so a batch of assignments can be checked before any is saved.
func ParseAssignment(s string) (Key, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("%w: %q is not name=value", ErrInvalidValue, s)
	}
	if strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: %q has no preference name", ErrUnknownKey, s)
	}
	key, err := ParseKey(name)
	if err != nil {
		return "", "", err
	}
	canonical, err := ParseValue(key, value)
	if err != nil {
		return "", "", err
	}
	return key, canonical, nil
}

// DisplayTheme is the light/dark mode.
type DisplayTheme string

const (
	ThemeLight DisplayTheme = "light"
	ThemeDark  DisplayTheme = "dark"
)

// Toggle flips light and dark.
func (t DisplayTheme) Toggle() DisplayTheme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ColorTheme selects the accent palette.
type ColorTheme string

const (
	ColorDefault  ColorTheme = "default"
	ColorOcean    ColorTheme = "ocean"
	ColorSunset   ColorTheme = "sunset"
	ColorForest   ColorTheme = "forest"
	ColorMidnight ColorTheme = "midnight"
)

// ColorThemes returns the supported accent palettes.
func ColorThemes() []ColorTheme {
	return []ColorTheme{ColorDefault, ColorOcean, ColorSunset, ColorForest, ColorMidnight}
}

const (
	MinParticleDensity     = 10
	MaxParticleDensity     = 100
	DefaultParticleDensity = 50

	MinAutoInterval     = 10
	MaxAutoInterval     = 300
	DefaultAutoInterval = 60
)

// Preferences is the full set of user settings.
type Preferences struct {
	Theme           DisplayTheme
	ColorTheme      ColorTheme
	Particles       bool
	ParticleDensity int
	AutoChange      bool
	AutoInterval    int // seconds
}

// Defaults returns the built-in preference set.
func Defaults() Preferences {
	return Preferences{
		Theme:           ThemeLight,
		ColorTheme:      ColorDefault,
		Particles:       true,
		ParticleDensity: DefaultParticleDensity,
		AutoChange:      false,
		AutoInterval:    DefaultAutoInterval,
	}
}

// AutoIntervalDuration returns the auto-change period.
func (p Preferences) AutoIntervalDuration() time.Duration {
	return time.Duration(p.AutoInterval) * time.Second
}

// Normalize replaces invalid enums with defaults and clamps ranges.
func (p Preferences) Normalize() Preferences {
	d := Defaults()
	if p.Theme != ThemeLight && p.Theme != ThemeDark {
		p.Theme = d.Theme
	}
	if !validColorTheme(p.ColorTheme) {
		p.ColorTheme = d.ColorTheme
	}
	p.ParticleDensity = clamp(p.ParticleDensity, MinParticleDensity, MaxParticleDensity)
	p.AutoInterval = clamp(p.AutoInterval, MinAutoInterval, MaxAutoInterval)
	return p
}

// Value returns the encoded value for key.
func (p Preferences) Value(key Key) string {
	switch key {
	case KeyTheme:
		return string(p.Theme)
	case KeyColorTheme:
		return string(p.ColorTheme)
	case KeyParticles:
		return strconv.FormatBool(p.Particles)
	case KeyParticleDensity:
		return strconv.Itoa(p.ParticleDensity)
	case KeyAutoChange:
		return strconv.FormatBool(p.AutoChange)
	case KeyAutoInterval:
		return strconv.Itoa(p.AutoInterval)
	default:
		return ""
	}
}

// apply sets key from an already validated value.
func (p *Preferences) apply(key Key, value string) {
	switch key {
	case KeyTheme:
		p.Theme = DisplayTheme(value)
	case KeyColorTheme:
		p.ColorTheme = ColorTheme(value)
	case KeyParticles:
		p.Particles, _ = strconv.ParseBool(value)
	case KeyParticleDensity:
		p.ParticleDensity, _ = strconv.Atoi(value)
	case KeyAutoChange:
		p.AutoChange, _ = strconv.ParseBool(value)
	case KeyAutoInterval:
		p.AutoInterval, _ = strconv.Atoi(value)
	}
}

// ParseValue validates raw for key and returns its canonical encoding.
// Integers outside their range are clamped rather than rejected.
func ParseValue(key Key, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch key {
	case KeyTheme:
		t := DisplayTheme(strings.ToLower(raw))
		if t != ThemeLight && t != ThemeDark {
			return "", fmt.Errorf("%w: %s must be light or dark, got %q", ErrInvalidValue, key, raw)
		}
		return string(t), nil
	case KeyColorTheme:
		c := ColorTheme(strings.ToLower(raw))
		if !validColorTheme(c) {
			return "", fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidValue, key, ColorThemes(), raw)
		}
		return string(c), nil
	case KeyParticles, KeyAutoChange:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidValue, key, raw)
		}
		return strconv.FormatBool(b), nil
	case KeyParticleDensity:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, key, raw)
		}
		return strconv.Itoa(clamp(n, MinParticleDensity, MaxParticleDensity)), nil
	case KeyAutoInterval:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, key, raw)
		}
		return strconv.Itoa(clamp(n, MinAutoInterval, MaxAutoInterval)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

func validColorTheme(c ColorTheme) bool {
	for _, known := range ColorThemes() {
		if c == known {
			return true
		}
	}
	return false
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
