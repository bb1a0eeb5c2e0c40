package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/devmood/internal/prefs"
	"github.com/iiroan/devmood/internal/weather"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

type accent struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
}

var accents = map[prefs.ColorTheme]accent{
	prefs.ColorDefault:  {"#9333EA", "#4F46E5"},
	prefs.ColorOcean:    {"#2563EB", "#0891B2"},
	prefs.ColorSunset:   {"#F97316", "#DB2777"},
	prefs.ColorForest:   {"#16A34A", "#059669"},
	prefs.ColorMidnight: {"#475569", "#1E293B"},
}

// ColorThemeLabel returns the display name for a color theme.
func ColorThemeLabel(c prefs.ColorTheme) string {
	switch c {
	case prefs.ColorOcean:
		return "Ocean"
	case prefs.ColorSunset:
		return "Sunset"
	case prefs.ColorForest:
		return "Forest"
	case prefs.ColorMidnight:
		return "Midnight"
	default:
		return "Default"
	}
}

// PaletteFor combines the light/dark base with a color theme accent.
func PaletteFor(display prefs.DisplayTheme, color prefs.ColorTheme) Palette {
	a, ok := accents[color]
	if !ok {
		a = accents[prefs.ColorDefault]
	}

	if display == prefs.ThemeDark {
		return Palette{
			Name:       string(color) + "-dark",
			Primary:    a.primary,
			Secondary:  a.secondary,
			Accent:     "#38BDF8",
			Info:       "#60A5FA",
			Success:    "#34D399",
			Warning:    "#FBBF24",
			Error:      "#F87171",
			Muted:      "#94A3B8",
			Background: "#0F172A",
			Foreground: "#E2E8F0",
			Border:     "#334155",
			Highlight:  "#7DD3FC",
		}
	}
	return Palette{
		Name:       string(color) + "-light",
		Primary:    a.primary,
		Secondary:  a.secondary,
		Accent:     "#0284C7",
		Info:       "#2563EB",
		Success:    "#059669",
		Warning:    "#D97706",
		Error:      "#DC2626",
		Muted:      "#64748B",
		Background: "#EEF2FF",
		Foreground: "#1E293B",
		Border:     "#CBD5E1",
		Highlight:  "#4338CA",
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	d := prefs.Defaults()
	return PaletteFor(d.Theme, d.ColorTheme)
}

// ConditionTint returns the backdrop color for a weather condition. Unknown
// conditions have no tint.
func ConditionTint(c weather.Condition) (lipgloss.Color, bool) {
	switch c {
	case weather.Clear:
		return "#BAE6FD", true
	case weather.Clouds:
		return "#E5E7EB", true
	case weather.Rain:
		return "#3B82F6", true
	case weather.Drizzle:
		return "#60A5FA", true
	case weather.Thunderstorm:
		return "#6366F1", true
	case weather.Snow:
		return "#E0E7FF", true
	case weather.Mist:
		return "#D1D5DB", true
	case weather.Fog:
		return "#9CA3AF", true
	default:
		return "", false
	}
}
