package ui

import "github.com/iiroan/devmood/internal/prefs"

// ApplyPreferences switches the CLI styles to the palette for p.
func ApplyPreferences(p prefs.Preferences, noColor bool) {
	ApplyTheme(p.Theme, p.ColorTheme, noColor)
}

// ApplyTheme switches the color palette for plain CLI output and forms.
func ApplyTheme(display prefs.DisplayTheme, color prefs.ColorTheme, noColor bool) {
	palette := PaletteFor(display, color)
	palette.Disabled = noColor
	ApplyPalette(palette)
}
