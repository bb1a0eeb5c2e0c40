// Package ui provides Charm-based UI components for devmood
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Info      lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Highlight lipgloss.Color

	// Text styles
	Bold         lipgloss.Style
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	// Box styles
	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style

	// Table styles
	TableKey   lipgloss.Style
	TableValue lipgloss.Style
)

func init() {
	ApplyPalette(DefaultPalette())
}

// ApplyPalette rebuilds the package styles from p.
func ApplyPalette(p Palette) {
	if p.Disabled {
		p = Palette{Name: p.Name, Disabled: true}
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Border = p.Border
	Highlight = p.Highlight

	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = box(Secondary)
	SuccessBox = box(Success)

	TableKey = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		Width(24)

	TableValue = lipgloss.NewStyle().
		Foreground(p.Foreground)
}

func box(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
}

// Header renders the app title followed by a muted subtitle.
func Header(title string) string {
	return Title.Render("DevMood 🎧") + MutedStyle.Render("  ·  "+title)
}

// KeyValue renders one aligned "key  value" row.
func KeyValue(key string, value string) string {
	return TableKey.Render(key) + TableValue.Render(value)
}
