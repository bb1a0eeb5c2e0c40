package ui

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/devmood/internal/prefs"
)

const (
	minPanelWidth = 30
	maxPanelWidth = 76
)

func (b Board) color(c string) color.Color {
	if b.palette.Disabled || c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}

func (b Board) panelWidth() int {
	width := b.width
	if width <= 0 {
		width = TerminalWidth()
	}
	return min(max(width-4, minPanelWidth), maxPanelWidth)
}

// accentBorder is the panel border color. In light mode the last loaded
// weather condition tints it on every tab.
func (b Board) accentBorder() color.Color {
	if b.prefs.Theme == prefs.ThemeLight && b.weather != nil {
		if tint, ok := ConditionTint(b.weather.Condition); ok {
			return b.color(string(tint))
		}
	}
	return b.color(string(b.palette.Primary))
}

func (b Board) View() tea.View {
	v := tea.NewView(b.render())
	v.AltScreen = true
	return v
}

func (b Board) render() string {
	if b.action != "" {
		return ""
	}

	width := b.panelWidth()
	inner := width - 4

	title := lipgloss.NewStyle().Foreground(b.color(string(b.palette.Primary))).Bold(true).Render("DevMood 🎧")
	tagline := lipgloss.NewStyle().Foreground(b.color(string(b.palette.Muted))).Italic(true).Render("Fuel your coding mood")

	sections := []string{title + "  " + tagline}
	if b.prefs.Particles {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(b.color(string(b.palette.Secondary))).
			Render(ansi.Truncate(b.particles.render(), width, "")))
	}
	sections = append(sections, b.renderTabs())

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.accentBorder()).
		Foreground(b.color(string(b.palette.Foreground))).
		Padding(0, 1).
		Width(width).
		Render(b.renderPanel(inner))
	sections = append(sections, panel)

	if b.notice != "" {
		fg := b.palette.Success
		if b.noticeErr {
			fg = b.palette.Error
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(b.color(string(fg))).Render(b.notice))
	}
	sections = append(sections, b.help.View(b.keys))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (b Board) renderTabs() string {
	active := lipgloss.NewStyle().
		Foreground(b.color("#FFFFFF")).
		Background(b.color(string(b.palette.Primary))).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(b.color(string(b.palette.Muted))).
		Padding(0, 1)

	tabs := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		label = fmt.Sprintf("%d %s", i+1, label)
		if Tab(i) == b.tab {
			tabs[i] = active.Render(label)
			continue
		}
		tabs[i] = inactive.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (b Board) renderPanel(inner int) string {
	heading := lipgloss.NewStyle().Foreground(b.color(string(b.palette.Accent))).Bold(true)
	muted := lipgloss.NewStyle().Foreground(b.color(string(b.palette.Muted)))
	body := lipgloss.NewStyle().Width(inner)

	var lines []string
	switch b.tab {
	case TabJokes:
		lines = append(lines, heading.Render("😄 Dev Joke"), "")
		switch {
		case b.jokes.Len() == 0:
			lines = append(lines, muted.Render("No jokes today."))
		case b.jokes.Changing():
			lines = append(lines, muted.Render("Shuffling..."))
		default:
			lines = append(lines, body.Render(b.jokes.Current()))
		}
		if b.prefs.AutoChange {
			lines = append(lines, "", muted.Render(fmt.Sprintf("auto-change every %ds", b.prefs.AutoInterval)))
		}

	case TabMusic:
		lines = append(lines, heading.Render("🎵 Coding Playlist"), "")
		switch {
		case b.music.Len() == 0:
			lines = append(lines, muted.Render("No playlists."))
		case b.music.Changing():
			lines = append(lines, muted.Render("Switching..."))
		default:
			pl := b.music.Current()
			lines = append(lines,
				lipgloss.NewStyle().Bold(true).Render(pl.Name),
				muted.Render(ansi.Truncate(pl.Embed, inner, "...")),
			)
		}

	case TabWeather:
		lines = append(lines, heading.Render("🌤 Weather"), "")
		if b.weatherLoading || b.weather == nil {
			lines = append(lines, b.spinner.View()+" "+muted.Render("Fetching weather..."))
			break
		}
		w := b.weather
		lines = append(lines,
			lipgloss.NewStyle().Bold(true).Render(w.Condition.Icon()+"  "+w.Location),
			fmt.Sprintf("%d°C  %s", w.Temperature, w.Description),
			muted.Render(fmt.Sprintf("humidity %d%%  wind %d km/h", w.Humidity, w.WindSpeed)),
		)

	case TabSnippets:
		lines = append(lines, heading.Render("💻 Code Snippet"), "")
		switch {
		case b.snippets.Len() == 0:
			lines = append(lines, muted.Render("No snippets."))
		case b.snippets.Changing():
			lines = append(lines, muted.Render("Loading..."))
		default:
			s := b.snippets.Current()
			code := lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(b.color(string(b.palette.Border))).
				PaddingLeft(1).
				Render(truncateLines(s.Code, inner-2))
			lines = append(lines, lipgloss.NewStyle().Bold(true).Render(s.Language), code)
		}
	}

	return strings.Join(lines, "\n")
}

func truncateLines(text string, width int) string {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, row := range rows {
		rows[i] = ansi.Truncate(row, max(width, 1), "...")
	}
	return strings.Join(rows, "\n")
}
