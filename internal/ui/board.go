package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/iiroan/devmood/internal/content"
	"github.com/iiroan/devmood/internal/prefs"
	"github.com/iiroan/devmood/internal/rotate"
	"github.com/iiroan/devmood/internal/weather"
)

// Tab is one board panel.
type Tab int

const (
	TabJokes Tab = iota
	TabMusic
	TabWeather
	TabSnippets
)

var tabNames = []string{"jokes", "music", "weather", "snippets"}

var tabLabels = []string{"Dev Jokes", "Music", "Weather", "Snippets"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

// ParseTab maps a tab name to a Tab, falling back to TabJokes.
func ParseTab(name string) Tab {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tabNames {
		if n == name {
			return Tab(i)
		}
	}
	return TabJokes
}

// BoardAction is why the board exited.
type BoardAction string

const (
	BoardActionQuit     BoardAction = "quit"
	BoardActionSettings BoardAction = "settings"
)

const noticeDuration = 2 * time.Second

// JokeAdvanceMsg asks the board to rotate the joke panel.
type JokeAdvanceMsg struct{}

// ThemeMsg reports a saved display theme change. Seq orders deliveries from
// a ThemeRelay; zero means unordered.
type ThemeMsg struct {
	Theme prefs.DisplayTheme
	Seq   uint64
}

// PreferencesMsg replaces the board's preferences.
type PreferencesMsg struct{ Preferences prefs.Preferences }

type transitionDoneMsg struct{ tab Tab }

type weatherLoadedMsg struct{ seq int }

type noticeExpiredMsg struct{ seq int }

// AutoAdvancer schedules JokeAdvanceMsg deliveries.
type AutoAdvancer interface {
	Configure(enabled bool, interval time.Duration)
}

// BoardOptions configures a Board. Zero content slices use the built-in tables.
type BoardOptions struct {
	Preferences     prefs.Preferences
	StartTab        Tab
	TransitionDelay time.Duration
	WeatherDelay    time.Duration
	NoColor         bool

	Jokes     []string
	Playlists []content.Playlist
	Snippets  []content.Snippet

	IntN     rotate.IntN
	Weather  *weather.Service
	Advancer AutoAdvancer

	// ToggleTheme persists a theme chosen with the toggle key.
	ToggleTheme func(prefs.DisplayTheme)
	// Copy writes text to the clipboard.
	Copy func(string) error
}

type boardKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Jump     key.Binding
	Refresh  key.Binding
	Theme    key.Binding
	Copy     key.Binding
	Settings key.Binding
	Quit     key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
		Refresh:  key.NewBinding(key.WithKeys("n", "enter", "space"), key.WithHelp("n", "new")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Jump, k.Refresh, k.Copy, k.Theme, k.Settings, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Jump}, {k.Refresh, k.Copy, k.Theme}, {k.Settings, k.Quit}}
}

// Board is the mood board model.
type Board struct {
	opts    BoardOptions
	prefs   prefs.Preferences
	palette Palette
	tab     Tab

	jokes    *rotate.Rotator[string]
	music    *rotate.Rotator[content.Playlist]
	snippets *rotate.Rotator[content.Snippet]

	weather        *weather.Record
	weatherLoading bool
	weatherSeq     int
	spinner        spinner.Model

	particles        particleField
	particlesRunning bool

	notice    string
	noticeErr bool
	noticeSeq int

	themeSeq uint64

	help help.Model
	keys boardKeyMap

	width  int
	height int
	action BoardAction
}

// NewBoard builds a board showing opts.StartTab. The joke panel starts with
// a transition so the first joke is a random pick.
func NewBoard(opts BoardOptions) Board {
	if opts.Jokes == nil {
		opts.Jokes = content.Jokes()
	}
	if opts.Playlists == nil {
		opts.Playlists = content.Playlists()
	}
	if opts.Snippets == nil {
		opts.Snippets = content.Snippets()
	}
	if opts.IntN == nil {
		opts.IntN = rotate.DefaultIntN
	}
	if opts.Weather == nil {
		opts.Weather = weather.NewService(opts.IntN)
	}

	p := opts.Preferences.Normalize()

	b := Board{
		opts:     opts,
		prefs:    p,
		tab:      opts.StartTab,
		jokes:    rotate.New(opts.Jokes, opts.IntN),
		music:    rotate.New(opts.Playlists, opts.IntN),
		snippets: rotate.New(opts.Snippets, opts.IntN),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:     newBoardKeyMap(),
		help:     help.New(),
	}
	if b.tab < TabJokes || b.tab > TabSnippets {
		b.tab = TabJokes
	}

	b.jokes.Begin()
	b.snippets.Shuffle()
	b.weatherLoading = true
	b.weatherSeq = 1
	b.particles = newParticleField(60, p.ParticleDensity, opts.IntN)
	b.particlesRunning = p.Particles
	b.setPalette()
	return b
}

// Action reports why the board exited.
func (b Board) Action() BoardAction { return b.action }

// Preferences returns the board's current preferences.
func (b Board) Preferences() prefs.Preferences { return b.prefs }

// Tab returns the active tab.
func (b Board) Tab() Tab { return b.tab }

func (b *Board) setPalette() {
	b.palette = PaletteFor(b.prefs.Theme, b.prefs.ColorTheme)
	b.palette.Disabled = b.opts.NoColor

	keyStyle := lipgloss.NewStyle().Foreground(b.color(string(b.palette.Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(b.color(string(b.palette.Muted)))
	b.help.Styles.ShortKey = keyStyle
	b.help.Styles.ShortDesc = hintStyle
	b.help.Styles.ShortSeparator = hintStyle
	b.help.Styles.FullKey = keyStyle
	b.help.Styles.FullDesc = hintStyle
	b.help.Styles.Ellipsis = hintStyle
	b.spinner.Style = lipgloss.NewStyle().Foreground(b.color(string(b.palette.Primary)))
}

func (b Board) transition(tab Tab) tea.Cmd {
	return tea.Tick(b.opts.TransitionDelay, func(time.Time) tea.Msg {
		return transitionDoneMsg{tab: tab}
	})
}

func (b Board) loadWeather() tea.Cmd {
	seq := b.weatherSeq
	load := tea.Tick(b.opts.WeatherDelay, func(time.Time) tea.Msg {
		return weatherLoadedMsg{seq: seq}
	})
	return tea.Batch(load, b.spinner.Tick)
}

func (b Board) notify(text string, isErr bool) (Board, tea.Cmd) {
	b.noticeSeq++
	b.notice = text
	b.noticeErr = isErr
	seq := b.noticeSeq
	return b, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (b Board) Init() tea.Cmd {
	cmds := []tea.Cmd{b.transition(TabJokes), b.loadWeather()}
	if b.particlesRunning {
		cmds = append(cmds, particleTick())
	}
	return tea.Batch(cmds...)
}

func (b Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.particles.resize(b.panelWidth(), b.prefs.ParticleDensity)
		return b, nil

	case tea.KeyPressMsg:
		return b.handleKey(msg)

	case JokeAdvanceMsg:
		if !b.jokes.Begin() {
			return b, nil
		}
		return b, b.transition(TabJokes)

	case transitionDoneMsg:
		switch msg.tab {
		case TabJokes:
			b.jokes.Commit()
		case TabMusic:
			b.music.Commit()
		case TabSnippets:
			b.snippets.Commit()
		}
		return b, nil

	case weatherLoadedMsg:
		if msg.seq != b.weatherSeq {
			return b, nil
		}
		var rec weather.Record
		if b.weather == nil {
			rec = b.opts.Weather.RandomLocation()
		} else {
			loc, _ := rotate.Pick(weather.Locations(), b.weather.Location, b.opts.IntN)
			rec = b.opts.Weather.Lookup(loc)
		}
		b.weather = &rec
		b.weatherLoading = false
		return b, nil

	case spinner.TickMsg:
		if !b.weatherLoading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case particleTickMsg:
		if !b.prefs.Particles {
			b.particlesRunning = false
			return b, nil
		}
		b.particles.step()
		return b, particleTick()

	case ThemeMsg:
		if msg.Seq != 0 {
			if msg.Seq <= b.themeSeq {
				return b, nil
			}
			b.themeSeq = msg.Seq
		}
		if msg.Theme == b.prefs.Theme {
			return b, nil
		}
		b.prefs.Theme = msg.Theme
		b.setPalette()
		return b, nil

	case PreferencesMsg:
		return b.applyPreferences(msg.Preferences)

	case noticeExpiredMsg:
		if msg.seq == b.noticeSeq {
			b.notice = ""
			b.noticeErr = false
		}
		return b, nil
	}

	return b, nil
}

func (b Board) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		b.action = BoardActionQuit
		return b, tea.Quit
	case key.Matches(msg, b.keys.Settings):
		b.action = BoardActionSettings
		return b, tea.Quit
	case key.Matches(msg, b.keys.Next):
		b.tab = (b.tab + 1) % Tab(len(tabNames))
	case key.Matches(msg, b.keys.Prev):
		b.tab = (b.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
	case key.Matches(msg, b.keys.Jump):
		b.tab = Tab(msg.String()[0] - '1')
	case key.Matches(msg, b.keys.Refresh):
		return b.refresh()
	case key.Matches(msg, b.keys.Theme):
		b.prefs.Theme = b.prefs.Theme.Toggle()
		b.setPalette()
		if b.opts.ToggleTheme != nil {
			b.opts.ToggleTheme(b.prefs.Theme)
		}
	case key.Matches(msg, b.keys.Copy):
		return b.copySnippet()
	}
	return b, nil
}

func (b Board) refresh() (tea.Model, tea.Cmd) {
	switch b.tab {
	case TabJokes:
		if b.jokes.Begin() {
			return b, b.transition(TabJokes)
		}
	case TabMusic:
		if b.music.Begin() {
			return b, b.transition(TabMusic)
		}
	case TabSnippets:
		if b.snippets.Begin() {
			return b, b.transition(TabSnippets)
		}
	case TabWeather:
		if b.weatherLoading {
			return b, nil
		}
		b.weatherLoading = true
		b.weatherSeq++
		return b, b.loadWeather()
	}
	return b, nil
}

func (b Board) copySnippet() (tea.Model, tea.Cmd) {
	if b.tab != TabSnippets || b.snippets.Changing() || b.snippets.Len() == 0 {
		return b, nil
	}
	if b.opts.Copy == nil {
		return b.notify("Clipboard unavailable", true)
	}
	s := b.snippets.Current()
	if err := b.opts.Copy(s.Code); err != nil {
		return b.notify(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return b.notify("Copied "+s.Language+" snippet", false)
}

func (b Board) applyPreferences(p prefs.Preferences) (tea.Model, tea.Cmd) {
	b.prefs = p.Normalize()
	b.setPalette()
	b.particles.resize(b.panelWidth(), b.prefs.ParticleDensity)
	if b.opts.Advancer != nil {
		b.opts.Advancer.Configure(b.prefs.AutoChange, b.prefs.AutoIntervalDuration())
	}
	if b.prefs.Particles && !b.particlesRunning {
		b.particlesRunning = true
		return b, particleTick()
	}
	return b, nil
}
