package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/iiroan/devmood/internal/rotate"
)

const particleInterval = 120 * time.Millisecond

var particleGlyphs = []rune{'·', '∙', '•', '✦', '⋆', '°'}

type particleTickMsg struct{}

func particleTick() tea.Cmd {
	return tea.Tick(particleInterval, func(time.Time) tea.Msg {
		return particleTickMsg{}
	})
}

type particle struct {
	x     int
	glyph rune
	speed int
}

// particleField is a one-row strip of drifting glyphs. Its population
// scales with the density preference.
type particleField struct {
	width   int
	density int
	frame   int
	parts   []particle
	intn    rotate.IntN
}

func particleCount(width, density int) int {
	return max(1, width*density/200)
}

func newParticleField(width, density int, intn rotate.IntN) particleField {
	if intn == nil {
		intn = rotate.DefaultIntN
	}
	f := particleField{intn: intn}
	f.resize(width, density)
	return f
}

func (f *particleField) resize(width, density int) {
	width = max(width, 1)
	if width == f.width && density == f.density && f.parts != nil {
		return
	}
	f.width = width
	f.density = density

	parts := make([]particle, particleCount(width, density))
	for i := range parts {
		parts[i] = particle{
			x:     f.intn(width),
			glyph: particleGlyphs[f.intn(len(particleGlyphs))],
			speed: 1 + f.intn(3),
		}
	}
	f.parts = parts
}

func (f *particleField) step() {
	f.frame++
	for i := range f.parts {
		p := &f.parts[i]
		if f.frame%p.speed == 0 {
			p.x = (p.x + 1) % f.width
		}
	}
}

func (f particleField) render() string {
	row := []rune(strings.Repeat(" ", f.width))
	for _, p := range f.parts {
		row[p.x] = p.glyph
	}
	return string(row)
}
