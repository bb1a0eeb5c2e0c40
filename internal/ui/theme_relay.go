package ui

import (
	"sync/atomic"

	tea "charm.land/bubbletea/v2"

	"github.com/iiroan/devmood/internal/prefs"
)

// ThemeRelay forwards saved theme changes to a running board. Each change is
// numbered when it is saved and the board ignores anything older than what it
// has already applied, so the last save wins even when deliveries race.
type ThemeRelay struct {
	send func(tea.Msg)
	seq  atomic.Uint64
}

func NewThemeRelay(send func(tea.Msg)) *ThemeRelay {
	return &ThemeRelay{send: send}
}

// Notify is a prefs.ThemeListener. Saves made from inside Update call it on
// the event loop, so the send happens on its own goroutine.
func (r *ThemeRelay) Notify(t prefs.DisplayTheme) {
	msg := ThemeMsg{Theme: t, Seq: r.seq.Add(1)}
	go r.send(msg)
}
