package rotate

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock wraps time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// AdvancerOption configures an Advancer.
type AdvancerOption func(*Advancer)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) AdvancerOption {
	return func(a *Advancer) {
		if c != nil {
			a.clock = c
		}
	}
}

// Advancer calls fire on a fixed period while enabled.
//
// It keeps a single timer slot. Every arm bumps a generation counter, so a
// callback from a cancelled arm that already started running returns without
// firing.
type Advancer struct {
	mu       sync.Mutex
	clock    Clock
	fire     func()
	timer    Timer
	gen      uint64
	enabled  bool
	interval time.Duration
	stopped  bool
}

// NewAdvancer returns a disabled advancer.
func NewAdvancer(fire func(), opts ...AdvancerOption) *Advancer {
	a := &Advancer{
		clock: realClock{},
		fire:  fire,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Configure applies the enabled flag and period. A change cancels the pending
// timer and, when still enabled, arms exactly one new timer. Re-applying the
// active configuration leaves the running timer alone.
func (a *Advancer) Configure(enabled bool, interval time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	if enabled == a.enabled && interval == a.interval && (a.timer != nil || !enabled) {
		return
	}

	a.cancelLocked()
	a.enabled = enabled
	a.interval = interval
	if enabled && interval > 0 {
		a.armLocked()
	}
}

// Stop cancels any pending timer. Later Configure calls are ignored.
func (a *Advancer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.stopped = true
	a.enabled = false
}

// Active reports whether a timer is armed.
func (a *Advancer) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timer != nil
}

// Interval returns the configured period.
func (a *Advancer) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

func (a *Advancer) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
}

func (a *Advancer) armLocked() {
	a.gen++
	gen := a.gen
	a.timer = a.clock.AfterFunc(a.interval, func() { a.tick(gen) })
}

func (a *Advancer) tick(gen uint64) {
	a.mu.Lock()
	if gen != a.gen || a.stopped || !a.enabled {
		a.mu.Unlock()
		return
	}
	a.armLocked()
	fire := a.fire
	a.mu.Unlock()

	if fire != nil {
		fire()
	}
}
