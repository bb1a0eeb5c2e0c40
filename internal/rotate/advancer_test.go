package rotate

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock runs callbacks synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at > target {
				continue
			}
			if due == nil || t.at < due.at {
				due = t
			}
		}
		if due == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = due.at
		due.fired = true
		c.mu.Unlock()
		due.f()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func newTestAdvancer() (*Advancer, *fakeClock, *atomic.Int32) {
	clock := &fakeClock{}
	fires := &atomic.Int32{}
	a := NewAdvancer(func() { fires.Add(1) }, WithClock(clock))
	return a, clock, fires
}

func TestAdvancer_FiresPeriodically(t *testing.T) {
	a, clock, fires := newTestAdvancer()
	a.Configure(true, 10*time.Second)
	assert.True(t, a.Active())
	assert.Equal(t, 10*time.Second, a.Interval())

	clock.Advance(9 * time.Second)
	assert.EqualValues(t, 0, fires.Load())

	clock.Advance(21 * time.Second)
	assert.EqualValues(t, 3, fires.Load())
	assert.Equal(t, 1, clock.Pending())
}

func TestAdvancer_RearmUsesNewInterval(t *testing.T) {
	a, clock, fires := newTestAdvancer()
	a.Configure(true, 10*time.Second)
	clock.Advance(5 * time.Second)

	a.Configure(true, 20*time.Second)
	require.Equal(t, 1, clock.Pending(), "exactly one timer after re-arm")

	// the old arm would have fired at t=10s
	clock.Advance(10 * time.Second)
	assert.EqualValues(t, 0, fires.Load())

	// new arm fires at t=25s
	clock.Advance(10 * time.Second)
	assert.EqualValues(t, 1, fires.Load())
	assert.Equal(t, 1, clock.Pending())
}

func TestAdvancer_DisableLeavesNoTimers(t *testing.T) {
	a, clock, fires := newTestAdvancer()
	a.Configure(true, 10*time.Second)
	clock.Advance(15 * time.Second)
	require.EqualValues(t, 1, fires.Load())

	a.Configure(false, 10*time.Second)
	assert.False(t, a.Active())
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Hour)
	assert.EqualValues(t, 1, fires.Load())
}

func TestAdvancer_SameConfigKeepsTimer(t *testing.T) {
	a, clock, fires := newTestAdvancer()
	a.Configure(true, 10*time.Second)
	clock.Advance(6 * time.Second)

	a.Configure(true, 10*time.Second)
	clock.Advance(4 * time.Second)
	assert.EqualValues(t, 1, fires.Load())
	assert.Equal(t, 1, clock.Pending())
}

func TestAdvancer_StaleCallbackDoesNotFire(t *testing.T) {
	a, clock, fires := newTestAdvancer()
	a.Configure(true, 10*time.Second)

	clock.mu.Lock()
	stale := clock.timers[0].f
	clock.mu.Unlock()

	a.Configure(true, 30*time.Second)
	stale()
	assert.EqualValues(t, 0, fires.Load())
	assert.Equal(t, 1, clock.Pending())
}

func TestAdvancer_Stop(t *testing.T) {
	a, clock, fires := newTestAdvancer()
	a.Configure(true, time.Second)
	a.Stop()
	assert.Equal(t, 0, clock.Pending())

	a.Configure(true, time.Second)
	assert.False(t, a.Active(), "configure after stop is ignored")

	clock.Advance(time.Minute)
	assert.EqualValues(t, 0, fires.Load())
}

func TestAdvancer_RealClockNoLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	fired := make(chan struct{}, 16)
	a := NewAdvancer(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	a.Configure(true, 5*time.Millisecond)

	for range 2 {
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("advancer did not fire")
		}
	}
	a.Stop()
	assert.False(t, a.Active())
}
