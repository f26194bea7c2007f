package game

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdownTicksToZeroAndExpiresOnce(t *testing.T) {
	var ticks, expires atomic.Int32
	done := make(chan struct{})

	c := NewCountdown(3, time.Millisecond,
		func(remaining int) {
			ticks.Add(1)
			if remaining < 0 {
				t.Errorf("observed negative remaining %d", remaining)
			}
		},
		func() {
			expires.Add(1)
			close(done)
		})
	c.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown never expired")
	}

	// Give any stray ticks a chance to fire.
	time.Sleep(20 * time.Millisecond)

	if got := ticks.Load(); got != 3 {
		t.Errorf("ticks = %d, want 3", got)
	}
	if got := expires.Load(); got != 1 {
		t.Errorf("expiry fired %d times, want exactly 1", got)
	}
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestCountdownStopSuppressesCallbacks(t *testing.T) {
	var ticks atomic.Int32

	c := NewCountdown(1000, time.Hour,
		func(int) { ticks.Add(1) },
		func() { t.Error("expiry fired on a stopped countdown") })
	c.Start()
	c.Stop()
	c.Stop() // idempotent

	time.Sleep(10 * time.Millisecond)
	if got := ticks.Load(); got != 0 {
		t.Errorf("ticks = %d after Stop, want 0", got)
	}
	if got := c.Remaining(); got != 1000 {
		t.Errorf("Remaining() = %d, want untouched 1000", got)
	}
}
