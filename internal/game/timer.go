package game

import (
	"sync"
	"time"
)

// Countdown ticks a round clock down to zero and fires the expiry callback
// exactly once. It must be stopped before a replacement round may start its
// own countdown; a stale ticker running into a fresh round is the defect
// this type exists to prevent.
type Countdown struct {
	interval time.Duration
	onTick   func(remaining int)
	onExpire func()

	mu        sync.Mutex
	remaining int
	stop      chan struct{}
	stopped   bool
}

// NewCountdown prepares a countdown from seconds. interval is the tick
// period (one second in production, shortened in tests).
func NewCountdown(seconds int, interval time.Duration, onTick func(remaining int), onExpire func()) *Countdown {
	return &Countdown{
		interval:  interval,
		onTick:    onTick,
		onExpire:  onExpire,
		remaining: seconds,
		stop:      make(chan struct{}),
	}
}

// Start launches the ticking goroutine. It returns immediately.
func (c *Countdown) Start() {
	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if expired := c.tick(); expired {
				return
			}
		}
	}
}

// tick decrements the clock and fires callbacks. Returns true once the
// countdown reached zero; no further ticks or negative values are observable
// after that.
func (c *Countdown) tick() bool {
	c.mu.Lock()
	if c.stopped || c.remaining == 0 {
		c.mu.Unlock()
		return true
	}
	c.remaining--
	remaining := c.remaining
	c.mu.Unlock()

	c.onTick(remaining)
	if remaining == 0 {
		c.onExpire()
		return true
	}
	return false
}

// Stop cancels the countdown and releases its ticker. Safe to call more than
// once; after Stop no callback will fire.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stop)
}

// Remaining reports the seconds left on the clock.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}
