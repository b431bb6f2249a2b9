package exam

import (
	"sync"
	"time"
)

// Ticker abstracts the one-second countdown tick so tests can drive time
// by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// NewTickerFunc constructs a Ticker for the given interval. The default
// wraps time.Ticker.
type NewTickerFunc func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func newRealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// countdown owns one ticking goroutine. It is armed at start and stopped
// on finish or reset. Each session start creates a fresh countdown, so a
// stray tick from an old one is recognized by handle identity.
type countdown struct {
	ticker   Ticker
	stop     chan struct{}
	stopOnce sync.Once
}

func newCountdown(ticker Ticker) *countdown {
	return &countdown{
		ticker: ticker,
		stop:   make(chan struct{}),
	}
}

// run forwards ticks to the session until the countdown is stopped.
func (c *countdown) run(s *Session) {
	for {
		select {
		case <-c.stop:
			return
		case <-c.ticker.C():
			s.tickFrom(c)
		}
	}
}

// halt stops the ticker and releases the goroutine. Safe to call more
// than once.
func (c *countdown) halt() {
	c.stopOnce.Do(func() {
		c.ticker.Stop()
		close(c.stop)
	})
}
