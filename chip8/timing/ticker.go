package timing

import "time"

// TickerLimiter paces frames with a time.Ticker. Simpler than
// AdaptiveLimiter and accurate enough when the host timer granularity is
// finer than a frame; it drops no ticks but does not compensate drift.
type TickerLimiter struct {
	ticker *time.Ticker
}

func NewTickerLimiter() *TickerLimiter {
	return &TickerLimiter{
		ticker: time.NewTicker(FrameDuration()),
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(FrameDuration())
}

// Stop releases the underlying ticker. The limiter must not be used after.
func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
