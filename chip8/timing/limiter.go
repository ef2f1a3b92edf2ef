package timing

import "time"

// Limiter controls frame rate timing for emulation.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

const (
	// TimerRate is the frequency of the delay and sound timers in Hz.
	// The display refresh is pinned to the same rate.
	TimerRate = 60

	// DefaultClockRate is the instruction clock in Hz. The original
	// interpreter had no fixed clock; around 700 Hz matches how most
	// historical programs were tuned.
	DefaultClockRate = 700
)

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Second / TimerRate
}
