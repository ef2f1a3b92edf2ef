package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoOpLimiter_returnsImmediately(t *testing.T) {
	limiter := NewNoOpLimiter()

	start := time.Now()
	for i := 0; i < 100; i++ {
		limiter.WaitForNextFrame()
	}
	limiter.Reset()

	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestTickerLimiter_pacesFrames(t *testing.T) {
	limiter := NewTickerLimiter()
	defer limiter.Stop()

	// Two frames at 60 Hz take at least one full frame duration; a loose
	// lower bound keeps this stable on slow CI hosts.
	start := time.Now()
	limiter.WaitForNextFrame()
	limiter.WaitForNextFrame()

	assert.GreaterOrEqual(t, time.Since(start), FrameDuration())
}

func TestTickerLimiter_reset(t *testing.T) {
	limiter := NewTickerLimiter()
	defer limiter.Stop()

	limiter.Reset()
	limiter.WaitForNextFrame()
}

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, time.Second/60, FrameDuration())
}
