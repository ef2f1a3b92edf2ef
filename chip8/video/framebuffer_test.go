package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBuffer_draw(t *testing.T) {
	fb := NewFrameBuffer()
	sprite := []byte{0b10000000, 0b01000000, 0b00100000, 0b00010000, 0b00001000}

	collision := fb.Draw(0, 0, sprite)

	assert.False(t, collision)
	for i := uint(0); i < 5; i++ {
		assert.Equal(t, byte(1), fb.GetPixel(i, i), "diagonal pixel (%d,%d)", i, i)
	}
	assert.Equal(t, byte(0), fb.GetPixel(1, 0))
}

func TestFrameBuffer_xorInvolution(t *testing.T) {
	fb := NewFrameBuffer()
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	first := fb.Draw(10, 5, sprite)
	second := fb.Draw(10, 5, sprite)

	assert.False(t, first)
	// Redrawing the same sprite erases every pixel it set.
	assert.True(t, second)
	for _, px := range fb.ToSlice() {
		assert.Equal(t, byte(0), px)
	}
}

func TestFrameBuffer_wrapsAtEdges(t *testing.T) {
	fb := NewFrameBuffer()

	// A full row byte at the right edge wraps onto the left edge.
	fb.Draw(FramebufferWidth-2, FramebufferHeight-1, []byte{0xFF, 0xFF})

	assert.Equal(t, byte(1), fb.GetPixel(FramebufferWidth-1, FramebufferHeight-1))
	assert.Equal(t, byte(1), fb.GetPixel(0, FramebufferHeight-1))
	assert.Equal(t, byte(1), fb.GetPixel(5, FramebufferHeight-1))
	// Second row wraps vertically back to the top.
	assert.Equal(t, byte(1), fb.GetPixel(0, 0))
}

func TestFrameBuffer_collisionOnlyOnErase(t *testing.T) {
	fb := NewFrameBuffer()

	assert.False(t, fb.Draw(0, 0, []byte{0b10000000}))
	// Non-overlapping pixels: no collision.
	assert.False(t, fb.Draw(1, 0, []byte{0b10000000}))
	// Overlapping set pixel gets erased: collision.
	assert.True(t, fb.Draw(0, 0, []byte{0b11000000}))
	assert.Equal(t, byte(0), fb.GetPixel(0, 0))
	assert.Equal(t, byte(0), fb.GetPixel(1, 0))
}

func TestFrameBuffer_clear(t *testing.T) {
	fb := NewFrameBuffer()
	fb.Draw(0, 0, []byte{0xFF, 0xFF})

	fb.Clear()

	for _, px := range fb.ToSlice() {
		assert.Equal(t, byte(0), px)
	}
}
