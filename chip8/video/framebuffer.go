package video

import "github.com/valerio/go-chip8/chip8/bit"

const (
	// FramebufferWidth is the horizontal resolution of the display.
	FramebufferWidth = 64
	// FramebufferHeight is the vertical resolution of the display.
	FramebufferHeight = 32
)

// FrameBuffer is the 64x32 monochrome display of the machine. Pixels only
// ever change through XOR sprite draws and Clear, so every value is 0 or 1.
//
// The interpreter is the only writer; backends read it once per frame on
// the same goroutine as the instruction loop, so no locking is needed.
type FrameBuffer struct {
	pixels [FramebufferWidth * FramebufferHeight]byte
}

// NewFrameBuffer creates a zeroed frame buffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Clear zeroes every pixel.
func (fb *FrameBuffer) Clear() {
	fb.pixels = [FramebufferWidth * FramebufferHeight]byte{}
}

// GetPixel returns 1 if the pixel at (x, y) is set, 0 otherwise.
func (fb *FrameBuffer) GetPixel(x, y uint) byte {
	return fb.pixels[y*FramebufferWidth+x]
}

// Draw XOR-composites a sprite at screen position (x, y) and reports
// whether any pixel was erased by the draw (the collision flag).
//
// Each sprite byte is one 8-pixel row, leftmost pixel in the high bit.
// Coordinates wrap modulo the grid dimensions on both axes, so sprites
// drawn near an edge reappear on the opposite edge. Collision is detected
// in the same pass as the XOR write.
func (fb *FrameBuffer) Draw(x, y uint8, sprite []byte) bool {
	collision := false
	for row, b := range sprite {
		py := (uint(y) + uint(row)) % FramebufferHeight
		for col := uint8(0); col < 8; col++ {
			if !bit.IsSet(col, b) {
				continue
			}
			px := (uint(x) + uint(col)) % FramebufferWidth
			idx := py*FramebufferWidth + px
			if fb.pixels[idx] == 1 {
				collision = true
			}
			fb.pixels[idx] ^= 1
		}
	}
	return collision
}

// ToSlice returns the raw pixel values in row-major order. The slice
// aliases the buffer and is only valid until the next draw.
func (fb *FrameBuffer) ToSlice() []byte {
	return fb.pixels[:]
}
