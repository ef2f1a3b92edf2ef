package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-chip8/chip8/video"
)

// TakeSnapshot saves the frame to the working directory, for the snapshot
// key binding in interactive backends.
func TakeSnapshot(frame *video.FrameBuffer) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if err := SaveFramePNGToDir(frame, "chip8_snapshot", ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// SaveFramePNGToDir saves a framebuffer as a timestamped PNG. Set pixels
// become white, unset pixels black. An empty directory means the current
// working directory.
func SaveFramePNGToDir(frame *video.FrameBuffer, baseName, directory string) error {
	img := image.NewGray(image.Rect(0, 0, video.FramebufferWidth, video.FramebufferHeight))
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			if frame.GetPixel(uint(x), uint(y)) != 0 {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)
	path := filename
	if directory != "" {
		path = filepath.Join(directory, filename)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %v", err)
	}

	slog.Info("Saved frame snapshot", "path", path)
	return nil
}
