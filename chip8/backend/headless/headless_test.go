package headless_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
)

func TestHeadlessBackend(t *testing.T) {
	t.Run("normal operation", func(t *testing.T) {
		// Create headless backend for 3 frames
		h := headless.New(3, headless.SnapshotConfig{})

		// Initialize
		config := backend.BackendConfig{
			Title: "Test",
		}
		err := h.Init(config)
		assert.NoError(t, err)

		// Create a test frame
		frame := video.NewFrameBuffer()

		// Run for 3 frames
		for i := 0; i < 3; i++ {
			events, err := h.Update(frame)
			assert.NoError(t, err)

			if i < 2 {
				// Should not quit before reaching max frames
				assert.Empty(t, events)
			} else {
				// Should send quit event on last frame
				assert.Len(t, events, 1)
				assert.Equal(t, action.EmulatorQuit, events[0].Action)
				assert.Equal(t, event.Press, events[0].Type)
			}
		}

		// Cleanup
		err = h.Cleanup()
		assert.NoError(t, err)
	})

	t.Run("snapshots", func(t *testing.T) {
		dir := t.TempDir()
		snapshots, err := headless.CreateSnapshotConfig(2, dir, "roms/pong.ch8")
		require.NoError(t, err)
		assert.True(t, snapshots.Enabled)
		assert.Equal(t, "pong", snapshots.ROMName)

		h := headless.New(2, snapshots)
		require.NoError(t, h.Init(backend.BackendConfig{Title: "Test"}))

		frame := video.NewFrameBuffer()
		for i := 0; i < 2; i++ {
			_, err := h.Update(frame)
			require.NoError(t, err)
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
	})

	t.Run("snapshots disabled", func(t *testing.T) {
		snapshots, err := headless.CreateSnapshotConfig(0, "", "roms/pong.ch8")
		require.NoError(t, err)
		assert.False(t, snapshots.Enabled)
	})
}

func TestHeadlessImplementsBackend(t *testing.T) {
	// Compile-time check that headless.Backend implements backend.Backend
	var _ backend.Backend = (*headless.Backend)(nil)
}
