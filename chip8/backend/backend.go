package backend

import (
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
)

// Backend represents a complete emulator platform (rendering + input + audio).
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, SDL window, etc.)
// - Translating platform-specific input events to Actions
// - Handling backend-specific features (snapshots, debug panels)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update renders the frame, polls platform events and returns them
	// translated to actions. The driving loop dispatches the returned
	// events to the emulator.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// HandleAction lets the loop route backend-specific actions
	// (snapshots, debug toggles) back to the backend.
	HandleAction(act action.Action)

	// Cleanup resources when shutting down
	Cleanup() error
}

// InputEvent is a platform event translated to an emulator action.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// DebugDataProvider supplies machine state to debug displays.
type DebugDataProvider interface {
	ExtractDebugData() *debug.Data
}

// SoundProvider reports whether the sound timer is active, so backends
// can produce a tone (or an approximation of one).
type SoundProvider interface {
	SoundActive() bool
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title     string
	Scale     int
	ShowDebug bool // Backends may ignore unsupported features

	// DebugProvider is optional; backends without a debug display ignore it.
	DebugProvider DebugDataProvider

	// Sound is optional; backends without audio ignore it.
	Sound SoundProvider
}
