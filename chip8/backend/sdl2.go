//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	defaultPixelScale = 10
	bytesPerPixel     = 4
)

// SDL2Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type SDL2Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   BackendConfig

	// Snapshot state
	currentFrame *video.FrameBuffer
}

// NewSDL2Backend creates a new SDL2 backend
func NewSDL2Backend() *SDL2Backend {
	return &SDL2Backend{}
}

// sdlKeyMapping maps SDL keycodes to actions. SDL reports real key-up
// events, so the keypad gets exact press/release edges here, unlike the
// terminal backend's timeout-based tracking.
var sdlKeyMapping = map[sdl.Keycode]action.Action{
	sdl.K_1: action.Key1, sdl.K_2: action.Key2, sdl.K_3: action.Key3, sdl.K_4: action.KeyC,
	sdl.K_q: action.Key4, sdl.K_w: action.Key5, sdl.K_e: action.Key6, sdl.K_r: action.KeyD,
	sdl.K_a: action.Key7, sdl.K_s: action.Key8, sdl.K_d: action.Key9, sdl.K_f: action.KeyE,
	sdl.K_z: action.KeyA, sdl.K_x: action.Key0, sdl.K_c: action.KeyB, sdl.K_v: action.KeyF,

	sdl.K_ESCAPE: action.EmulatorQuit,
	sdl.K_SPACE:  action.EmulatorPauseToggle,
	sdl.K_o:      action.EmulatorStepFrame,
	sdl.K_i:      action.EmulatorStepInstruction,
	sdl.K_F9:     action.EmulatorSnapshot,
	sdl.K_F10:    action.EmulatorDebugToggle,
}

// Init initializes the SDL2 backend
func (s *SDL2Backend) Init(config BackendConfig) error {
	s.config = config

	scale := config.Scale
	if scale <= 0 {
		scale = defaultPixelScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %v", err)
	}
	s.texture = texture

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", scale)

	return nil
}

// Update renders a frame and processes events
func (s *SDL2Backend) Update(frame *video.FrameBuffer) ([]InputEvent, error) {
	var events []InputEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			s.running = false
			events = append(events, InputEvent{Action: action.EmulatorQuit, Type: event.Press})

		case *sdl.KeyboardEvent:
			act, exists := sdlKeyMapping[e.Keysym.Sym]
			if !exists || e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				if act == action.EmulatorQuit {
					s.running = false
				}
				events = append(events, InputEvent{Action: act, Type: event.Press})
			} else if e.Type == sdl.KEYUP {
				events = append(events, InputEvent{Action: act, Type: event.Release})
			}
		}
	}

	if !s.running {
		return events, nil
	}

	s.currentFrame = frame
	s.renderFrame(frame)

	return events, nil
}

// HandleAction processes backend-specific actions
func (s *SDL2Backend) HandleAction(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		debug.TakeSnapshot(s.currentFrame)
	case action.EmulatorDebugToggle, action.DebugLogLevelIncrease, action.DebugLogLevelDecrease:
		slog.Debug("Debug display not supported in SDL2 backend", "action", act)
	}
}

// Cleanup cleans up SDL2 resources
func (s *SDL2Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *SDL2Backend) renderFrame(frame *video.FrameBuffer) {
	pixels := frame.ToSlice()
	sdlPixels := make([]byte, video.FramebufferWidth*video.FramebufferHeight*bytesPerPixel)

	for i, pixel := range pixels {
		// ABGR byte order for little-endian RGBA8888
		value := byte(0x00)
		if pixel != 0 {
			value = 0xFF
		}
		offset := i * bytesPerPixel
		sdlPixels[offset] = 0xFF // Alpha
		sdlPixels[offset+1] = value
		sdlPixels[offset+2] = value
		sdlPixels[offset+3] = value
	}

	s.texture.Update(nil, unsafe.Pointer(&sdlPixels[0]), video.FramebufferWidth*bytesPerPixel)

	s.renderer.SetDrawColor(0, 0, 0, 0xFF)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}
