package input

import (
	"time"

	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
)

// Handler debounces one-shot emulator actions. Keypad input is never
// debounced: games rely on level-triggered key state.
type Handler struct {
	lastActionTime map[action.Action]time.Time
	debounceDelay  time.Duration
	now            func() time.Time
}

func NewHandler() *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]time.Time),
		debounceDelay:  300 * time.Millisecond,
		now:            time.Now,
	}
}

// ProcessEvent reports whether the event should be handled, applying
// debouncing to Press events of emulator actions.
func (h *Handler) ProcessEvent(act action.Action, evt event.Type) bool {
	if action.GetInfo(act).Category == action.CategoryGameInput {
		return true
	}
	if evt != event.Press {
		return true
	}

	now := h.now()
	if lastTime, exists := h.lastActionTime[act]; exists {
		if now.Sub(lastTime) < h.debounceDelay {
			return false
		}
	}
	h.lastActionTime[act] = now
	return true
}
