package chip8

import (
	"log/slog"

	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/timing"
)

// Run drives the emulator against a backend until a quit event arrives or
// emulation fails. Each iteration runs one frame, hands it to the backend,
// dispatches the returned input events and then waits on the limiter.
func Run(emu Emulator, b backend.Backend, config backend.BackendConfig, limiter timing.Limiter) error {
	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	handler := input.NewHandler()

	for {
		if err := emu.RunUntilFrame(); err != nil {
			slog.Error("Emulation stopped", "error", err)
			return err
		}

		events, err := b.Update(emu.GetCurrentFrame())
		if err != nil {
			return err
		}

		for _, evt := range events {
			if !handler.ProcessEvent(evt.Action, evt.Type) {
				continue
			}

			switch evt.Action {
			case action.EmulatorQuit:
				if evt.Type == event.Press {
					return nil
				}
			case action.EmulatorSnapshot, action.EmulatorDebugToggle,
				action.DebugLogLevelIncrease, action.DebugLogLevelDecrease:
				if evt.Type == event.Press {
					b.HandleAction(evt.Action)
				}
			default:
				emu.HandleAction(evt.Action, evt.Type != event.Release)
			}
		}

		limiter.WaitForNextFrame()
	}
}
