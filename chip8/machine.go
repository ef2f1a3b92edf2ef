package chip8

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/timing"
	"github.com/valerio/go-chip8/chip8/video"
)

// Machine wires the interpreter to memory, display and keypad and drives
// them at frame granularity. One RunUntilFrame call covers one 60 Hz frame:
// a slice of the instruction clock, then a single timer tick.
type Machine struct {
	cpu    *cpu.CPU
	memory *memory.Memory
	screen *video.FrameBuffer
	keypad *input.Keypad

	// instruction steps per 60 Hz frame, derived from the clock rate
	stepsPerFrame int

	// when set, an unknown opcode stops execution instead of being skipped
	haltOnIllegal bool

	debuggerState    debug.DebuggerState
	frameCount       uint64
	instructionCount uint64
}

// Option configures a Machine.
type Option func(*Machine)

// WithClockRate sets the instruction clock in Hz. The rate is quantized to
// whole instructions per frame, with a floor of one.
func WithClockRate(hz int) Option {
	return func(m *Machine) {
		steps := hz / timing.TimerRate
		if steps < 1 {
			steps = 1
		}
		m.stepsPerFrame = steps
	}
}

// WithHaltOnIllegal makes unknown opcodes fatal. The default is to log and
// skip them, which keeps ROMs relying on interpreter quirks running.
func WithHaltOnIllegal() Option {
	return func(m *Machine) {
		m.haltOnIllegal = true
	}
}

// New creates a Machine with no program loaded.
func New(opts ...Option) *Machine {
	mem := memory.New()
	screen := video.NewFrameBuffer()
	keys := input.NewKeypad()

	m := &Machine{
		cpu:           cpu.New(mem, screen, keys),
		memory:        mem,
		screen:        screen,
		keypad:        keys,
		stepsPerFrame: timing.DefaultClockRate / timing.TimerRate,
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewWithProgram creates a Machine with a program already in memory.
func NewWithProgram(program []byte, opts ...Option) (*Machine, error) {
	m := New(opts...)
	if err := m.memory.LoadProgram(program); err != nil {
		return nil, err
	}
	return m, nil
}

// NewWithFile creates a Machine and loads the ROM at the given path.
// Files ending in .txt or .ch8l are parsed as address/byte listings,
// anything else is loaded as raw binary.
func NewWithFile(path string, opts ...Option) (*Machine, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".ch8l":
		return NewWithListingFile(path, opts...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM: %v", err)
	}

	m := New(opts...)
	if err := m.memory.LoadProgram(data); err != nil {
		return nil, err
	}
	slog.Info("Loaded ROM", "path", path, "size", len(data))
	return m, nil
}

// NewWithListingFile creates a Machine from an address/byte listing file,
// regardless of extension.
func NewWithListingFile(path string, opts ...Option) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM: %v", err)
	}

	m := New(opts...)
	if err := m.memory.LoadListing(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	slog.Info("Loaded ROM listing", "path", path)
	return m, nil
}

// RunUntilFrame advances emulation by one frame, honoring the debugger
// state: paused frames do nothing, step states run their slice and fall
// back to paused.
func (m *Machine) RunUntilFrame() error {
	switch m.debuggerState {
	case debug.DebuggerPaused:
		return nil
	case debug.DebuggerStepInstruction:
		m.debuggerState = debug.DebuggerPaused
		return m.step()
	case debug.DebuggerStepFrame:
		m.debuggerState = debug.DebuggerPaused
	}
	return m.runFrame()
}

func (m *Machine) runFrame() error {
	for i := 0; i < m.stepsPerFrame; i++ {
		if err := m.step(); err != nil {
			return err
		}
	}

	// Timers run at exactly one tick per frame regardless of clock rate.
	m.cpu.TickTimers()
	m.frameCount++
	return nil
}

func (m *Machine) step() error {
	err := m.cpu.Step()
	if err == nil {
		m.instructionCount++
		return nil
	}

	var illegal cpu.IllegalInstructionError
	if errors.As(err, &illegal) && !m.haltOnIllegal {
		// PC is already past the bad word, so continuing skips it.
		slog.Warn("Skipping unknown opcode",
			"opcode", fmt.Sprintf("0x%04X", illegal.Opcode),
			"address", fmt.Sprintf("0x%04X", illegal.Address))
		m.instructionCount++
		return nil
	}
	return err
}

// GetCurrentFrame returns the live framebuffer.
func (m *Machine) GetCurrentFrame() *video.FrameBuffer {
	return m.screen
}

// HandleAction routes an input action: keypad actions update key state,
// debugger actions change the run state. Quit and backend features are
// handled by the driving loop, not here.
func (m *Machine) HandleAction(act action.Action, pressed bool) {
	if key, ok := action.KeyIndex(act); ok {
		if pressed {
			m.keypad.Press(key)
		} else {
			m.keypad.Release(key)
		}
		return
	}

	if !pressed {
		return
	}

	switch act {
	case action.EmulatorPauseToggle:
		if m.debuggerState == debug.DebuggerPaused {
			m.debuggerState = debug.DebuggerRunning
			slog.Info("Resumed")
		} else {
			m.debuggerState = debug.DebuggerPaused
			slog.Info("Paused")
		}
	case action.EmulatorStepInstruction:
		m.debuggerState = debug.DebuggerStepInstruction
	case action.EmulatorStepFrame:
		m.debuggerState = debug.DebuggerStepFrame
	}
}

// SoundActive reports whether the buzzer should currently play.
func (m *Machine) SoundActive() bool {
	return m.cpu.SoundTimer() > 0
}

// GetFrameCount returns the number of completed frames.
func (m *Machine) GetFrameCount() uint64 {
	return m.frameCount
}

// GetInstructionCount returns the number of executed instructions.
func (m *Machine) GetInstructionCount() uint64 {
	return m.instructionCount
}

// memoryWindow is the number of bytes around PC captured for debug views.
const memoryWindow = 64

// ExtractDebugData captures a point-in-time view of the machine for debug
// displays.
func (m *Machine) ExtractDebugData() *debug.Data {
	state := &debug.CPUState{
		V:       m.cpu.GetV(),
		I:       m.cpu.GetI(),
		PC:      m.cpu.GetPC(),
		SP:      m.cpu.GetSP(),
		Delay:   m.cpu.DelayTimer(),
		Sound:   m.cpu.SoundTimer(),
		Cycles:  m.cpu.GetCycles(),
		Waiting: m.cpu.Waiting(),
	}

	return &debug.Data{
		CPU:              state,
		Memory:           m.readMemoryWindow(state.PC),
		DebuggerState:    m.debuggerState,
		FrameCount:       m.frameCount,
		InstructionCount: m.instructionCount,
	}
}

func (m *Machine) readMemoryWindow(pc uint16) *debug.MemorySnapshot {
	start := int(pc) - memoryWindow/2
	if start < 0 {
		start = 0
	}
	if start > memory.Size-memoryWindow {
		start = memory.Size - memoryWindow
	}

	window := make([]byte, memoryWindow)
	for i := range window {
		value, err := m.memory.Read(uint16(start + i))
		if err != nil {
			break
		}
		window[i] = value
	}

	return &debug.MemorySnapshot{
		StartAddr: uint16(start),
		Bytes:     window,
	}
}
