package chip8

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/memory"
)

func program(words ...uint16) []byte {
	p := make([]byte, 0, len(words)*2)
	for _, word := range words {
		p = append(p, bit.High(word), bit.Low(word))
	}
	return p
}

func newTestMachine(t *testing.T, opts []Option, words ...uint16) *Machine {
	t.Helper()
	m, err := NewWithProgram(program(words...), opts...)
	require.NoError(t, err)
	return m
}

func TestMachine_runUntilFrame(t *testing.T) {
	// Tight jump loop, safe to run for any number of steps.
	m := newTestMachine(t, []Option{WithClockRate(600)}, 0x1200)

	require.NoError(t, m.RunUntilFrame())

	// 600 Hz clock over a 60 Hz frame is 10 instructions.
	assert.Equal(t, uint64(10), m.GetInstructionCount())
	assert.Equal(t, uint64(1), m.GetFrameCount())
}

func TestMachine_timersTickOncePerFrame(t *testing.T) {
	// V0 = 5; DT = V0; spin
	m := newTestMachine(t, []Option{WithClockRate(180)}, 0x6005, 0xF015, 0x1204)

	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint8(4), m.ExtractDebugData().CPU.Delay)

	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint8(3), m.ExtractDebugData().CPU.Delay)
}

func TestMachine_soundActive(t *testing.T) {
	// V0 = 2; ST = V0; spin
	m := newTestMachine(t, []Option{WithClockRate(180)}, 0x6002, 0xF018, 0x1204)

	assert.False(t, m.SoundActive())

	// ST = 2 during the frame, 1 after the tick.
	require.NoError(t, m.RunUntilFrame())
	assert.True(t, m.SoundActive())

	require.NoError(t, m.RunUntilFrame())
	assert.False(t, m.SoundActive())
}

func TestMachine_keypadActions(t *testing.T) {
	m := New()

	m.HandleAction(action.Key5, true)
	assert.True(t, m.keypad.IsPressed(0x5))

	m.HandleAction(action.Key5, false)
	assert.False(t, m.keypad.IsPressed(0x5))

	// Non-keypad actions don't touch key state.
	m.HandleAction(action.EmulatorSnapshot, true)
	for key := uint8(0); key < 16; key++ {
		assert.False(t, m.keypad.IsPressed(key))
	}
}

func TestMachine_waitForKey(t *testing.T) {
	m := newTestMachine(t, []Option{WithClockRate(120)}, 0xF10A, 0x1202)

	// No key: the machine spins on the wait instruction.
	require.NoError(t, m.RunUntilFrame())
	data := m.ExtractDebugData()
	assert.True(t, data.CPU.Waiting)
	assert.Equal(t, memory.ProgramStart, data.CPU.PC)

	m.HandleAction(action.KeyB, true)

	require.NoError(t, m.RunUntilFrame())
	data = m.ExtractDebugData()
	assert.False(t, data.CPU.Waiting)
	assert.Equal(t, uint8(0xB), data.CPU.V[0x1])
}

func TestMachine_pauseAndStep(t *testing.T) {
	m := newTestMachine(t, []Option{WithClockRate(120)}, 0x1200)

	m.HandleAction(action.EmulatorPauseToggle, true)
	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(0), m.GetInstructionCount())
	assert.Equal(t, debug.DebuggerPaused, m.ExtractDebugData().DebuggerState)

	// Single instruction step, then paused again.
	m.HandleAction(action.EmulatorStepInstruction, true)
	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(1), m.GetInstructionCount())
	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(1), m.GetInstructionCount())

	// Full frame step.
	m.HandleAction(action.EmulatorStepFrame, true)
	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(3), m.GetInstructionCount())
	assert.Equal(t, uint64(1), m.GetFrameCount())

	// Resume.
	m.HandleAction(action.EmulatorPauseToggle, true)
	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(5), m.GetInstructionCount())
}

func TestMachine_illegalOpcodeSkipped(t *testing.T) {
	// Unknown opcode followed by V0 = 0x0A.
	m := newTestMachine(t, []Option{WithClockRate(120)}, 0x0123, 0x600A)

	require.NoError(t, m.RunUntilFrame())
	data := m.ExtractDebugData()
	assert.Equal(t, uint8(0x0A), data.CPU.V[0x0])
	assert.Equal(t, uint64(2), m.GetInstructionCount())
}

func TestMachine_illegalOpcodeHalts(t *testing.T) {
	m := newTestMachine(t, []Option{WithClockRate(120), WithHaltOnIllegal()}, 0x0123, 0x600A)

	err := m.RunUntilFrame()
	var illegal cpu.IllegalInstructionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, uint16(0x0123), illegal.Opcode)
}

func TestMachine_defaultClockRate(t *testing.T) {
	m := New()
	// 700 Hz / 60 Hz, truncated.
	assert.Equal(t, 11, m.stepsPerFrame)

	m = New(WithClockRate(30))
	assert.Equal(t, 1, m.stepsPerFrame)
}

func TestNewWithFile(t *testing.T) {
	t.Run("binary ROM", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.ch8")
		require.NoError(t, os.WriteFile(path, program(0x600A, 0x1202), 0644))

		m, err := NewWithFile(path, WithClockRate(60))
		require.NoError(t, err)

		require.NoError(t, m.RunUntilFrame())
		assert.Equal(t, uint8(0x0A), m.ExtractDebugData().CPU.V[0x0])
	})

	t.Run("listing ROM", func(t *testing.T) {
		listing := "200 60\n201 0A\n202 12\n203 02\n"
		path := filepath.Join(t.TempDir(), "test.txt")
		require.NoError(t, os.WriteFile(path, []byte(listing), 0644))

		m, err := NewWithFile(path, WithClockRate(60))
		require.NoError(t, err)

		require.NoError(t, m.RunUntilFrame())
		assert.Equal(t, uint8(0x0A), m.ExtractDebugData().CPU.V[0x0])
	})

	t.Run("forced listing", func(t *testing.T) {
		listing := "200 60\n201 0A\n202 12\n203 02\n"
		path := filepath.Join(t.TempDir(), "test.ch8")
		require.NoError(t, os.WriteFile(path, []byte(listing), 0644))

		m, err := NewWithListingFile(path, WithClockRate(60))
		require.NoError(t, err)

		require.NoError(t, m.RunUntilFrame())
		assert.Equal(t, uint8(0x0A), m.ExtractDebugData().CPU.V[0x0])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewWithFile(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.Error(t, err)
	})
}

func TestMachine_debugMemoryWindow(t *testing.T) {
	m := newTestMachine(t, nil, 0x1200)

	data := m.ExtractDebugData()
	require.NotNil(t, data.Memory)
	assert.Len(t, data.Memory.Bytes, memoryWindow)

	// The window straddles PC and starts on the expected byte.
	snapshot := data.Memory
	pc := data.CPU.PC
	assert.LessOrEqual(t, snapshot.StartAddr, pc)
	offset := int(pc - snapshot.StartAddr)
	assert.Equal(t, byte(0x12), snapshot.Bytes[offset])
	assert.Equal(t, byte(0x00), snapshot.Bytes[offset+1])
}
