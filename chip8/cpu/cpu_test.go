package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

type testMachine struct {
	cpu    *CPU
	mem    *memory.Memory
	screen *video.FrameBuffer
	keys   *input.Keypad
}

func newTestMachine(t *testing.T, words ...uint16) *testMachine {
	t.Helper()

	mem := memory.New()
	screen := video.NewFrameBuffer()
	keys := input.NewKeypad()

	program := make([]byte, 0, len(words)*2)
	for _, word := range words {
		program = append(program, bit.High(word), bit.Low(word))
	}
	require.NoError(t, mem.LoadProgram(program))

	return &testMachine{
		cpu:    New(mem, screen, keys),
		mem:    mem,
		screen: screen,
		keys:   keys,
	}
}

func (m *testMachine) step(t *testing.T) {
	t.Helper()
	require.NoError(t, m.cpu.Step())
}

func TestCPU_initialState(t *testing.T) {
	m := newTestMachine(t)

	assert.Equal(t, memory.ProgramStart, m.cpu.pc)
	assert.Equal(t, uint8(0), m.cpu.sp)
	assert.Equal(t, uint16(0), m.cpu.i)
	for i, v := range m.cpu.v {
		assert.Equal(t, uint8(0), v, "V%X", i)
	}
}

func TestCPU_stack(t *testing.T) {
	m := newTestMachine(t)

	require.NoError(t, m.cpu.pushStack(0x0202))
	assert.Equal(t, uint8(1), m.cpu.sp)

	popped, err := m.cpu.popStack()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0202), popped)
	assert.Equal(t, uint8(0), m.cpu.sp)
}

func TestCPU_stackOverflow(t *testing.T) {
	m := newTestMachine(t)

	for i := 0; i < StackDepth; i++ {
		require.NoError(t, m.cpu.pushStack(0x0202))
	}
	err := m.cpu.pushStack(0x0202)
	assert.ErrorAs(t, err, &StackOverflowError{})
}

func TestCPU_stackUnderflow(t *testing.T) {
	// 00EE with nothing on the stack
	m := newTestMachine(t, 0x00EE)

	err := m.cpu.Step()
	assert.ErrorAs(t, err, &StackUnderflowError{})
}

func TestCPU_fetchFault(t *testing.T) {
	m := newTestMachine(t)
	m.cpu.pc = memory.Size

	err := m.cpu.Step()
	assert.ErrorAs(t, err, &memory.Fault{})
	// PC is untouched by a failed fetch.
	assert.Equal(t, uint16(memory.Size), m.cpu.pc)
}

func TestCPU_illegalInstruction(t *testing.T) {
	testCases := []uint16{0x0123, 0x5AB1, 0x8AB8, 0x9AB5, 0xE19F, 0xF1FF}
	for _, word := range testCases {
		m := newTestMachine(t, word)

		err := m.cpu.Step()

		var illegal IllegalInstructionError
		require.ErrorAs(t, err, &illegal, "opcode 0x%04X", word)
		assert.Equal(t, word, illegal.Opcode)
		assert.Equal(t, memory.ProgramStart, illegal.Address)
		// PC has moved past the bad instruction so the driver may treat
		// the error as a skip.
		assert.Equal(t, memory.ProgramStart+2, m.cpu.pc)
	}
}

func TestCPU_timers(t *testing.T) {
	m := newTestMachine(t)
	m.cpu.delay = 3
	m.cpu.sound = 1

	m.cpu.TickTimers()
	assert.Equal(t, uint8(2), m.cpu.DelayTimer())
	assert.Equal(t, uint8(0), m.cpu.SoundTimer())

	// No underflow below zero.
	for i := 0; i < 5; i++ {
		m.cpu.TickTimers()
	}
	assert.Equal(t, uint8(0), m.cpu.DelayTimer())
	assert.Equal(t, uint8(0), m.cpu.SoundTimer())
}

func TestCPU_timersCountDownIndependently(t *testing.T) {
	m := newTestMachine(t)
	m.cpu.delay = 10
	m.cpu.sound = 4

	for i := 0; i < 7; i++ {
		m.cpu.TickTimers()
	}
	// max(0, V-N) for both timers.
	assert.Equal(t, uint8(3), m.cpu.DelayTimer())
	assert.Equal(t, uint8(0), m.cpu.SoundTimer())
}

func TestCPU_setAndAddScenario(t *testing.T) {
	// V0 = 0x0A; V0 += 0x05; NOP
	m := newTestMachine(t, 0x600A, 0x7005, 0x0000)

	m.step(t)
	m.step(t)
	m.step(t)

	assert.Equal(t, uint8(0x0F), m.cpu.v[0x0])
	assert.Equal(t, uint16(0x206), m.cpu.pc)
}

func TestCPU_callAndReturnScenario(t *testing.T) {
	// 0x200: CALL 0x300 / 0x300: RET
	m := newTestMachine(t, 0x2300)
	require.NoError(t, m.mem.Write(0x300, 0x00))
	require.NoError(t, m.mem.Write(0x301, 0xEE))

	m.step(t)
	assert.Equal(t, uint16(0x300), m.cpu.pc)
	assert.Equal(t, uint8(1), m.cpu.sp)
	assert.Equal(t, uint16(0x202), m.cpu.stack[0])

	m.step(t)
	assert.Equal(t, uint16(0x202), m.cpu.pc)
	assert.Equal(t, uint8(0), m.cpu.sp)
}

func TestCPU_cyclesCount(t *testing.T) {
	m := newTestMachine(t, 0x600A, 0x7005)

	m.step(t)
	m.step(t)

	assert.Equal(t, uint64(2), m.cpu.GetCycles())
}
