package cpu

import (
	"math/rand/v2"

	"github.com/valerio/go-chip8/chip8/memory"
)

// Bus provides the interface for memory access. Every access is bounds
// checked; a failed access surfaces as a memory fault from Step.
type Bus interface {
	Read(address uint16) (byte, error)
	Write(address uint16, value byte) error
	ReadWord(address uint16) (uint16, error)
}

// Display is the sprite compositor the draw instruction writes to.
type Display interface {
	Clear()
	Draw(x, y uint8, sprite []byte) bool
}

// Keypad is the 16-key input state the interpreter reads. ConsumePress and
// ClearPressLatch serve only the wait-for-key instruction.
type Keypad interface {
	IsPressed(key uint8) bool
	ConsumePress() (uint8, bool)
	ClearPressLatch()
}

const (
	// NumRegisters is the number of general purpose registers V0-VF.
	NumRegisters = 16
	// StackDepth is the fixed capacity of the call stack.
	StackDepth = 16

	// VF doubles as the carry/borrow/collision flag.
	flagRegister = 0xF
)

// CPU is the CHIP-8 interpreter: register file, call stack and the two
// countdown timers, plus references to the shared machine components.
//
// Step and TickTimers are synchronous and never block the host. The only
// instruction that stalls progress is wait-for-key, which leaves the
// program counter on itself and re-checks the keypad on the next Step.
type CPU struct {
	// registers
	v  [NumRegisters]uint8
	i  uint16
	pc uint16
	sp uint8

	stack [StackDepth]uint16

	// timers, decremented at 60 Hz by TickTimers
	delay uint8
	sound uint8

	// wait-for-key state, persists across Step calls
	waiting bool

	cycles uint64

	// random byte source for the RND instruction
	rand func() uint8

	bus    Bus
	screen Display
	keys   Keypad
}

// New returns an initialized CPU with PC at the program start address.
func New(bus Bus, screen Display, keys Keypad) *CPU {
	return &CPU{
		pc:     memory.ProgramStart,
		rand:   func() uint8 { return uint8(rand.Uint32()) },
		bus:    bus,
		screen: screen,
		keys:   keys,
	}
}

// Step executes a single instruction: fetch the big-endian word at PC,
// advance PC by 2, decode and dispatch. Jump and call forms overwrite PC
// after the advance, so they are never double-advanced.
//
// Failures are surfaced as typed errors and leave no partial instruction
// effects: every form validates its memory accesses before mutating state.
func (c *CPU) Step() error {
	word, err := c.bus.ReadWord(c.pc)
	if err != nil {
		return err
	}

	op := opcode(word)
	ins, ok := Decode(word)
	if !ok {
		c.pc += 2
		return IllegalInstructionError{Opcode: word, Address: c.pc - 2}
	}

	c.pc += 2
	if err := c.execute(ins, op); err != nil {
		return err
	}

	c.cycles++
	return nil
}

// TickTimers decrements the delay and sound timers independently, each
// floored at 0. The driver calls this at a fixed 60 Hz cadence, decoupled
// from the instruction rate. No other state is touched.
func (c *CPU) TickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// DelayTimer returns the current delay timer value.
func (c *CPU) DelayTimer() uint8 { return c.delay }

// SoundTimer returns the current sound timer value. The audio collaborator
// plays tone while it is above zero.
func (c *CPU) SoundTimer() uint8 { return c.sound }

// Waiting reports whether the CPU is stalled on a wait-for-key
// instruction.
func (c *CPU) Waiting() bool { return c.waiting }

// Getters for debug display.
func (c *CPU) GetV() [NumRegisters]uint8 { return c.v }
func (c *CPU) GetI() uint16              { return c.i }
func (c *CPU) GetPC() uint16             { return c.pc }
func (c *CPU) GetSP() uint8              { return c.sp }
func (c *CPU) GetCycles() uint64         { return c.cycles }

func (c *CPU) pushStack(address uint16) error {
	if c.sp >= StackDepth {
		return StackOverflowError{Address: c.pc - 2}
	}
	c.stack[c.sp] = address
	c.sp++
	return nil
}

func (c *CPU) popStack() (uint16, error) {
	if c.sp == 0 {
		return 0, StackUnderflowError{Address: c.pc - 2}
	}
	c.sp--
	return c.stack[c.sp], nil
}

func (c *CPU) setFlag(value bool) {
	if value {
		c.v[flagRegister] = 1
	} else {
		c.v[flagRegister] = 0
	}
}
