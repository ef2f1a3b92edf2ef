package memory

import (
	"fmt"

	"github.com/valerio/go-chip8/chip8/bit"
)

const (
	// Size is the total addressable memory of the machine.
	Size = 4096

	// ProgramStart is the address where loaded programs begin. Everything
	// below it is reserved for the interpreter (font data).
	ProgramStart uint16 = 0x200
)

// Fault is returned when an address outside the 4 KiB space is accessed.
// It is fatal to the running program: addresses are never wrapped.
type Fault struct {
	Address uint16
}

func (f Fault) Error() string {
	return fmt.Sprintf("memory fault: address 0x%04X out of range (memory size 0x%04X)", f.Address, Size)
}

// Memory is the flat 4 KiB byte store of the machine. The font glyphs are
// written once at construction, the program once at load time; afterwards
// only store opcodes mutate it.
type Memory struct {
	data [Size]byte
}

// New returns a zeroed memory with the hex digit font preloaded.
func New() *Memory {
	m := &Memory{}
	copy(m.data[FontAddress:], fontData[:])
	return m
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, Fault{Address: address}
	}
	return m.data[address], nil
}

// Write stores a byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= Size {
		return Fault{Address: address}
	}
	m.data[address] = value
	return nil
}

// ReadWord reads the big-endian 16-bit word at the given address. Used by
// the interpreter fetch; faults if either byte is out of range.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	high, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	low, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bit.Combine(high, low), nil
}

// LoadProgram copies a program image verbatim into memory starting at
// ProgramStart. No header, no checksum.
func (m *Memory) LoadProgram(data []byte) error {
	if len(data) > Size-int(ProgramStart) {
		return fmt.Errorf("program too large: %d bytes, %d available", len(data), Size-int(ProgramStart))
	}
	copy(m.data[ProgramStart:], data)
	return nil
}
