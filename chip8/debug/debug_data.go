package debug

// CPUState contains the full register file for debug display.
type CPUState struct {
	V  [16]uint8
	I  uint16
	PC uint16
	SP uint8

	Delay uint8
	Sound uint8

	Cycles  uint64
	Waiting bool // stalled on wait-for-key
}

// MemorySnapshot contains a window of memory for disassembly.
type MemorySnapshot struct {
	StartAddr uint16
	Bytes     []uint8
}

// DebuggerState represents the current debugger state.
type DebuggerState int

const (
	DebuggerRunning DebuggerState = iota
	DebuggerPaused
	DebuggerStepInstruction
	DebuggerStepFrame
)

// Data contains all debug information needed by debug displays.
type Data struct {
	CPU              *CPUState
	Memory           *MemorySnapshot
	DebuggerState    DebuggerState
	FrameCount       uint64
	InstructionCount uint64
}
