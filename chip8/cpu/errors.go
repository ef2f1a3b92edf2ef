package cpu

import "fmt"

// IllegalInstructionError is returned when a fetched word matches none of
// the 35 canonical instruction forms. It is recoverable: the program
// counter has already moved past the instruction, so a driver that ignores
// the error effectively skips it, while a driver that stops treats it as
// fatal. The choice belongs to the driver, not the core.
type IllegalInstructionError struct {
	Opcode  uint16
	Address uint16
}

func (e IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction 0x%04X at 0x%04X", e.Opcode, e.Address)
}

// StackOverflowError is returned when a subroutine call exceeds the fixed
// call stack depth. Fatal.
type StackOverflowError struct {
	Address uint16
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow on call at 0x%04X", e.Address)
}

// StackUnderflowError is returned when a return executes with an empty
// call stack. Fatal.
type StackUnderflowError struct {
	Address uint16
}

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow on return at 0x%04X", e.Address)
}
