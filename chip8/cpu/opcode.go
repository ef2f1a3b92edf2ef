package cpu

// opcode is a raw 16-bit instruction word with accessors for the fields
// the instruction forms are built from: x and y register indices, a 12-bit
// address, an 8-bit immediate and a 4-bit immediate.
type opcode uint16

func (op opcode) family() uint8 { return uint8(op >> 12) }
func (op opcode) x() uint8      { return uint8(op>>8) & 0xF }
func (op opcode) y() uint8      { return uint8(op>>4) & 0xF }
func (op opcode) n() uint8      { return uint8(op) & 0xF }
func (op opcode) kk() uint8     { return uint8(op) }
func (op opcode) addr() uint16  { return uint16(op) & 0xFFF }

// Instruction is the closed enumeration of canonical CHIP-8 instruction
// forms. Decode maps a raw word onto it, so execution dispatches on a
// tagged variant instead of re-matching bit patterns.
type Instruction int

const (
	InsNop Instruction = iota // 0000
	InsClear                  // 00E0
	InsReturn                 // 00EE
	InsJump                   // 1nnn
	InsCall                   // 2nnn
	InsSkipEqImm              // 3xkk
	InsSkipNeImm              // 4xkk
	InsSkipEqReg              // 5xy0
	InsLoadImm                // 6xkk
	InsAddImm                 // 7xkk
	InsMove                   // 8xy0
	InsOr                     // 8xy1
	InsAnd                    // 8xy2
	InsXor                    // 8xy3
	InsAdd                    // 8xy4
	InsSub                    // 8xy5
	InsShiftRight             // 8xy6
	InsSubReverse             // 8xy7
	InsShiftLeft              // 8xyE
	InsSkipNeReg              // 9xy0
	InsLoadIndex              // Annn
	InsJumpOffset             // Bnnn
	InsRandom                 // Cxkk
	InsDraw                   // Dxyn
	InsSkipKeyPressed         // Ex9E
	InsSkipKeyNotPressed      // ExA1
	InsReadDelay              // Fx07
	InsWaitKey                // Fx0A
	InsSetDelay               // Fx15
	InsSetSound               // Fx18
	InsAddIndex               // Fx1E
	InsFontChar               // Fx29
	InsStoreBCD               // Fx33
	InsStoreRegs              // Fx55
	InsLoadRegs               // Fx65
)

// Decode classifies a raw instruction word. Patterns that match no
// canonical form report ok=false; the caller turns that into an
// IllegalInstructionError with the faulting address attached.
func Decode(word uint16) (Instruction, bool) {
	op := opcode(word)
	switch op.family() {
	case 0x0:
		switch word {
		case 0x0000:
			return InsNop, true
		case 0x00E0:
			return InsClear, true
		case 0x00EE:
			return InsReturn, true
		}
	case 0x1:
		return InsJump, true
	case 0x2:
		return InsCall, true
	case 0x3:
		return InsSkipEqImm, true
	case 0x4:
		return InsSkipNeImm, true
	case 0x5:
		if op.n() == 0 {
			return InsSkipEqReg, true
		}
	case 0x6:
		return InsLoadImm, true
	case 0x7:
		return InsAddImm, true
	case 0x8:
		switch op.n() {
		case 0x0:
			return InsMove, true
		case 0x1:
			return InsOr, true
		case 0x2:
			return InsAnd, true
		case 0x3:
			return InsXor, true
		case 0x4:
			return InsAdd, true
		case 0x5:
			return InsSub, true
		case 0x6:
			return InsShiftRight, true
		case 0x7:
			return InsSubReverse, true
		case 0xE:
			return InsShiftLeft, true
		}
	case 0x9:
		if op.n() == 0 {
			return InsSkipNeReg, true
		}
	case 0xA:
		return InsLoadIndex, true
	case 0xB:
		return InsJumpOffset, true
	case 0xC:
		return InsRandom, true
	case 0xD:
		return InsDraw, true
	case 0xE:
		switch op.kk() {
		case 0x9E:
			return InsSkipKeyPressed, true
		case 0xA1:
			return InsSkipKeyNotPressed, true
		}
	case 0xF:
		switch op.kk() {
		case 0x07:
			return InsReadDelay, true
		case 0x0A:
			return InsWaitKey, true
		case 0x15:
			return InsSetDelay, true
		case 0x18:
			return InsSetSound, true
		case 0x1E:
			return InsAddIndex, true
		case 0x29:
			return InsFontChar, true
		case 0x33:
			return InsStoreBCD, true
		case 0x55:
			return InsStoreRegs, true
		case 0x65:
			return InsLoadRegs, true
		}
	}
	return 0, false
}
