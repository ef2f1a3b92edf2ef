// Package disasm provides CHIP-8 instruction disassembly, used by the
// terminal backend's debug view.
package disasm

import (
	"fmt"

	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/cpu"
)

// InstructionSize is the size of every CHIP-8 instruction in bytes.
const InstructionSize = 2

// DisassembleBytes decodes the instruction starting at data[offset] and
// returns its mnemonic. Returns false when fewer than two bytes remain.
func DisassembleBytes(data []byte, offset int) (string, bool) {
	if offset < 0 || offset+1 >= len(data) {
		return "", false
	}
	return DisassembleWord(bit.Combine(data[offset], data[offset+1])), true
}

// DisassembleWord returns the Cowgod-style mnemonic for a single
// instruction word. Words that decode to no instruction render as raw data.
func DisassembleWord(word uint16) string {
	// bit.Nibble counts position 0 as the most significant nibble.
	x := bit.Nibble(1, word)
	y := bit.Nibble(2, word)
	n := bit.Nibble(3, word)
	kk := bit.Low(word)
	addr := word & 0x0FFF

	ins, ok := cpu.Decode(word)
	if !ok {
		return fmt.Sprintf(".WORD 0x%04X", word)
	}

	switch ins {
	case cpu.InsNop:
		return "NOP"
	case cpu.InsClear:
		return "CLS"
	case cpu.InsReturn:
		return "RET"
	case cpu.InsJump:
		return fmt.Sprintf("JP 0x%03X", addr)
	case cpu.InsCall:
		return fmt.Sprintf("CALL 0x%03X", addr)
	case cpu.InsSkipEqImm:
		return fmt.Sprintf("SE V%X, 0x%02X", x, kk)
	case cpu.InsSkipNeImm:
		return fmt.Sprintf("SNE V%X, 0x%02X", x, kk)
	case cpu.InsSkipEqReg:
		return fmt.Sprintf("SE V%X, V%X", x, y)
	case cpu.InsLoadImm:
		return fmt.Sprintf("LD V%X, 0x%02X", x, kk)
	case cpu.InsAddImm:
		return fmt.Sprintf("ADD V%X, 0x%02X", x, kk)
	case cpu.InsMove:
		return fmt.Sprintf("LD V%X, V%X", x, y)
	case cpu.InsOr:
		return fmt.Sprintf("OR V%X, V%X", x, y)
	case cpu.InsAnd:
		return fmt.Sprintf("AND V%X, V%X", x, y)
	case cpu.InsXor:
		return fmt.Sprintf("XOR V%X, V%X", x, y)
	case cpu.InsAdd:
		return fmt.Sprintf("ADD V%X, V%X", x, y)
	case cpu.InsSub:
		return fmt.Sprintf("SUB V%X, V%X", x, y)
	case cpu.InsShiftRight:
		return fmt.Sprintf("SHR V%X", x)
	case cpu.InsSubReverse:
		return fmt.Sprintf("SUBN V%X, V%X", x, y)
	case cpu.InsShiftLeft:
		return fmt.Sprintf("SHL V%X", x)
	case cpu.InsSkipNeReg:
		return fmt.Sprintf("SNE V%X, V%X", x, y)
	case cpu.InsLoadIndex:
		return fmt.Sprintf("LD I, 0x%03X", addr)
	case cpu.InsJumpOffset:
		return fmt.Sprintf("JP V0, 0x%03X", addr)
	case cpu.InsRandom:
		return fmt.Sprintf("RND V%X, 0x%02X", x, kk)
	case cpu.InsDraw:
		return fmt.Sprintf("DRW V%X, V%X, %d", x, y, n)
	case cpu.InsSkipKeyPressed:
		return fmt.Sprintf("SKP V%X", x)
	case cpu.InsSkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", x)
	case cpu.InsReadDelay:
		return fmt.Sprintf("LD V%X, DT", x)
	case cpu.InsWaitKey:
		return fmt.Sprintf("LD V%X, K", x)
	case cpu.InsSetDelay:
		return fmt.Sprintf("LD DT, V%X", x)
	case cpu.InsSetSound:
		return fmt.Sprintf("LD ST, V%X", x)
	case cpu.InsAddIndex:
		return fmt.Sprintf("ADD I, V%X", x)
	case cpu.InsFontChar:
		return fmt.Sprintf("LD F, V%X", x)
	case cpu.InsStoreBCD:
		return fmt.Sprintf("LD B, V%X", x)
	case cpu.InsStoreRegs:
		return fmt.Sprintf("LD [I], V%X", x)
	case cpu.InsLoadRegs:
		return fmt.Sprintf("LD V%X, [I]", x)
	}

	return fmt.Sprintf(".WORD 0x%04X", word)
}
