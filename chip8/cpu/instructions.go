package cpu

import "github.com/valerio/go-chip8/chip8/memory"

// numKeys mirrors the keypad size; register values above it name no key,
// so key instructions treat them as never pressed.
const numKeys = 16

// execute runs one decoded instruction. PC has already been advanced past
// it; jump, call and return overwrite PC outright, skips add another 2.
//
// Shift semantics are a historically ambiguous point: some interpreters
// shift Vy into Vx, others shift Vx in place. This core shifts Vx in place
// and ignores Vy, with VF receiving the shifted-out bit.
func (c *CPU) execute(ins Instruction, op opcode) error {
	switch ins {
	case InsNop:

	case InsClear:
		c.screen.Clear()

	case InsReturn:
		address, err := c.popStack()
		if err != nil {
			return err
		}
		c.pc = address

	case InsJump:
		c.pc = op.addr()

	case InsCall:
		if err := c.pushStack(c.pc); err != nil {
			return err
		}
		c.pc = op.addr()

	case InsSkipEqImm:
		if c.v[op.x()] == op.kk() {
			c.pc += 2
		}

	case InsSkipNeImm:
		if c.v[op.x()] != op.kk() {
			c.pc += 2
		}

	case InsSkipEqReg:
		if c.v[op.x()] == c.v[op.y()] {
			c.pc += 2
		}

	case InsLoadImm:
		c.v[op.x()] = op.kk()

	case InsAddImm:
		c.v[op.x()] += op.kk()

	case InsMove:
		c.v[op.x()] = c.v[op.y()]

	case InsOr:
		c.v[op.x()] |= c.v[op.y()]

	case InsAnd:
		c.v[op.x()] &= c.v[op.y()]

	case InsXor:
		c.v[op.x()] ^= c.v[op.y()]

	case InsAdd:
		sum := uint16(c.v[op.x()]) + uint16(c.v[op.y()])
		c.setFlag(sum > 0xFF)
		c.v[op.x()] = uint8(sum)

	case InsSub:
		diff := c.v[op.x()] - c.v[op.y()]
		c.setFlag(c.v[op.x()] >= c.v[op.y()])
		c.v[op.x()] = diff

	case InsShiftRight:
		c.setFlag(c.v[op.x()]&0x01 != 0)
		c.v[op.x()] >>= 1

	case InsSubReverse:
		diff := c.v[op.y()] - c.v[op.x()]
		c.setFlag(c.v[op.y()] >= c.v[op.x()])
		c.v[op.x()] = diff

	case InsShiftLeft:
		c.setFlag(c.v[op.x()]&0x80 != 0)
		c.v[op.x()] <<= 1

	case InsSkipNeReg:
		if c.v[op.x()] != c.v[op.y()] {
			c.pc += 2
		}

	case InsLoadIndex:
		c.i = op.addr()

	case InsJumpOffset:
		c.pc = op.addr() + uint16(c.v[0x0])

	case InsRandom:
		c.v[op.x()] = c.rand() & op.kk()

	case InsDraw:
		return c.draw(op)

	case InsSkipKeyPressed:
		if key := c.v[op.x()]; key < numKeys && c.keys.IsPressed(key) {
			c.pc += 2
		}

	case InsSkipKeyNotPressed:
		if key := c.v[op.x()]; key >= numKeys || !c.keys.IsPressed(key) {
			c.pc += 2
		}

	case InsReadDelay:
		c.v[op.x()] = c.delay

	case InsWaitKey:
		c.waitKey(op)

	case InsSetDelay:
		c.delay = c.v[op.x()]

	case InsSetSound:
		c.sound = c.v[op.x()]

	case InsAddIndex:
		c.i += uint16(c.v[op.x()])

	case InsFontChar:
		c.i = memory.GlyphAddress(c.v[op.x()])

	case InsStoreBCD:
		return c.storeBCD(op)

	case InsStoreRegs:
		return c.storeRegisters(op)

	case InsLoadRegs:
		return c.loadRegisters(op)
	}

	return nil
}

// draw reads the n-byte sprite at I and XOR-composites it at (Vx, Vy),
// setting VF to the collision flag. The sprite is read in full before any
// pixel changes, so a faulting read leaves the display untouched.
func (c *CPU) draw(op opcode) error {
	height := uint16(op.n())
	sprite := make([]byte, 0, height)
	for offset := uint16(0); offset < height; offset++ {
		b, err := c.bus.Read(c.i + offset)
		if err != nil {
			return err
		}
		sprite = append(sprite, b)
	}

	collision := c.screen.Draw(c.v[op.x()], c.v[op.y()], sprite)
	c.setFlag(collision)
	return nil
}

// waitKey blocks instruction progress until a key press edge arrives. The
// host is never blocked: PC is rewound onto this instruction so it re-runs
// on every Step until the keypad latches a new press.
func (c *CPU) waitKey(op opcode) {
	if !c.waiting {
		c.waiting = true
		c.keys.ClearPressLatch()
	}

	if key, ok := c.keys.ConsumePress(); ok {
		c.v[op.x()] = key
		c.waiting = false
		return
	}
	c.pc -= 2
}

// storeBCD writes the three decimal digits of Vx to I, I+1 and I+2,
// hundreds first. Exactly three digits are produced even for values below
// 100.
func (c *CPU) storeBCD(op opcode) error {
	if err := c.checkBounds(c.i, c.i+2); err != nil {
		return err
	}

	value := c.v[op.x()]
	c.bus.Write(c.i, value/100)
	c.bus.Write(c.i+1, (value%100)/10)
	c.bus.Write(c.i+2, value%10)
	return nil
}

// storeRegisters dumps V0..Vx to memory at I, then advances I past the
// stored block, as the original COSMAC interpreter did.
func (c *CPU) storeRegisters(op opcode) error {
	x := uint16(op.x())
	if err := c.checkBounds(c.i, c.i+x); err != nil {
		return err
	}

	for offset := uint16(0); offset <= x; offset++ {
		c.bus.Write(c.i+offset, c.v[offset])
	}
	c.i += x + 1
	return nil
}

// loadRegisters reads V0..Vx from memory at I, then advances I past the
// loaded block.
func (c *CPU) loadRegisters(op opcode) error {
	x := uint16(op.x())
	if err := c.checkBounds(c.i, c.i+x); err != nil {
		return err
	}

	for offset := uint16(0); offset <= x; offset++ {
		value, _ := c.bus.Read(c.i + offset)
		c.v[offset] = value
	}
	c.i += x + 1
	return nil
}

// checkBounds validates addresses before an instruction mutates anything,
// so a fault can never leave a partially applied instruction behind.
func (c *CPU) checkBounds(addresses ...uint16) error {
	for _, address := range addresses {
		if _, err := c.bus.Read(address); err != nil {
			return err
		}
	}
	return nil
}
