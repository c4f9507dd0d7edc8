package cpu

// loadRegister8 loads the immediate byte that follows the opcode into
// the operand named by index.
//
//	LD n, d8
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) loadRegister8(index uint8) {
	c.set8(index, c.readOperand())
}

// loadHighPage loads the A Register from 0xFF00 + offset.
func (c *CPU) loadHighPage(offset uint8) {
	c.A = c.readByte(0xFF00 | uint16(offset))
}

// storeHighPage stores the A Register at 0xFF00 + offset.
func (c *CPU) storeHighPage(offset uint8) {
	c.writeByte(0xFF00|uint16(offset), c.A)
}

// pushStack pushes a 16-bit value onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	c.writeWord(c.SP, value)
}

// popStack pops a 16-bit value from the stack.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) popStack() uint16 {
	value := c.readWord(c.SP)
	c.SP += 2
	return value
}

// stackPair maps the 2-bit pair field of PUSH and POP, where 3 names AF
// rather than SP.
func stackPair(index uint8) Pair {
	if index == 3 {
		return PairAF
	}
	return Pair(index)
}

// generateLoadRegisterToRegisterInstructions defines LD r, r' for every
// combination of B, C, D, E, H, L, (HL) and A. The slot of LD (HL), (HL)
// is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for to := uint8(0); to < 8; to++ {
		for from := uint8(0); from < 8; from++ {
			if to == 6 && from == 6 {
				continue
			}
			dst, src := to, from
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			DefineInstruction(0x40|dst<<3|src, "LD "+Reg(dst).String()+", "+Reg(src).String(), func(c *CPU) {
				c.set8(dst, c.get8(src))
			}, Cycles(cycles))
		}
	}
}

func init() {
	generateLoadRegisterToRegisterInstructions()

	for index := uint8(0); index < 8; index++ {
		reg := index
		cycles := uint8(8)
		if reg == 6 {
			cycles = 12
		}
		DefineInstruction(0x06|reg<<3, "LD "+Reg(reg).String()+", d8", func(c *CPU) {
			c.loadRegister8(reg)
		}, Cycles(cycles))
	}

	for index := uint8(0); index < 4; index++ {
		pair := Pair(index)
		DefineInstruction(0x01|index<<4, "LD "+pair.String()+", d16", func(c *CPU) {
			c.SetPair(pair, c.readOperand16())
		}, Cycles(12))

		stack := stackPair(index)
		DefineInstruction(0xC5|index<<4, "PUSH "+stack.String(), func(c *CPU) {
			c.pushStack(c.Pair(stack))
		}, Cycles(16))
		DefineInstruction(0xC1|index<<4, "POP "+stack.String(), func(c *CPU) {
			c.SetPair(stack, c.popStack())
		}, Cycles(12))
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) }, Cycles(8))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) }, Cycles(8))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(8))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(8))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) }, Cycles(8))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) }, Cycles(8))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}, Cycles(8))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}, Cycles(8))

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		c.writeWord(c.readOperand16(), c.SP)
	}, Cycles(20))
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) { c.storeHighPage(c.readOperand()) }, Cycles(12))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) { c.loadHighPage(c.readOperand()) }, Cycles(12))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.storeHighPage(c.C) }, Cycles(8))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.loadHighPage(c.C) }, Cycles(8))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) { c.writeByte(c.readOperand16(), c.A) }, Cycles(16))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) { c.A = c.readByte(c.readOperand16()) }, Cycles(16))
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) { c.HL.SetUint16(c.addSPSigned()) }, Cycles(12))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) { c.SP = c.HL.Uint16() }, Cycles(8))
}
