package cpu

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.CheckZero(incremented)
	c.SetSubtract(false)
	c.CheckHalfCarry(uint16(value&0xF) + 1)
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.CheckZero(decremented)
	c.SetSubtract(true)
	c.CheckHalfCarry(uint16(value&0xF) - 1)
	return decremented
}

// addHL adds value to the HL RegisterPair.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(value uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(value)

	c.SetSubtract(false)
	c.putFlag(FlagHalfCarry, hl&0xFFF+value&0xFFF > 0xFFF)
	c.putFlag(FlagCarry, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed immediate byte that follows
// the opcode.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := c.SP + uint16(int8(value))

	// carries come from the unsigned addition of the low byte
	c.SetFlags(0)
	c.CheckHalfCarry(c.SP&0xF + uint16(value&0xF))
	c.CheckCarry(c.SP&0xFF + uint16(value))
	return result
}

func init() {
	for index := uint8(0); index < 8; index++ {
		reg := index
		cycles := uint8(4)
		if reg == 6 {
			cycles = 12
		}
		DefineInstruction(0x04|reg<<3, "INC "+Reg(reg).String(), func(c *CPU) {
			c.set8(reg, c.increment(c.get8(reg)))
		}, Cycles(cycles))
		DefineInstruction(0x05|reg<<3, "DEC "+Reg(reg).String(), func(c *CPU) {
			c.set8(reg, c.decrement(c.get8(reg)))
		}, Cycles(cycles))
	}

	for index := uint8(0); index < 4; index++ {
		pair := Pair(index)
		DefineInstruction(0x03|index<<4, "INC "+pair.String(), func(c *CPU) {
			c.SetPair(pair, c.Pair(pair)+1)
		}, Cycles(8))
		DefineInstruction(0x0B|index<<4, "DEC "+pair.String(), func(c *CPU) {
			c.SetPair(pair, c.Pair(pair)-1)
		}, Cycles(8))
		DefineInstruction(0x09|index<<4, "ADD HL, "+pair.String(), func(c *CPU) {
			c.addHL(c.Pair(pair))
		}, Cycles(8))
	}

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned()
	}, Cycles(16))
}
