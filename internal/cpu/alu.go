package cpu

// add adds n to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint16
	if withCarry {
		carry = uint16(c.carryBit())
	}
	sum := uint16(c.A) + uint16(n) + carry

	c.CheckHalfCarry(uint16(c.A&0xF) + uint16(n&0xF) + carry)
	c.CheckCarry(sum)
	c.SetSubtract(false)
	c.A = uint8(sum)
	c.CheckZero(c.A)
}

// sub subtracts n from the A Register and returns the result, leaving
// the A Register untouched.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) uint8 {
	var carry uint16
	if withCarry {
		carry = uint16(c.carryBit())
	}
	// a borrow wraps the intermediate above 0xFF
	diff := uint16(c.A) - uint16(n) - carry

	c.CheckHalfCarry(uint16(c.A&0xF) - uint16(n&0xF) - carry)
	c.CheckCarry(diff)
	c.SetSubtract(true)
	c.CheckZero(uint8(diff))
	return uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// alu holds the 8 arithmetic and logic operations in the order of the
// 3-bit operation field of opcodes 0x80-0xBF and 0xC6-0xFE.
var alu = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A, ", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A, ", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB ", func(c *CPU, n uint8) { c.A = c.sub(n, false) }},
	{"SBC A, ", func(c *CPU, n uint8) { c.A = c.sub(n, true) }},
	{"AND ", (*CPU).and},
	{"XOR ", (*CPU).xor},
	{"OR ", (*CPU).or},
	{"CP ", func(c *CPU, n uint8) { c.sub(n, false) }},
}

// generateALUInstructions defines the operations against a register or
// (HL), and against an immediate byte.
func generateALUInstructions() {
	for op := uint8(0); op < 8; op++ {
		operation := alu[op]
		for index := uint8(0); index < 8; index++ {
			src := index
			cycles := uint8(4)
			if src == 6 {
				cycles = 8
			}
			DefineInstruction(0x80|op<<3|src, operation.name+Reg(src).String(), func(c *CPU) {
				operation.fn(c, c.get8(src))
			}, Cycles(cycles))
		}
		DefineInstruction(0xC6|op<<3, operation.name+"d8", func(c *CPU) {
			operation.fn(c, c.readOperand())
		}, Cycles(8))
	}
}

func init() {
	generateALUInstructions()
}
