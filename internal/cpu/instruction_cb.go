package cpu

import "fmt"

// shiftOperations holds the rotate, shift and swap operations of the
// extended table in the order of bits 3-5 of opcodes 0x00-0x3F.
var shiftOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swapByte},
	{"SRL", (*CPU).shiftRightLogical},
}

// cbCycles returns the cost of an extended instruction on the given
// operand. Only BIT leaves (HL) unwritten, so it is cheaper.
func cbCycles(index uint8, readOnly bool) uint8 {
	switch {
	case index != 6:
		return 8
	case readOnly:
		return 12
	}
	return 16
}

// generateShiftInstructions defines opcodes 0x00-0x3F.
func generateShiftInstructions() {
	for op := uint8(0); op < 8; op++ {
		operation := shiftOperations[op]
		for index := uint8(0); index < 8; index++ {
			reg := index
			DefineInstructionCB(op<<3|reg, operation.name+" "+Reg(reg).String(), func(c *CPU) {
				c.set8(reg, operation.fn(c, c.get8(reg)))
			}, Cycles(cbCycles(reg, false)))
		}
	}
}

// generateBitInstructions defines BIT, RES and SET for every bit of
// every operand, opcodes 0x40-0xFF.
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		for index := uint8(0); index < 8; index++ {
			bit, reg := b, index
			operand := fmt.Sprintf("%d, %s", bit, Reg(reg))

			DefineInstructionCB(0x40|bit<<3|reg, "BIT "+operand, func(c *CPU) {
				c.testBit(c.get8(reg), bit)
			}, Cycles(cbCycles(reg, true)))
			DefineInstructionCB(0x80|bit<<3|reg, "RES "+operand, func(c *CPU) {
				c.set8(reg, c.clearBit(c.get8(reg), bit))
			}, Cycles(cbCycles(reg, false)))
			DefineInstructionCB(0xC0|bit<<3|reg, "SET "+operand, func(c *CPU) {
				c.set8(reg, c.setBit(c.get8(reg), bit))
			}, Cycles(cbCycles(reg, false)))
		}
	}
}

func init() {
	generateShiftInstructions()
	generateBitInstructions()
}
