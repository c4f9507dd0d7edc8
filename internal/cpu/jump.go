package cpu

import "fmt"

// conditionNames holds the mnemonics of the cc field.
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// jumpRelative jumps to the address relative to the current PC.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC += uint16(int8(offset))
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// branch performs a conditional control transfer if the condition
// holds, and marks the instruction as taken so that it is charged its
// branch cost.
func (c *CPU) branch(condition bool, transfer func()) {
	if condition {
		transfer()
		c.branched = true
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(c.readOperand()) }, Cycles(12))
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.PC = c.readOperand16() }, Cycles(16))
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(c.readOperand16()) }, Cycles(24))
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret() }, Cycles(16))
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret()
		c.IME = true
	}, Cycles(16))

	for i := uint8(0); i < 4; i++ {
		cc, name := i, conditionNames[i]

		DefineInstruction(0x20|i<<3, "JR "+name+", r8", func(c *CPU) {
			offset := c.readOperand()
			c.branch(c.condition(cc), func() { c.jumpRelative(offset) })
		}, Cycles(8), Branch(12))
		DefineInstruction(0xC2|i<<3, "JP "+name+", a16", func(c *CPU) {
			address := c.readOperand16()
			c.branch(c.condition(cc), func() { c.PC = address })
		}, Cycles(12), Branch(16))
		DefineInstruction(0xC4|i<<3, "CALL "+name+", a16", func(c *CPU) {
			address := c.readOperand16()
			c.branch(c.condition(cc), func() { c.call(address) })
		}, Cycles(12), Branch(24))
		DefineInstruction(0xC0|i<<3, "RET "+name, func(c *CPU) {
			c.branch(c.condition(cc), c.ret)
		}, Cycles(8), Branch(20))
	}

	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU) {
			c.call(vector)
		}, Cycles(16))
	}
}
