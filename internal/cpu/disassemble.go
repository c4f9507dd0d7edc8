package cpu

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at the given address without
// executing it, and returns its mnemonic with operands filled in along
// with its length in bytes.
func (c *CPU) Disassemble(addr uint16) (string, int) {
	opcode := c.readByte(addr)
	if opcode == 0xCB {
		return InstructionSetCB[c.readByte(addr+1)].name, 2
	}

	instr := InstructionSet[opcode]
	if !instr.Defined() {
		return fmt.Sprintf("ILLEGAL $%02X", opcode), 1
	}

	name := instr.name
	switch {
	case strings.Contains(name, "16"):
		operand := uint16(c.readByte(addr+1)) | uint16(c.readByte(addr+2))<<8
		name = strings.NewReplacer("d16", fmt.Sprintf("$%04X", operand), "a16", fmt.Sprintf("$%04X", operand)).Replace(name)
		return name, 3
	case strings.Contains(name, "SP+r8"):
		offset := int8(c.readByte(addr + 1))
		return strings.Replace(name, "+r8", fmt.Sprintf("%+d", offset), 1), 2
	case opcode == 0xE8:
		offset := int8(c.readByte(addr + 1))
		return strings.Replace(name, "r8", fmt.Sprintf("%d", offset), 1), 2
	case strings.Contains(name, "r8"):
		// relative jumps are rendered with their target
		target := addr + 2 + uint16(int8(c.readByte(addr+1)))
		return strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1), 2
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"):
		operand := fmt.Sprintf("$%02X", c.readByte(addr+1))
		return strings.NewReplacer("d8", operand, "a8", operand).Replace(name), 2
	case opcode == 0x10:
		return name, 2
	}
	return name, 1
}
