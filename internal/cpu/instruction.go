package cpu

import (
	"errors"
	"fmt"
)

// Instruction is a single entry of an instruction table.
type Instruction struct {
	name string
	fn   func(*CPU)

	// cycles is the cost of the instruction, and branchCycles the cost
	// when a conditional control transfer is taken.
	cycles       uint8
	branchCycles uint8
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the cost of the instruction in clock cycles, and the
// cost when a conditional branch is taken.
func (i Instruction) Cycles() (uint8, uint8) {
	return i.cycles, i.branchCycles
}

// Defined reports whether the entry holds an instruction.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionOpt configures an Instruction as it is defined.
type InstructionOpt func(*Instruction)

// Cycles sets the cost of an instruction.
func Cycles(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = n
		i.branchCycles = n
	}
}

// Branch sets the cost of an instruction when its branch is taken.
func Branch(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.branchCycles = n
	}
}

// InstructionSet holds the base instructions, indexed by opcode.
var InstructionSet [256]Instruction

// InstructionSetCB holds the instructions reached through the 0xCB
// prefix, indexed by the second opcode byte.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet, with
// the provided opcode. Instructions cost 4 cycles unless told otherwise.
func DefineInstruction(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	InstructionSet[opcode] = newInstruction(name, fn, 4, opts)
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
// Prefixed instructions cost 8 cycles unless told otherwise.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	InstructionSetCB[opcode] = newInstruction(name, fn, 8, opts)
}

func newInstruction(name string, fn func(*CPU), cycles uint8, opts []InstructionOpt) Instruction {
	instruction := Instruction{
		name:         name,
		fn:           fn,
		cycles:       cycles,
		branchCycles: cycles,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// Table names the instruction table an opcode was dispatched from.
type Table uint8

const (
	// Base is the table of single byte opcodes.
	Base Table = iota
	// Extended is the table of opcodes prefixed by 0xCB.
	Extended
)

func (t Table) String() string {
	if t == Extended {
		return "extended"
	}
	return "base"
}

// ErrLocked is matched by the error returned from Step once the CPU has
// locked up.
var ErrLocked = errors.New("cpu: locked")

// IllegalOpcodeError is returned when the CPU fetches an opcode that has
// no instruction. The CPU locks up until it is reset.
type IllegalOpcodeError struct {
	Opcode uint8
	Table  Table
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X in %s table at 0x%04X", e.Opcode, e.Table, e.PC)
}

func (e *IllegalOpcodeError) Unwrap() error {
	return ErrLocked
}

// disallowedOpcodes lock up the CPU when executed.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	// 0xCB selects InstructionSetCB in Step and is never dispatched
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		// STOP is followed by a padding byte
		c.PC++
		c.stopped = true
	})
	DefineInstruction(0x27, "DAA", func(c *CPU) {
		a := c.A
		if !c.isFlagSet(FlagSubtract) {
			if c.isFlagSet(FlagCarry) || a > 0x99 {
				a += 0x60
				c.setFlag(FlagCarry)
			}
			if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
				a += 0x06
			}
		} else {
			if c.isFlagSet(FlagCarry) {
				a -= 0x60
			}
			if c.isFlagSet(FlagHalfCarry) {
				a -= 0x06
			}
		}
		c.A = a
		c.CheckZero(a)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		c.putFlag(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) {
		c.halted = true
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) {
		c.IME = false
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) {
		c.IME = true
	})

	for _, opcode := range disallowedOpcodes {
		InstructionSet[opcode] = Instruction{}
	}
}
