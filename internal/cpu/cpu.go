// Package cpu implements the SM83 instruction execution engine. The CPU
// fetches, decodes and executes one instruction per Step against a
// bus.Bus, and charges the cost of every instruction to the bus.
package cpu

import (
	"github.com/thelolagemann/sm83/internal/bus"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// ResetPC is the address of the first instruction fetched after
	// power on, the entry point of the cartridge.
	ResetPC uint16 = 0x0100
)

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable latch, set by EI and RETI and
	// cleared by DI. Interrupt dispatch is left to the host.
	IME bool

	// Debug logs every executed instruction at debug level.
	Debug bool
	Log   log.Logger

	bus *bus.Bus

	halted   bool
	stopped  bool
	branched bool

	// err is set once an illegal opcode is fetched, and is returned by
	// every Step until Reset is called.
	err error
}

// NewCPU creates a new CPU instance with the given Bus.
// The Bus is used to read and write to the memory.
func NewCPU(b *bus.Bus) *CPU {
	c := &CPU{
		bus: b,
		Log: b.Log,
	}
	c.Registers.init()
	c.Reset()
	return c
}

// Reset zeroes every register, moves PC to the entry point and clears
// the halted, stopped and locked states.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.F, c.H, c.L = 0, 0, 0, 0, 0, 0, 0, 0
	c.SP = 0
	c.PC = ResetPC
	c.IME = false
	c.halted = false
	c.stopped = false
	c.err = nil
}

// Bus returns the bus the CPU executes against.
func (c *CPU) Bus() *bus.Bus {
	return c.bus
}

// Halted reports whether a HALT instruction has been executed since the
// last Reset or resume.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether a STOP instruction has been executed since
// the last Reset or resume.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Resume clears the halted and stopped states. It is called by the host
// when the condition that ends a low power mode has been met.
func (c *CPU) Resume() {
	c.halted = false
	c.stopped = false
}

// Err returns the error that locked the CPU, or nil.
func (c *CPU) Err() error {
	return c.err
}

// Step fetches, decodes and executes a single instruction, and returns
// the number of cycles it was charged. Once an illegal opcode has been
// fetched, Step performs no further work and returns the same
// *IllegalOpcodeError until Reset is called.
func (c *CPU) Step() (uint8, error) {
	if c.err != nil {
		return 0, c.err
	}

	pc := c.PC
	opcode := c.readOperand()
	table, instr := Base, &InstructionSet[opcode]
	if opcode == 0xCB {
		opcode = c.readOperand()
		table, instr = Extended, &InstructionSetCB[opcode]
	}

	if instr.fn == nil {
		c.err = &IllegalOpcodeError{Opcode: opcode, Table: table, PC: pc}
		c.Log.Errorf("cpu: %v", c.err)
		return 0, c.err
	}

	return c.runInstruction(pc, instr), nil
}

// runInstruction executes the given instruction and ticks the bus by
// its cost, using the branch cost if the instruction transferred
// control.
func (c *CPU) runInstruction(pc uint16, instr *Instruction) uint8 {
	c.branched = false
	instr.fn(c)

	cycles := instr.cycles
	if c.branched {
		cycles = instr.branchCycles
	}
	c.bus.Tick(cycles)

	if c.Debug {
		c.Log.Debugf("%04X %-16s %s PC: %04x", pc, instr.name, c.Registers.String(), c.PC)
	}
	return cycles
}

// readOperand reads the byte at PC and increments PC.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little-endian word at PC and advances PC by 2.
func (c *CPU) readOperand16() uint16 {
	low := uint16(c.readOperand())
	high := uint16(c.readOperand())
	return high<<8 | low
}

// readByte reads a byte from the bus.
func (c *CPU) readByte(addr uint16) uint8 {
	return uint8(c.bus.Read(ram.Byte, addr))
}

// writeByte writes a byte to the bus.
func (c *CPU) writeByte(addr uint16, value uint8) {
	c.bus.Write(ram.Byte, addr, uint16(value))
}

// readWord reads a little-endian word from the bus.
func (c *CPU) readWord(addr uint16) uint16 {
	return c.bus.Read(ram.Word, addr)
}

// writeWord writes a little-endian word to the bus.
func (c *CPU) writeWord(addr uint16, value uint16) {
	c.bus.Write(ram.Word, addr, value)
}

// get8 returns the operand named by a 3-bit register index, where index
// 6 is the byte addressed by HL.
func (c *CPU) get8(index uint8) uint8 {
	if index == 6 {
		return c.readByte(c.HL.Uint16())
	}
	return *c.pointer(Reg(index))
}

// set8 writes the operand named by a 3-bit register index.
func (c *CPU) set8(index uint8, value uint8) {
	if index == 6 {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.pointer(Reg(index)) = value
}
