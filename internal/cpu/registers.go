package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

type (
	Register     = types.Register
	RegisterPair = types.RegisterPair
)

// Reg identifies one of the 8-bit registers. The values of B through A
// match the 3-bit register encoding used by the opcodes, where index 6
// encodes (HL) rather than a register.
type Reg uint8

const (
	RegB Reg = 0
	RegC Reg = 1
	RegD Reg = 2
	RegE Reg = 3
	RegH Reg = 4
	RegL Reg = 5
	RegA Reg = 7
	RegF Reg = 8
)

var regNames = map[Reg]string{
	RegA: "A", RegB: "B", RegC: "C", RegD: "D",
	RegE: "E", RegF: "F", RegH: "H", RegL: "L",
}

func (r Reg) String() string {
	if name, ok := regNames[r]; ok {
		return name
	}
	return "(HL)"
}

// Pair identifies one of the 16-bit register views. The values of BC
// through SP match the 2-bit encoding used by the 16-bit opcodes.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

func (p Pair) String() string {
	return [...]string{"BC", "DE", "HL", "SP", "AF"}[p]
}

// Registers contains the 8-bit registers, the 16-bit views over them,
// and the stack pointer.
//
// The pair views point into the byte registers, so a Registers value
// must be created with newRegisters and never copied.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// init binds the register pairs to the byte registers.
func (r *Registers) init() {
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
	r.AF = types.NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
}

// pointer returns the Register for the given Reg.
func (r *Registers) pointer(reg Reg) *Register {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegF:
		return &r.F
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %d", reg))
}

// Get returns the value of the given 8-bit register.
func (r *Registers) Get(reg Reg) uint8 {
	return *r.pointer(reg)
}

// Set sets the value of the given 8-bit register. The lower nibble of
// F always reads as 0.
func (r *Registers) Set(reg Reg, value uint8) {
	if reg == RegF {
		value &= 0xF0
	}
	*r.pointer(reg) = value
}

// Pair returns the value of the given 16-bit view, (high << 8) | low.
func (r *Registers) Pair(pair Pair) uint16 {
	switch pair {
	case PairBC:
		return r.BC.Uint16()
	case PairDE:
		return r.DE.Uint16()
	case PairHL:
		return r.HL.Uint16()
	case PairAF:
		return r.AF.Uint16()
	}
	return r.SP
}

// SetPair splits value into the two registers of the given view.
func (r *Registers) SetPair(pair Pair, value uint16) {
	switch pair {
	case PairBC:
		r.BC.SetUint16(value)
	case PairDE:
		r.DE.SetUint16(value)
	case PairHL:
		r.HL.SetUint16(value)
	case PairAF:
		r.AF.SetUint16(value)
	default:
		r.SP = value
	}
}

// CheckZero sets FlagZero if value is 0, and clears it otherwise.
func (r *Registers) CheckZero(value uint8) {
	r.putFlag(FlagZero, value == 0)
}

// SetSubtract sets or clears FlagSubtract.
func (r *Registers) SetSubtract(subtract bool) {
	r.putFlag(FlagSubtract, subtract)
}

// CheckHalfCarry sets FlagHalfCarry if the intermediate result of a
// nibble operation exceeds 0xF. The intermediate must be computed at
// full width, before it is truncated to a nibble, e.g.
//
//	(a & 0xF) + (b & 0xF) + carry
//
// A subtraction that borrows wraps around to a large uint16, which
// also exceeds 0xF.
func (r *Registers) CheckHalfCarry(intermediate uint16) {
	r.putFlag(FlagHalfCarry, intermediate > 0xF)
}

// CheckCarry sets FlagCarry if the intermediate result of a byte
// operation exceeds 0xFF. As with CheckHalfCarry, the intermediate
// must not be truncated to 8 bits first.
func (r *Registers) CheckCarry(intermediate uint16) {
	r.putFlag(FlagCarry, intermediate > 0xFF)
}

// SetFlags overwrites the flag register with a literal pattern.
func (r *Registers) SetFlags(flags uint8) {
	r.F = flags & 0xF0
}

// Zero reports whether FlagZero is set.
func (r *Registers) Zero() bool { return r.F&(1<<FlagZero) != 0 }

// Subtract reports whether FlagSubtract is set.
func (r *Registers) Subtract() bool { return r.F&(1<<FlagSubtract) != 0 }

// HalfCarry reports whether FlagHalfCarry is set.
func (r *Registers) HalfCarry() bool { return r.F&(1<<FlagHalfCarry) != 0 }

// Carry reports whether FlagCarry is set.
func (r *Registers) Carry() bool { return r.F&(1<<FlagCarry) != 0 }

func (r *Registers) putFlag(flag Flag, set bool) {
	if set {
		r.F |= 1 << flag
	} else {
		r.F &^= 1 << flag
	}
}

func (r *Registers) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP)
}
