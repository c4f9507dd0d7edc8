package cpu

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.putFlag(FlagZero, zero)
	c.putFlag(FlagSubtract, subtract)
	c.putFlag(FlagHalfCarry, halfCarry)
	c.putFlag(FlagCarry, carry)
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.isFlagSet(FlagCarry) {
		return 1
	}
	return 0
}

// condition evaluates the 2-bit cc field of a conditional jump, call
// or return: NZ, Z, NC, C.
func (c *CPU) condition(cc uint8) bool {
	switch cc & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	}
	return c.isFlagSet(FlagCarry)
}
