package cpu

import "github.com/thelolagemann/sm83/internal/types"

// setBit sets the bit at the given position in value.
//
//	SET b, r
//	b = 0 - 7
//	r = B, C, D, E, H, L, (HL), A
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return value | types.Mask(position)
}

// clearBit clears the bit at the given position in value.
//
//	RES b, r
//	b = 0 - 7
//	r = B, C, D, E, H, L, (HL), A
func (c *CPU) clearBit(value uint8, position uint8) uint8 {
	return value &^ types.Mask(position)
}

// testBit tests the bit at the given position in value, leaving value
// untouched.
//
//	BIT b, r
//	b = 0 - 7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of value is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.putFlag(FlagZero, value&types.Mask(position) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}
