package types

// Register represents an SM83 Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, F, H and L. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of Registers which is viewed as a single
// 16-bit value. The CPU has 4 register pairs: AF, BC, DE, and HL.
//
// A RegisterPair does not own any storage, it points at the two Registers
// it is made of, so writing the pair always updates both halves together.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is applied to the low byte on every write. It is
	// used by AF, as the lower nibble of F is hardwired to 0.
	lowMask uint8
}

// NewRegisterPair returns a RegisterPair viewing high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low byte is
// masked with mask on every write.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}
