package cpu

import "testing"

func TestRegisters_Pair(t *testing.T) {
	c := newTestCPU(t)

	for _, pair := range []Pair{PairBC, PairDE, PairHL, PairSP} {
		t.Run(pair.String(), func(t *testing.T) {
			for v := 0; v <= 0xFFFF; v++ {
				c.SetPair(pair, uint16(v))
				if got := c.Pair(pair); got != uint16(v) {
					t.Fatalf("expected 0x%04X, got 0x%04X", v, got)
				}
			}
		})
	}

	c.SetPair(PairHL, 0xBEEF)
	if c.H != 0xBE || c.L != 0xEF {
		t.Errorf("expected H=0xBE L=0xEF, got H=0x%02X L=0x%02X", c.H, c.L)
	}
	c.D, c.E = 0x12, 0x34
	if c.Pair(PairDE) != 0x1234 {
		t.Errorf("expected DE to be 0x1234, got 0x%04X", c.Pair(PairDE))
	}
}

func TestRegisters_AF(t *testing.T) {
	c := newTestCPU(t)

	c.SetPair(PairAF, 0x12FF)
	if c.A != 0x12 || c.F != 0xF0 {
		t.Errorf("expected A=0x12 F=0xF0, got A=0x%02X F=0x%02X", c.A, c.F)
	}
	c.Set(RegF, 0xAB)
	if c.Get(RegF) != 0xA0 {
		t.Errorf("expected F to be 0xA0, got 0x%02X", c.Get(RegF))
	}
	c.SetFlags(0x5F)
	if c.F != 0x50 {
		t.Errorf("expected F to be 0x50, got 0x%02X", c.F)
	}
}

func TestRegisters_GetSet(t *testing.T) {
	c := newTestCPU(t)
	regs := []Reg{RegA, RegB, RegC, RegD, RegE, RegH, RegL}
	for i, reg := range regs {
		c.Set(reg, uint8(i+1))
	}
	for i, reg := range regs {
		if got := c.Get(reg); got != uint8(i+1) {
			t.Errorf("expected %s to be %d, got %d", reg, i+1, got)
		}
	}
	if c.String() != "A: 01 F: 00 B: 02 C: 03 D: 04 E: 05 H: 06 L: 07 SP: 0000" {
		t.Errorf("unexpected register dump %q", c.String())
	}
}

// nibble widens v so that a subtraction wraps at runtime.
func nibble(v uint8) uint16 { return uint16(v & 0xF) }

func TestRegisters_Flags(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *Registers)
		want uint8
	}{
		{"zero", func(r *Registers) { r.CheckZero(0) }, 0x80},
		{"non zero", func(r *Registers) { r.CheckZero(1) }, 0x00},
		{"subtract", func(r *Registers) { r.SetSubtract(true) }, 0x40},
		{"half carry", func(r *Registers) { r.CheckHalfCarry(0xF + 0x1) }, 0x20},
		{"no half carry", func(r *Registers) { r.CheckHalfCarry(0xF) }, 0x00},
		{"half borrow", func(r *Registers) { r.CheckHalfCarry(nibble(0x0) - 0x1) }, 0x20},
		{"carry", func(r *Registers) { r.CheckCarry(0xFF + 0x01) }, 0x10},
		{"no carry", func(r *Registers) { r.CheckCarry(0xFF) }, 0x00},
		{"borrow", func(r *Registers) { r.CheckCarry(nibble(0x0) - 0x01) }, 0x10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			tt.fn(&c.Registers)
			if c.F != tt.want {
				t.Errorf("expected F to be 0x%02X, got 0x%02X", tt.want, c.F)
			}
		})
	}

	c := newTestCPU(t)
	c.SetFlags(0xF0)
	if !c.Zero() || !c.Subtract() || !c.HalfCarry() || !c.Carry() {
		t.Errorf("expected every flag to be set, got 0x%02X", c.F)
	}
	c.SetSubtract(false)
	if c.Subtract() || c.F != 0xB0 {
		t.Errorf("expected only the subtract flag to clear, got 0x%02X", c.F)
	}
}
