package cpu

import "testing"

// ioRegisters is a bus.IODevice backed by a map.
type ioRegisters map[uint16]uint8

func (r ioRegisters) Read(address uint16) uint8         { return r[address] }
func (r ioRegisters) Write(address uint16, value uint8) { r[address] = value }

func TestInstruction_LoadRegister(t *testing.T) {
	testInstruction(t, "LD B, C", 0x41, func(t *testing.T) {
		c := newTestCPU(t, 0x41)
		c.C = 0x42
		if step(t, c) != 4 {
			t.Error("expected LD B, C to take 4 cycles")
		}
		if c.B != 0x42 {
			t.Errorf("expected B to be 0x42, got 0x%02X", c.B)
		}
	})
	testInstruction(t, "LD (HL), A", 0x77, func(t *testing.T) {
		c := newTestCPU(t, 0x77)
		c.A = 0x99
		c.HL.SetUint16(0xC010)
		if step(t, c) != 8 {
			t.Error("expected LD (HL), A to take 8 cycles")
		}
		if v := c.readByte(0xC010); v != 0x99 {
			t.Errorf("expected memory at 0xC010 to be 0x99, got 0x%02X", v)
		}
	})
	testInstruction(t, "LD A, (HL)", 0x7E, func(t *testing.T) {
		c := newTestCPU(t, 0x7E)
		c.HL.SetUint16(0xD020)
		c.writeByte(0xD020, 0x17)
		step(t, c)
		if c.A != 0x17 {
			t.Errorf("expected A to be 0x17, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD B, d8", 0x06, func(t *testing.T) {
		c := newTestCPU(t, 0x06, 0xAB)
		if step(t, c) != 8 {
			t.Error("expected LD B, d8 to take 8 cycles")
		}
		if c.B != 0xAB || c.PC != 0x0102 {
			t.Errorf("expected B=0xAB PC=0x0102, got B=0x%02X PC=0x%04X", c.B, c.PC)
		}
	})
	testInstruction(t, "LD (HL), d8", 0x36, func(t *testing.T) {
		c := newTestCPU(t, 0x36, 0xCD)
		c.HL.SetUint16(0xC000)
		if step(t, c) != 12 {
			t.Error("expected LD (HL), d8 to take 12 cycles")
		}
		if v := c.readByte(0xC000); v != 0xCD {
			t.Errorf("expected memory at 0xC000 to be 0xCD, got 0x%02X", v)
		}
	})
}

func TestInstruction_Load16(t *testing.T) {
	testInstruction(t, "LD BC, d16", 0x01, func(t *testing.T) {
		c := newTestCPU(t, 0x01, 0x34, 0x12)
		if step(t, c) != 12 {
			t.Error("expected LD BC, d16 to take 12 cycles")
		}
		if c.B != 0x12 || c.C != 0x34 || c.PC != 0x0103 {
			t.Errorf("expected B=0x12 C=0x34 PC=0x0103, got B=0x%02X C=0x%02X PC=0x%04X", c.B, c.C, c.PC)
		}
	})
	testInstruction(t, "LD SP, d16", 0x31, func(t *testing.T) {
		c := newTestCPU(t, 0x31, 0xFE, 0xFF)
		step(t, c)
		if c.SP != 0xFFFE {
			t.Errorf("expected SP to be 0xFFFE, got 0x%04X", c.SP)
		}
	})
	testInstruction(t, "LD (a16), SP", 0x08, func(t *testing.T) {
		c := newTestCPU(t, 0x08, 0x00, 0xC1)
		c.SP = 0xBEEF
		if step(t, c) != 20 {
			t.Error("expected LD (a16), SP to take 20 cycles")
		}
		if c.readByte(0xC100) != 0xEF || c.readByte(0xC101) != 0xBE {
			t.Errorf("expected SP to be stored little endian at 0xC100")
		}
	})
	testInstruction(t, "LD SP, HL", 0xF9, func(t *testing.T) {
		c := newTestCPU(t, 0xF9)
		c.HL.SetUint16(0xC0DE)
		if step(t, c) != 8 {
			t.Error("expected LD SP, HL to take 8 cycles")
		}
		if c.SP != 0xC0DE {
			t.Errorf("expected SP to be 0xC0DE, got 0x%04X", c.SP)
		}
	})
}

func TestInstruction_LoadIndirect(t *testing.T) {
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T) {
		c := newTestCPU(t, 0x22)
		c.A = 0x11
		c.HL.SetUint16(0xC0FF)
		step(t, c)
		if c.readByte(0xC0FF) != 0x11 || c.HL.Uint16() != 0xC100 {
			t.Errorf("expected store then increment, got HL=0x%04X", c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T) {
		c := newTestCPU(t, 0x3A)
		c.HL.SetUint16(0xC100)
		c.writeByte(0xC100, 0x22)
		step(t, c)
		if c.A != 0x22 || c.HL.Uint16() != 0xC0FF {
			t.Errorf("expected load then decrement, got A=0x%02X HL=0x%04X", c.A, c.HL.Uint16())
		}
	})
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T) {
		c := newTestCPU(t, 0x02)
		c.A = 0x33
		c.BC.SetUint16(0xD000)
		step(t, c)
		if c.readByte(0xD000) != 0x33 {
			t.Errorf("expected memory at 0xD000 to be 0x33")
		}
	})
	testInstruction(t, "LD A, (DE)", 0x1A, func(t *testing.T) {
		c := newTestCPU(t, 0x1A)
		c.DE.SetUint16(0x0100)
		step(t, c)
		if c.A != 0x1A {
			t.Errorf("expected A to be read from ROM, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD (a16), A", 0xEA, func(t *testing.T) {
		c := newTestCPU(t, 0xEA, 0x34, 0xC2, 0xFA, 0x34, 0xC2)
		c.A = 0x44
		if step(t, c) != 16 {
			t.Error("expected LD (a16), A to take 16 cycles")
		}
		c.A = 0
		step(t, c)
		if c.A != 0x44 {
			t.Errorf("expected A to be 0x44, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_LoadHighPage(t *testing.T) {
	regs := ioRegisters{0xFF44: 0x90, 0xFF10: 0x80}

	c := newTestCPU(t, 0xE0, 0x40, 0xF0, 0x44, 0xE2, 0xF2)
	if err := c.Bus().AttachIO(0xFF00, 0xFF7F, regs); err != nil {
		t.Fatal(err)
	}

	c.A = 0x91
	if step(t, c) != 12 {
		t.Error("expected LDH (a8), A to take 12 cycles")
	}
	if regs[0xFF40] != 0x91 {
		t.Errorf("expected 0xFF40 to be 0x91, got 0x%02X", regs[0xFF40])
	}

	step(t, c)
	if c.A != 0x90 {
		t.Errorf("expected A to be 0x90, got 0x%02X", c.A)
	}

	c.C = 0x10
	if step(t, c) != 8 {
		t.Error("expected LD (C), A to take 8 cycles")
	}
	if regs[0xFF10] != 0x90 {
		t.Errorf("expected 0xFF10 to be 0x90, got 0x%02X", regs[0xFF10])
	}

	c.A = 0
	step(t, c)
	if c.A != 0x90 {
		t.Errorf("expected A to be 0x90, got 0x%02X", c.A)
	}
}

func TestInstruction_Stack(t *testing.T) {
	testInstruction(t, "PUSH BC", 0xC5, func(t *testing.T) {
		c := newTestCPU(t, 0xC5, 0xD1)
		c.SP = 0xC100
		c.BC.SetUint16(0x1234)

		if step(t, c) != 16 {
			t.Error("expected PUSH BC to take 16 cycles")
		}
		if c.SP != 0xC0FE || c.readByte(0xC0FE) != 0x34 || c.readByte(0xC0FF) != 0x12 {
			t.Errorf("expected 0x1234 pushed below 0xC100, got SP=0x%04X", c.SP)
		}

		if step(t, c) != 12 {
			t.Error("expected POP DE to take 12 cycles")
		}
		if c.DE.Uint16() != 0x1234 || c.SP != 0xC100 {
			t.Errorf("expected DE=0x1234 SP=0xC100, got DE=0x%04X SP=0x%04X", c.DE.Uint16(), c.SP)
		}
	})
	testInstruction(t, "POP AF", 0xF1, func(t *testing.T) {
		c := newTestCPU(t, 0xF1)
		c.SP = 0xC0FE
		c.writeWord(0xC0FE, 0x12FF)

		step(t, c)
		if c.A != 0x12 || c.F != 0xF0 {
			t.Errorf("expected A=0x12 F=0xF0, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
	testInstruction(t, "PUSH AF", 0xF5, func(t *testing.T) {
		c := newTestCPU(t, 0xF5)
		c.SP = 0xC100
		c.A = 0x12
		c.SetFlags(0xB0)

		step(t, c)
		if v := c.readWord(0xC0FE); v != 0x12B0 {
			t.Errorf("expected 0x12B0 on the stack, got 0x%04X", v)
		}
	})
}
