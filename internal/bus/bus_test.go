package bus

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/pkg/log"
)

func fakeCartridge(t *testing.T, ramSizeCode uint8) *cartridge.Cartridge {
	t.Helper()
	rom := make([]byte, cartridge.HeaderEnd)
	copy(rom[0x0134:], "TEST ROM")
	rom[0x0148] = 0x01
	rom[0x0149] = ramSizeCode

	c, err := cartridge.New(rom)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestBus_WRAM00(t *testing.T) {
	b := NewBus(nil, nil)
	for i, tt := range []struct {
		address uint16
		offset  uint32
	}{
		{0xC000, 0x0000},
		{0xC001, 0x0001},
		{0xCFFF, 0x0FFF},
	} {
		value := uint16(i + 1)
		b.Write(ram.Byte, tt.address, value)

		if v := b.WRAM().Read(ram.Byte, tt.offset); v != value {
			t.Errorf("expected 0x%02X at WRAM offset 0x%04X, got 0x%02X", value, tt.offset, v)
		}
		if v := b.Read(ram.Byte, tt.address); v != value {
			t.Errorf("expected 0x%02X at 0x%04X, got 0x%02X", value, tt.address, v)
		}
	}
}

func TestBus_WRAM01(t *testing.T) {
	b := NewBus(fakeCartridge(t, 0x01), nil) // 2KB RAM

	b.Write(ram.Byte, 0xD000, 0x01)
	b.Write(ram.Byte, 0xD001, 0x02)

	if v := b.Cart.RAM.Read(ram.Byte, 0x0000); v != 0x01 {
		t.Errorf("expected 0x01 in cartridge RAM, got 0x%02X", v)
	}
	if v := b.Read(ram.Byte, 0xD001); v != 0x02 {
		t.Errorf("expected 0x02 at 0xD001, got 0x%02X", v)
	}

	t.Run("beyond cartridge RAM", func(t *testing.T) {
		b.Write(ram.Byte, 0xD800, 0x42)
		if v := b.Read(ram.Byte, 0xD800); v != 0 {
			t.Errorf("expected 0 beyond the 2KB cartridge RAM, got 0x%02X", v)
		}
		if s := b.Stats(); s.UnmappedReads != 1 || s.UnmappedWrites != 1 {
			t.Errorf("expected one unmapped read and write, got %+v", s)
		}
	})
}

func TestBus_ROM00(t *testing.T) {
	b := NewBus(fakeCartridge(t, 0x01), nil)

	if v := b.Read(ram.Byte, 0x0148); v != 0x01 {
		t.Errorf("expected ROM size code 0x01, got 0x%02X", v)
	}
	if v := b.Read(ram.Byte, 0x0149); v != 0x01 {
		t.Errorf("expected RAM size code 0x01, got 0x%02X", v)
	}
	if v := b.Read(ram.Byte, 0x0134); v != 0x54 {
		t.Errorf("expected 'T' from header title, got 0x%02X", v)
	}

	t.Run("read only", func(t *testing.T) {
		b.Write(ram.Byte, 0x0134, 0xFF)
		if v := b.Read(ram.Byte, 0x0134); v != 0x54 {
			t.Errorf("expected ROM to be read-only, got 0x%02X", v)
		}
	})
	t.Run("beyond ROM", func(t *testing.T) {
		if v := b.Read(ram.Byte, 0x3000); v != 0 {
			t.Errorf("expected 0 beyond the ROM, got 0x%02X", v)
		}
	})
}

func TestBus_Word(t *testing.T) {
	b := NewBus(nil, nil)

	b.Write(ram.Word, 0xC010, 0x0102)
	if v := b.Read(ram.Byte, 0xC010); v != 0x02 {
		t.Errorf("expected low byte 0x02, got 0x%02X", v)
	}
	if v := b.Read(ram.Byte, 0xC011); v != 0x01 {
		t.Errorf("expected high byte 0x01, got 0x%02X", v)
	}
	if v := b.Read(ram.Word, 0xC010); v != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04X", v)
	}

	// a word straddling WRAM and an unmapped region only keeps the mapped half
	b.Write(ram.Word, 0xCFFF, 0xBEEF)
	if v := b.Read(ram.Word, 0xCFFF); v != 0x00EF {
		t.Errorf("expected 0x00EF, got 0x%04X", v)
	}
}

func TestBus_Unmapped(t *testing.T) {
	var buf bytes.Buffer
	b := NewBus(nil, log.NewWithWriter(&buf, logrus.DebugLevel))

	if v := b.Read(ram.Byte, 0x9000); v != 0 {
		t.Errorf("expected unmapped read to return 0, got 0x%02X", v)
	}
	b.Write(ram.Byte, 0xFF80, 0x12)
	if v := b.Read(ram.Byte, 0xFF80); v != 0 {
		t.Errorf("expected unmapped write to be discarded, got 0x%02X", v)
	}

	if s := b.Stats(); s.UnmappedReads != 2 || s.UnmappedWrites != 1 {
		t.Errorf("expected 2 unmapped reads and 1 write, got %+v", s)
	}
	if !strings.Contains(buf.String(), "ignored read from address: 9000") {
		t.Errorf("expected read diagnostic, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "ignored write to address: FF80") {
		t.Errorf("expected write diagnostic, got %q", buf.String())
	}
}

type device struct {
	regs   map[uint16]uint8
	reads  int
	writes int
}

func (d *device) Read(address uint16) uint8 {
	d.reads++
	return d.regs[address]
}

func (d *device) Write(address uint16, value uint8) {
	d.writes++
	d.regs[address] = value
}

func TestBus_AttachIO(t *testing.T) {
	b := NewBus(nil, nil)
	d := &device{regs: map[uint16]uint8{}}

	if err := b.AttachIO(0xFF00, 0xFF7F, d); err != nil {
		t.Fatal(err)
	}

	b.Write(ram.Byte, 0xFF05, 0x33)
	if v := b.Read(ram.Byte, 0xFF05); v != 0x33 {
		t.Errorf("expected device register to read back 0x33, got 0x%02X", v)
	}
	if d.reads != 1 || d.writes != 1 {
		t.Errorf("expected 1 read and 1 write, got %d/%d", d.reads, d.writes)
	}
	if s := b.Stats(); s.UnmappedReads != 0 || s.UnmappedWrites != 0 {
		t.Errorf("expected no unmapped accesses, got %+v", s)
	}

	for _, r := range [][2]uint16{
		{0x3F00, 0x4000}, // ROM
		{0xCF00, 0xD000}, // WRAM
		{0xFF70, 0xFF90}, // previous device
	} {
		if err := b.AttachIO(r[0], r[1], d); !errors.Is(err, ErrRangeMapped) {
			t.Errorf("%04X-%04X: expected ErrRangeMapped, got %v", r[0], r[1], err)
		}
	}
	if err := b.AttachIO(0x10, 0x00, d); err == nil {
		t.Errorf("expected inverted range to be rejected")
	}
}

func TestBus_Tick(t *testing.T) {
	b := NewBus(nil, nil)
	b.Tick(4)
	b.Tick(8)
	b.Tick(0)
	if b.Cycles() != 12 {
		t.Errorf("expected 12 cycles, got %d", b.Cycles())
	}
}

func TestBus_LoadCartridge(t *testing.T) {
	b := NewBus(nil, nil)
	b.Write(ram.Byte, 0xC000, 0x99)
	b.Tick(4)

	b.LoadCartridge(fakeCartridge(t, 0x02))
	if v := b.Read(ram.Byte, 0x0134); v != 'T' {
		t.Errorf("expected new cartridge ROM, got 0x%02X", v)
	}
	if v := b.Read(ram.Byte, 0xC000); v != 0x99 || b.Cycles() != 4 {
		t.Errorf("expected work RAM and cycles to survive a cartridge swap")
	}
}
