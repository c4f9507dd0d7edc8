// Package bus provides the address bus of the SM83 core. The bus is
// unaware of the CPU, it routes every read and write in the 16-bit
// address space to the cartridge ROM, the work RAM or the cartridge
// RAM, and tolerates accesses to anything else.
package bus

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ROMBank00 is the fixed ROM bank, backed by the cartridge ROM.
	ROMBank00    uint16 = 0x0000
	ROMBank00End uint16 = 0x3FFF

	// WRAM00 is the first work RAM bank, internal to the machine.
	WRAM00    uint16 = 0xC000
	WRAM00End uint16 = 0xCFFF

	// WRAM01 is the second work RAM bank, backed by the cartridge RAM.
	WRAM01    uint16 = 0xD000
	WRAM01End uint16 = 0xDFFF
)

// ErrRangeMapped is returned by AttachIO when the requested range
// overlaps a range that is already mapped.
var ErrRangeMapped = errors.New("bus: address range already mapped")

// IODevice is the interface an external peripheral implements to be
// attached to the bus.
type IODevice interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

type ioMapping struct {
	start, end uint16
	device     IODevice
}

// Stats counts the diagnostics raised by the bus.
type Stats struct {
	UnmappedReads  uint64
	UnmappedWrites uint64
}

// Bus routes memory accesses by address range and keeps the cycle
// counter of the machine.
type Bus struct {
	// 0x0000 - 0x3FFF - ROM bank 00 (16kB)
	// 0xD000 - 0xDFFF - cartridge RAM (4kB window)
	Cart *cartridge.Cartridge

	// 0xC000 - 0xCFFF - Work RAM bank 00 (4kB)
	wRAM *ram.RAM

	io []ioMapping

	cycles uint64
	stats  Stats

	Log log.Logger
}

// NewBus returns a new Bus for the given cartridge. A nil cartridge is
// replaced by cartridge.NewEmpty, and a nil logger by a null logger.
func NewBus(cart *cartridge.Cartridge, logger log.Logger) *Bus {
	if cart == nil {
		cart = cartridge.NewEmpty()
	}
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &Bus{
		Cart: cart,
		wRAM: ram.NewRAM(uint32(WRAM00End-WRAM00) + 1),
		Log:  logger,
	}
}

// Read reads a byte or a little-endian word from the given address. A
// word is read as two byte accesses, each routed on its own.
func (b *Bus) Read(size ram.Size, address uint16) uint16 {
	if size == ram.Word {
		return uint16(b.readByte(address)) | uint16(b.readByte(address+1))<<8
	}
	return uint16(b.readByte(address))
}

// Write writes a byte or a little-endian word to the given address. A
// word is written as two byte accesses, each routed on its own.
func (b *Bus) Write(size ram.Size, address uint16, value uint16) {
	b.writeByte(address, uint8(value))
	if size == ram.Word {
		b.writeByte(address+1, uint8(value>>8))
	}
}

func (b *Bus) readByte(address uint16) uint8 {
	switch {
	case address <= ROMBank00End:
		if b.Cart.ROMContains(ram.Byte, address) {
			return uint8(b.Cart.Read(ram.Byte, address))
		}
	case address >= WRAM00 && address <= WRAM00End:
		return uint8(b.wRAM.Read(ram.Byte, uint32(address-WRAM00)))
	case address >= WRAM01 && address <= WRAM01End:
		if b.Cart.RAM.Contains(ram.Byte, uint32(address-WRAM01)) {
			return uint8(b.Cart.RAM.Read(ram.Byte, uint32(address-WRAM01)))
		}
	default:
		if m := b.lookupIO(address); m != nil {
			return m.device.Read(address)
		}
	}

	b.stats.UnmappedReads++
	b.Log.Debugf("ignored read from address: %04X", address)
	return 0
}

func (b *Bus) writeByte(address uint16, value uint8) {
	switch {
	case address <= ROMBank00End:
		// ROM is read-only
	case address >= WRAM00 && address <= WRAM00End:
		b.wRAM.Write(ram.Byte, uint32(address-WRAM00), uint16(value))
		return
	case address >= WRAM01 && address <= WRAM01End:
		if b.Cart.RAM.Contains(ram.Byte, uint32(address-WRAM01)) {
			b.Cart.RAM.Write(ram.Byte, uint32(address-WRAM01), uint16(value))
			return
		}
	default:
		if m := b.lookupIO(address); m != nil {
			m.device.Write(address, value)
			return
		}
	}

	b.stats.UnmappedWrites++
	b.Log.Debugf("ignored write to address: %04X (%02X)", address, value)
}

func (b *Bus) lookupIO(address uint16) *ioMapping {
	for i := range b.io {
		if address >= b.io[i].start && address <= b.io[i].end {
			return &b.io[i]
		}
	}
	return nil
}

// AttachIO maps device onto the inclusive range start-end. The range
// must not overlap the ROM, the work RAM, the cartridge RAM window or
// any previously attached device.
func (b *Bus) AttachIO(start, end uint16, device IODevice) error {
	if end < start {
		return fmt.Errorf("bus: invalid range %04X-%04X", start, end)
	}
	overlaps := func(s, e uint16) bool {
		return start <= e && end >= s
	}
	if overlaps(ROMBank00, ROMBank00End) || overlaps(WRAM00, WRAM01End) {
		return fmt.Errorf("%w: %04X-%04X", ErrRangeMapped, start, end)
	}
	for _, m := range b.io {
		if overlaps(m.start, m.end) {
			return fmt.Errorf("%w: %04X-%04X", ErrRangeMapped, start, end)
		}
	}

	b.io = append(b.io, ioMapping{start: start, end: end, device: device})
	return nil
}

// Tick advances the cycle counter by the given number of cycles.
func (b *Bus) Tick(cycles uint8) {
	b.cycles += uint64(cycles)
}

// Cycles returns the number of cycles ticked since power on.
func (b *Bus) Cycles() uint64 {
	return b.cycles
}

// Stats returns the diagnostics counted by the bus.
func (b *Bus) Stats() Stats {
	return b.stats
}

// WRAM returns the work RAM backing 0xC000-0xCFFF.
func (b *Bus) WRAM() *ram.RAM {
	return b.wRAM
}

// LoadCartridge replaces the cartridge on the bus. The cycle counter
// and work RAM are left untouched.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.Cart = cart
}
