// Package cartridge provides the game cartridge for the SM83 core. The
// cartridge holds the game ROM and any external RAM, sized according
// to the header.
package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/ram"
)

// Cartridge represents a basic game cartridge. It owns a copy of the
// ROM it was created from, and a RAM sized by the header RAM size code.
type Cartridge struct {
	Header

	// RAM is the external RAM of the cartridge, it may be empty.
	RAM *ram.RAM

	rom  []byte
	hash uint64
}

// New parses the header of rom and returns a Cartridge owning a copy
// of it. It returns ErrROMTooShort if the ROM cannot contain a header,
// and an *InvalidRAMSizeError if the header declares an unknown RAM size.
func New(rom []byte) (*Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(rom))
	copy(owned, rom)

	return &Cartridge{
		Header: header,
		RAM:    ram.NewRAM(uint32(header.RAMSize)),
		rom:    owned,
		hash:   xxhash.Sum64(owned),
	}, nil
}

// NewEmpty returns a cartridge with a zero-filled ROM just large enough
// to hold a header, and no RAM.
func NewEmpty() *Cartridge {
	c, err := New(make([]byte, HeaderEnd))
	if err != nil {
		// a zeroed header is always valid
		panic(err)
	}
	return c
}

// Load replaces the ROM and RAM of the cartridge with a freshly parsed
// rom. If rom cannot be parsed the cartridge is left untouched.
func (c *Cartridge) Load(rom []byte) error {
	n, err := New(rom)
	if err != nil {
		return err
	}
	*c = *n
	return nil
}

// ROMContains reports whether an access of the given size at address
// lies within the ROM.
func (c *Cartridge) ROMContains(size ram.Size, address uint16) bool {
	if size == ram.Word {
		return int(address)+1 < len(c.rom)
	}
	return int(address) < len(c.rom)
}

// Read returns the ROM value at the given address. The caller must
// ensure the access lies within the ROM, see ROMContains.
func (c *Cartridge) Read(size ram.Size, address uint16) uint16 {
	if size == ram.Word {
		return uint16(c.rom[address]) | uint16(c.rom[address+1])<<8
	}
	return uint16(c.rom[address])
}

// ROM returns the raw ROM of the cartridge. It must not be modified.
func (c *Cartridge) ROM() []byte {
	return c.rom
}

// Hash returns the xxhash of the ROM, which can be used to identify
// a ROM across loads.
func (c *Cartridge) Hash() uint64 {
	return c.hash
}
