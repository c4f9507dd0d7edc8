package cartridge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// HeaderEnd is the first address after the cartridge header. A ROM
// must be at least this long to be loaded.
const HeaderEnd = 0x0150

var (
	// ErrROMTooShort is returned when a ROM is too short to contain a
	// complete header.
	ErrROMTooShort = errors.New("cartridge: rom too short to contain a header")
	// ErrInvalidRAMSize is matched by any InvalidRAMSizeError.
	ErrInvalidRAMSize = errors.New("cartridge: invalid RAM size")
)

// InvalidRAMSizeError is returned when the header declares a RAM size
// code that is not present in the RAM size table.
type InvalidRAMSizeError struct {
	Code uint8
}

func (e *InvalidRAMSizeError) Error() string {
	return fmt.Sprintf("cartridge: invalid RAM size code: %#02x", e.Code)
}

// Is allows errors.Is(err, ErrInvalidRAMSize).
func (e *InvalidRAMSizeError) Is(target error) bool {
	return target == ErrInvalidRAMSize
}

// ramSizes maps the RAM size code at 0x0149 to the amount of RAM in
// bytes. The codes are not in ascending order of size, 0x04 (128KiB)
// comes before 0x05 (64KiB).
var ramSizes = map[uint8]uint32{
	0x00: 0,          // 0KiB
	0x01: 2 * 1024,   // 2KiB
	0x02: 8 * 1024,   // 8KiB
	0x03: 32 * 1024,  // 32KiB
	0x04: 128 * 1024, // 128KiB
	0x05: 64 * 1024,  // 64KiB
}

// RAMSizeFor returns the RAM size in bytes for the given header code.
func RAMSizeFor(code uint8) (uint32, bool) {
	size, ok := ramSizes[code]
	return size, ok
}

type CGBFlag = uint8 // CGBFlag specifies the level of CGB support in a Cartridge.

const (
	CGBFlagEnhanced CGBFlag = iota // The game supports CGB enhancements, but is backwards compatible.
	CGBFlagCGBOnly                 // The game works on CGB only.
	CGBFlagUnset                   // No CGB support has been specified, most likely a regular Game Boy game.
)

// Type represents the hardware present in a Cartridge.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0xFC
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%#02x)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header
// located at the address space 0x0100-0x014F. The header contains information
// about the cartridge itself, and the hardware it expects to run on.
//
// credits
// https://gbdev.io/pandocs/The_Cartridge_Header.html
type Header struct {
	Title            string  // $0134-$0142 Title of the game in uppercase ASCII.
	ManufacturerCode string  // $013F-$0142 4-character ManufacturerCode (in uppercase ASCII) - purpose remains unknown
	CGBFlag                  // $0143 - Indicates level of CGB support
	NewLicenseeCode  [2]byte // $0144-$0145 2-character ASCII "licensee code"
	SGBFlag          bool    // $0146 - Specifies whether the game supports SGB functions
	CartridgeType    Type    // $0147 - Specifies the hardware present on a Cartridge.
	ROMSizeCode      uint8   // $0148 - ROM size, calculated by 32 KiB x (1<<value)
	ROMSize          int
	RAMSizeCode      uint8 // $0149 - Specifies how much RAM is present on the Cartridge, if any.
	RAMSize          int
	DestinationCode  byte   // $014A - Specifies whether the game is intended to be sold in Japan or elsewhere
	OldLicenseeCode  byte   // $014B - Specifies the game's publisher; see NewLicenseeCode if val == $33
	MaskROMVersion   uint8  // $014C - Specifies the version of the game. It is usually $00
	HeaderChecksum   uint8  // $014D - 8-Bit checksum of header bytes $0134-$014C
	GlobalChecksum   uint16 // $014E-$014F 16-bit (big endian) checksum of Cartridge ROM (excluding these bytes)

	computedChecksum uint8
}

// parseHeader parses the header of the given ROM. The ROM must be at
// least HeaderEnd bytes long.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < HeaderEnd {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrROMTooShort, len(rom))
	}
	h := Header{}

	// parse the RAM size first, an unknown code rejects the whole ROM
	h.RAMSizeCode = rom[0x0149]
	ramSize, ok := ramSizes[h.RAMSizeCode]
	if !ok {
		return Header{}, &InvalidRAMSizeError{Code: h.RAMSizeCode}
	}
	h.RAMSize = int(ramSize)

	switch rom[0x0143] {
	case 0x80:
		h.CGBFlag = CGBFlagEnhanced
	case 0xC0:
		h.CGBFlag = CGBFlagCGBOnly
	default:
		h.CGBFlag = CGBFlagUnset
	}

	// the title would be padded with $00 bytes if it was shorter than the title length
	h.Title = strings.TrimRight(string(rom[0x0134:0x0143]), "\x00")
	h.ManufacturerCode = string(rom[0x013F:0x0143])
	h.NewLicenseeCode = [2]byte{rom[0x0144], rom[0x0145]}
	h.SGBFlag = rom[0x0146] == 0x03
	h.CartridgeType = Type(rom[0x0147])
	h.ROMSizeCode = rom[0x0148]
	if h.ROMSizeCode < 16 {
		h.ROMSize = (32 * 1024) * (1 << h.ROMSizeCode)
	}
	h.DestinationCode = rom[0x014A]
	h.OldLicenseeCode = rom[0x014B]
	h.MaskROMVersion = rom[0x014C]
	h.HeaderChecksum = rom[0x014D]
	h.GlobalChecksum = binary.BigEndian.Uint16(rom[0x014E:0x0150])

	for _, b := range rom[0x0134:0x014D] {
		h.computedChecksum = h.computedChecksum - b - 1
	}

	return h, nil
}

// ChecksumValid reports whether the header checksum stored at 0x014D
// matches the checksum computed over 0x0134-0x014C.
func (h *Header) ChecksumValid() bool {
	return h.computedChecksum == h.HeaderChecksum
}

// IsCGBCartridge returns true if the cartridge makes use of CGB features, optionally or not.
func (h *Header) IsCGBCartridge() bool {
	return h.CGBFlag < CGBFlagUnset
}

// Destination returns the destination as specified in the cartridge header.
func (h *Header) Destination() string {
	switch h.DestinationCode {
	case 0:
		return "Japanese"
	case 1:
		return "Non-Japanese"
	default:
		return "Unknown"
	}
}

// Licensee returns the Licensee of the cartridge, according to the parsed header data.
func (h *Header) Licensee() string {
	if h.OldLicenseeCode == 0x33 {
		return newLicenseeCodeMap[string(h.NewLicenseeCode[:])]
	}

	return oldLicenseeCodeMap[h.OldLicenseeCode]
}

// String implements the fmt.Stringer interface.
func (h *Header) String() string {
	return fmt.Sprintf("%s (%s) | (%dKiB|%dKiB) %s", h.Title, h.Licensee(), h.ROMSize/1024, h.RAMSize/1024, h.CartridgeType)
}
