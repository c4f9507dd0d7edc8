// Package ram provides a basic fixed-size RAM implementation.
package ram

import "fmt"

// Size is the width of a single memory access.
type Size uint8

const (
	// Byte is an 8-bit access.
	Byte Size = iota
	// Word is a 16-bit little-endian access, the low byte lives at
	// the given address and the high byte at the address after it.
	Word
)

func (s Size) String() string {
	switch s {
	case Byte:
		return "byte"
	case Word:
		return "word"
	}
	return fmt.Sprintf("Size(%d)", uint8(s))
}

// RAM represents a block of RAM. The size is set at construction
// and never changes.
type RAM struct {
	data []byte
}

// NewRAM returns a new zero-filled RAM of size bytes.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]byte, size),
	}
}

// Len returns the size of the RAM in bytes.
func (r *RAM) Len() int {
	return len(r.data)
}

// Contains reports whether an access of the given size at address
// lies entirely within the RAM.
func (r *RAM) Contains(size Size, address uint32) bool {
	if size == Word {
		return uint64(address)+1 < uint64(len(r.data))
	}
	return uint64(address) < uint64(len(r.data))
}

// Read returns the value at the given address.
func (r *RAM) Read(size Size, address uint32) uint16 {
	if size == Word {
		return uint16(r.data[address]) | uint16(r.data[address+1])<<8
	}
	return uint16(r.data[address])
}

// Write writes the value to the given address. A Byte write only
// stores the low 8 bits of value.
func (r *RAM) Write(size Size, address uint32, value uint16) {
	r.data[address] = uint8(value)
	if size == Word {
		r.data[address+1] = uint8(value >> 8)
	}
}

// Bytes returns the underlying storage.
func (r *RAM) Bytes() []byte {
	return r.data
}
