// Package memory defines the basic interfaces for working
// with a 6502 family memory map along with a flat 64k
// implementation which covers the entire 16 bit address space
// with no mirroring or memory-mapped I/O.
package memory

import "fmt"

const (
	// LOAD_BASE is the address programs are copied to by Load.
	LOAD_BASE = uint16(0x8000)
	// RESET_VECTOR holds the little endian address execution begins at after reset.
	RESET_VECTOR = uint16(0xFFFC)

	// MAX_PROGRAM is the largest program Load will accept.
	MAX_PROGRAM = 0x10000 - int(LOAD_BASE)
)

var _ = Bank(&Flat{})

// Reader is the read side of a memory map. Disassemblers and other
// inspection tools only need this.
type Reader interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
}

type Bank interface {
	Reader
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
}

// ProgramTooLarge is returned by Load when a program won't fit between
// LOAD_BASE and the top of memory.
type ProgramTooLarge struct {
	Len int
	Max int
}

// Error implements the interface for error types.
func (e ProgramTooLarge) Error() string {
	return fmt.Sprintf("program of 0x%.4X bytes exceeds 0x%.4X bytes available at 0x%.4X", e.Len, e.Max, LOAD_BASE)
}

// Flat is a byte addressable store covering all 65536 addresses.
// The zero value is powered on (all zeros).
type Flat struct {
	addr [65536]uint8
}

// Read implements the interface for memory.Bank.
func (f *Flat) Read(addr uint16) uint8 {
	return f.addr[addr]
}

// Write implements the interface for memory.Bank.
func (f *Flat) Write(addr uint16, val uint8) {
	f.addr[addr] = val
}

// PowerOn implements the interface for memory.Bank. All of RAM is zero filled.
func (f *Flat) PowerOn() {
	for i := range f.addr {
		f.addr[i] = 0x00
	}
}

// ReadAddr returns the little endian 16 bit value stored at addr and addr+1.
// NOTE: addr+1 is computed in 16 bits so a read at 0xFFFF takes its high byte from 0x0000.
func (f *Flat) ReadAddr(addr uint16) uint16 {
	return (uint16(f.addr[addr+1]) << 8) + uint16(f.addr[addr])
}

// WriteAddr stores val little endian at addr and addr+1 with the same
// wraparound as ReadAddr.
func (f *Flat) WriteAddr(addr uint16, val uint16) {
	f.addr[addr] = uint8(val & 0xFF)
	f.addr[addr+1] = uint8((val & 0xFF00) >> 8)
}

// ReadZPAddr returns the 16 bit value stored in zero page at addr. The high byte
// pointer wraps inside zero page (0xFF reads its high byte from 0x00).
func (f *Flat) ReadZPAddr(addr uint8) uint16 {
	return (uint16(f.addr[addr+1]) << 8) + uint16(f.addr[addr])
}

// Load copies prog into memory starting at LOAD_BASE and points the
// reset vector at it. Nothing is written if prog is too large.
func (f *Flat) Load(prog []byte) error {
	if len(prog) > MAX_PROGRAM {
		return ProgramTooLarge{Len: len(prog), Max: MAX_PROGRAM}
	}
	copy(f.addr[LOAD_BASE:], prog)
	f.WriteAddr(RESET_VECTOR, LOAD_BASE)
	return nil
}
