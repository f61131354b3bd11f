package cpu

import (
	"fmt"
)

// Memory layout constants.
const (
	MEMORY_SIZE  = 0x10000 // Full 16-bit address space, in bytes.
	PRG_START    = uint16(0x8000)
	RESET_VECTOR = uint16(0xFFFC)
)

// Memory is the 64 KiB address space owned by a single Cpu. Every
// address is always defined; construction zero-fills the array.
type Memory struct {
	bytes [MEMORY_SIZE]uint8
}

// Read returns the byte at addr.
func (mem *Memory) Read(addr uint16) uint8 {
	return mem.bytes[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr uint16, value uint8) {
	mem.bytes[addr] = value
}

// ReadWord returns the little-endian word at addr: low byte at addr,
// high byte at addr+1. A word at 0xFFFF has no high byte; accessing
// one is a range fault, never a wrap around the address space.
func (mem *Memory) ReadWord(addr uint16) uint16 {
	if addr == 0xFFFF {
		panic(fmt.Sprintf("word read at 0x%04X crosses the end of memory", addr))
	}
	lower := mem.Read(addr)
	upper := mem.Read(addr + 1)
	return uint16(upper)<<8 | uint16(lower)
}

// WriteWord stores a word at addr in little-endian order.
func (mem *Memory) WriteWord(addr uint16, value uint16) {
	if addr == 0xFFFF {
		panic(fmt.Sprintf("word write at 0x%04X crosses the end of memory", addr))
	}
	mem.Write(addr, uint8(value&0xFF))
	mem.Write(addr+1, uint8(value>>8))
}
