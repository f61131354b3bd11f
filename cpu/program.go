package cpu

import (
	"iter"
)

// Line is a single assembled source line.
type Line struct {
	LineNo    int      // Source line number.
	Addr      int      // Offset of the first byte from the load origin.
	Words     []string // Parsed source words.
	Bytes     []byte   // Assembled machine code.
	LinkLabel string   // Label patched into the operand word, if any.
}

// Program is an assembled listing.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug locates the source line covering a program counter address.
func (prog *Program) Debug(pc uint16) (dbg Debug) {
	for n, line := range prog.Lines {
		start := PRG_START + uint16(line.Addr)
		if pc >= start && pc < start+uint16(len(line.Bytes)) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(pc - start),
			}
			break
		}
	}

	return
}

// Binary returns the program machine code, ready for (*Cpu).Load.
func (prog *Program) Binary() (bin []byte) {
	for _, b := range prog.Bytes() {
		bin = append(bin, b)
	}

	return
}

// Bytes iterates the assembled bytes with their load addresses.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, b uint8) bool) {
		for _, line := range prog.Lines {
			start := PRG_START + uint16(line.Addr)
			for n, b := range line.Bytes {
				if !yield(start+uint16(n), b) {
					return
				}
			}
		}
	}
}
