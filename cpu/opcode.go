package cpu

import (
	"fmt"
)

// AddressingMode selects how an instruction locates its operand.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_IMMEDIATE   = AddressingMode(0)  // #imm
	MODE_ZEROPAGE    = AddressingMode(1)  // zpg
	MODE_ZEROPAGE_X  = AddressingMode(2)  // zpg,X
	MODE_ZEROPAGE_Y  = AddressingMode(3)  // zpg,Y
	MODE_ABSOLUTE    = AddressingMode(4)  // abs
	MODE_ABSOLUTE_X  = AddressingMode(5)  // abs,X
	MODE_ABSOLUTE_Y  = AddressingMode(6)  // abs,Y
	MODE_INDIRECT    = AddressingMode(7)  // (ind)
	MODE_INDIRECT_X  = AddressingMode(8)  // (ind,X)
	MODE_INDIRECT_Y  = AddressingMode(9)  // (ind),Y
	MODE_ACCUMULATOR = AddressingMode(10) // A
	MODE_NONE        = AddressingMode(11) // impl
)

// Opcode describes a single cataloged instruction encoding.
type Opcode struct {
	Code        uint8          // Opcode byte.
	Instruction string         // Mnemonic.
	Length      int            // Encoded length, opcode byte included.
	Cycles      int            // Cycle cost. Informational only.
	Mode        AddressingMode // Operand addressing mode.
}

// String returns the mnemonic, mode and opcode byte.
func (op *Opcode) String() string {
	return fmt.Sprintf("%v %v (0x%02X)", op.Instruction, op.Mode, op.Code)
}

// opcodeList is the supported instruction set. Cycle counts for page
// crossing penalties are not modeled.
var opcodeList = []Opcode{
	{0x00, "BRK", 1, 7, MODE_NONE},

	{0x69, "ADC", 2, 2, MODE_IMMEDIATE},
	{0x65, "ADC", 2, 3, MODE_ZEROPAGE},
	{0x75, "ADC", 2, 4, MODE_ZEROPAGE_X},
	{0x6D, "ADC", 3, 4, MODE_ABSOLUTE},
	{0x7D, "ADC", 3, 4, MODE_ABSOLUTE_X},
	{0x79, "ADC", 3, 4, MODE_ABSOLUTE_Y},
	{0x61, "ADC", 2, 6, MODE_INDIRECT_X},
	{0x71, "ADC", 2, 5, MODE_INDIRECT_Y},

	{0x29, "AND", 2, 2, MODE_IMMEDIATE},
	{0x25, "AND", 2, 3, MODE_ZEROPAGE},
	{0x35, "AND", 2, 4, MODE_ZEROPAGE_X},
	{0x2D, "AND", 3, 4, MODE_ABSOLUTE},
	{0x3D, "AND", 3, 4, MODE_ABSOLUTE_X},
	{0x39, "AND", 3, 4, MODE_ABSOLUTE_Y},
	{0x21, "AND", 2, 6, MODE_INDIRECT_X},
	{0x31, "AND", 2, 5, MODE_INDIRECT_Y},

	{0x0A, "ASL", 1, 2, MODE_ACCUMULATOR},
	{0x06, "ASL", 2, 5, MODE_ZEROPAGE},
	{0x16, "ASL", 2, 6, MODE_ZEROPAGE_X},
	{0x0E, "ASL", 3, 6, MODE_ABSOLUTE},
	{0x1E, "ASL", 3, 7, MODE_ABSOLUTE_X},

	{0xE8, "INX", 1, 2, MODE_NONE},

	{0xA9, "LDA", 2, 2, MODE_IMMEDIATE},
	{0xA5, "LDA", 2, 3, MODE_ZEROPAGE},
	{0xB5, "LDA", 2, 4, MODE_ZEROPAGE_X},
	{0xAD, "LDA", 3, 4, MODE_ABSOLUTE},
	{0xBD, "LDA", 3, 4, MODE_ABSOLUTE_X},
	{0xB9, "LDA", 3, 4, MODE_ABSOLUTE_Y},
	{0xA1, "LDA", 2, 6, MODE_INDIRECT_X},
	{0xB1, "LDA", 2, 5, MODE_INDIRECT_Y},

	{0xA2, "LDX", 2, 2, MODE_IMMEDIATE},
	{0xA6, "LDX", 2, 3, MODE_ZEROPAGE},
	{0xB6, "LDX", 2, 4, MODE_ZEROPAGE_Y},
	{0xAE, "LDX", 3, 4, MODE_ABSOLUTE},
	{0xBE, "LDX", 3, 4, MODE_ABSOLUTE_Y},

	{0xA0, "LDY", 2, 2, MODE_IMMEDIATE},
	{0xA4, "LDY", 2, 3, MODE_ZEROPAGE},
	{0xB4, "LDY", 2, 4, MODE_ZEROPAGE_X},
	{0xAC, "LDY", 3, 4, MODE_ABSOLUTE},
	{0xBC, "LDY", 3, 4, MODE_ABSOLUTE_X},

	{0x85, "STA", 2, 3, MODE_ZEROPAGE},
	{0x95, "STA", 2, 4, MODE_ZEROPAGE_X},
	{0x8D, "STA", 3, 4, MODE_ABSOLUTE},
	{0x9D, "STA", 3, 5, MODE_ABSOLUTE_X},
	{0x99, "STA", 3, 5, MODE_ABSOLUTE_Y},
	{0x81, "STA", 2, 6, MODE_INDIRECT_X},
	{0x91, "STA", 2, 6, MODE_INDIRECT_Y},

	{0xAA, "TAX", 1, 2, MODE_NONE},
}

var opcodeMap = map[uint8]*Opcode{}

// opcodeByName maps a mnemonic to its encodings per addressing mode,
// for the assembler.
var opcodeByName = map[string]map[AddressingMode]*Opcode{}

func init() {
	for n := range opcodeList {
		op := &opcodeList[n]

		_, ok := opcodeMap[op.Code]
		if ok {
			// A duplicate key would silently shadow an earlier
			// descriptor; refuse to start instead.
			panic(fmt.Sprintf("duplicate opcode 0x%02X in catalog", op.Code))
		}
		opcodeMap[op.Code] = op

		modes := opcodeByName[op.Instruction]
		if modes == nil {
			modes = make(map[AddressingMode]*Opcode, 8)
			opcodeByName[op.Instruction] = modes
		}
		if modes[op.Mode] != nil {
			panic(fmt.Sprintf("duplicate %v mode %v in catalog", op.Instruction, op.Mode))
		}
		modes[op.Mode] = op
	}
}

// Lookup returns the descriptor for an opcode byte.
func Lookup(code uint8) (op *Opcode, ok bool) {
	op, ok = opcodeMap[code]
	return
}
