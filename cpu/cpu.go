// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Status flag bits maintained by this core. The remaining status bits
// are reserved and never touched by flag updates.
const (
	FLAG_ZERO     = uint8(0b0000_0010)
	FLAG_NEGATIVE = uint8(0b1000_0000)
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":   fmt.Sprintf("%#x", MEMORY_SIZE),
	"PRG_START":     fmt.Sprintf("%#x", PRG_START),
	"RESET_VECTOR":  fmt.Sprintf("%#x", RESET_VECTOR),
	"FLAG_ZERO":     fmt.Sprintf("%#x", FLAG_ZERO),
	"FLAG_NEGATIVE": fmt.Sprintf("%#x", FLAG_NEGATIVE),
}

// Cpu is the 6502 execution engine: registers, status flags, program
// counter, and the memory it exclusively owns. A single Cpu is not
// safe for concurrent use; independent machines get independent Cpus.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A      uint8  // Accumulator.
	X      uint8  // Index register X.
	Y      uint8  // Index register Y.
	Status uint8  // Status flags.
	Pc     uint16 // Program counter.

	Memory Memory // 64 KiB address space.
}

// NewCpu creates a new CPU with zeroed registers and memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"a", "x", "y", "status", "pc"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "a":
			strval = fmt.Sprintf("%02X", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02X", cpu.X)
		case "y":
			strval = fmt.Sprintf("%02X", cpu.Y)
		case "status":
			strval = fmt.Sprintf("%08b", cpu.Status)
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	return
}

// Load copies a program into memory at PRG_START, records PRG_START in
// the reset vector, and points the program counter at it.
func (cpu *Cpu) Load(program []byte) (err error) {
	if len(program) > MEMORY_SIZE-int(PRG_START) {
		err = ErrProgramTooLarge
		return
	}

	copy(cpu.Memory.bytes[PRG_START:], program)
	cpu.Memory.WriteWord(RESET_VECTOR, PRG_START)
	cpu.Pc = PRG_START

	if cpu.Verbose {
		log.Printf("cpu: loaded %v bytes at 0x%04X", len(program), PRG_START)
	}

	return
}

// Reset clears the general-purpose registers and status flags, and
// reloads the program counter from the reset vector.
func (cpu *Cpu) Reset() {
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.Status = 0
	cpu.Pc = cpu.Memory.ReadWord(RESET_VECTOR)

	if cpu.Verbose {
		log.Printf("cpu: reset, pc 0x%04X", cpu.Pc)
	}
}

// Run loads a program, resets, and executes it to completion.
func (cpu *Cpu) Run(program []byte) (err error) {
	err = cpu.Load(program)
	if err != nil {
		return
	}
	cpu.Reset()

	return cpu.Execute()
}

// Step fetches, decodes and executes a single instruction. Returns
// done on BRK. A byte absent from the catalog, or cataloged without a
// dispatch arm, is a fatal error, never a no-op.
func (cpu *Cpu) Step() (done bool, err error) {
	code := cpu.Memory.Read(cpu.Pc)
	cpu.Pc++

	info, ok := Lookup(code)
	if !ok {
		err = ErrOpcodeUnknown(code)
		return
	}

	if cpu.Verbose {
		log.Printf("%04X: %v", cpu.Pc-1, info)
	}

	switch info.Instruction {
	case "BRK":
		done = true
		return
	case "INX":
		cpu.inx()
	case "LDA":
		err = cpu.lda(info.Mode)
	case "LDX":
		err = cpu.ldx(info.Mode)
	case "STA":
		err = cpu.sta(info.Mode)
	case "TAX":
		cpu.tax()
	default:
		err = &ErrOpcodeNotImplemented{Op: info}
	}
	if err != nil {
		return
	}

	// Skip the operand bytes; the opcode byte itself was consumed by
	// the fetch above.
	cpu.Pc += uint16(info.Length - 1)

	return
}

// Execute runs the fetch-decode-execute loop until BRK or a fatal
// error. Requires Load() and Reset() first.
func (cpu *Cpu) Execute() (err error) {
	var done bool
	for !done {
		done, err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}

// inx increments X with 8-bit wraparound, updating the flags from the
// new X.
func (cpu *Cpu) inx() {
	cpu.X++
	cpu.setStatusFlags(cpu.X)
}

// lda loads a byte from the operand address into the accumulator,
// updating the flags from the accumulator.
func (cpu *Cpu) lda(mode AddressingMode) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	cpu.A = cpu.Memory.Read(addr)
	cpu.setStatusFlags(cpu.A)

	return
}

// ldx loads a byte from the operand address into X, updating the flags
// from X.
func (cpu *Cpu) ldx(mode AddressingMode) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	cpu.X = cpu.Memory.Read(addr)
	cpu.setStatusFlags(cpu.X)

	return
}

// sta stores the accumulator at the operand address. Stores never
// affect the flags.
func (cpu *Cpu) sta(mode AddressingMode) (err error) {
	addr, err := cpu.OperandAddress(mode)
	if err != nil {
		return
	}
	cpu.Memory.Write(addr, cpu.A)

	return
}

// tax copies the accumulator into X, updating the flags from X.
func (cpu *Cpu) tax() {
	cpu.X = cpu.A
	cpu.setStatusFlags(cpu.X)
}

// setStatusFlags updates the zero and negative flags from an 8-bit
// result, leaving the reserved status bits alone.
func (cpu *Cpu) setStatusFlags(result uint8) {
	if result == 0 {
		cpu.Status |= FLAG_ZERO
	} else {
		cpu.Status &^= FLAG_ZERO
	}

	if result&FLAG_NEGATIVE != 0 {
		cpu.Status |= FLAG_NEGATIVE
	} else {
		cpu.Status &^= FLAG_NEGATIVE
	}
}
