// Package cpu implements the 6502 microprocessor core and assembler.
//
// The CPU consists of an 8-bit accumulator, X and Y index registers, a
// status flag byte, a 16-bit program counter, and the 64 KiB memory it
// owns exclusively. Programs load at PRG_START; the reset vector at
// RESET_VECTOR names the address execution resumes at after a reset.
//
// The assembler provides standard 6502 assembly syntax for the cataloged
// instruction set, supporting labels, equates, data directives, and
// compile-time expression evaluation.
package cpu
