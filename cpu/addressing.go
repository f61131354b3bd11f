package cpu

// OperandAddress computes the effective memory address of the operand
// for an addressing mode, with the program counter at the first operand
// byte. Indexed zero-page arithmetic wraps at 8 bits and absolute
// indexing wraps at 16 bits, matching the chip; no page-boundary cases
// are modeled. Accumulator and implied modes have no operand address.
func (cpu *Cpu) OperandAddress(mode AddressingMode) (addr uint16, err error) {
	switch mode {
	case MODE_IMMEDIATE:
		// The operand byte itself sits at the program counter.
		addr = cpu.Pc
	case MODE_ZEROPAGE:
		addr = uint16(cpu.Memory.Read(cpu.Pc))
	case MODE_ZEROPAGE_X:
		addr = uint16(cpu.Memory.Read(cpu.Pc) + cpu.X)
	case MODE_ZEROPAGE_Y:
		addr = uint16(cpu.Memory.Read(cpu.Pc) + cpu.Y)
	case MODE_ABSOLUTE:
		addr = cpu.Memory.ReadWord(cpu.Pc)
	case MODE_ABSOLUTE_X:
		addr = cpu.Memory.ReadWord(cpu.Pc) + uint16(cpu.X)
	case MODE_ABSOLUTE_Y:
		addr = cpu.Memory.ReadWord(cpu.Pc) + uint16(cpu.Y)
	case MODE_INDIRECT:
		// Double dereference: the operand word points at the word
		// holding the final address.
		addr = cpu.Memory.ReadWord(cpu.Memory.ReadWord(cpu.Pc))
	case MODE_INDIRECT_X:
		ptr := uint16(cpu.Memory.Read(cpu.Pc) + cpu.X)
		addr = cpu.Memory.ReadWord(ptr)
	case MODE_INDIRECT_Y:
		ptr := uint16(cpu.Memory.Read(cpu.Pc) + cpu.Y)
		addr = cpu.Memory.ReadWord(ptr)
	default:
		err = ErrModeInvalid(mode)
	}

	return
}
