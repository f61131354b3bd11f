package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperandAddress(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		mode  AddressingMode
		setup func(cpu *Cpu)
		addr  uint16
	}){
		{"immediate", MODE_IMMEDIATE,
			func(cpu *Cpu) {},
			0x8000},
		{"zeropage", MODE_ZEROPAGE,
			func(cpu *Cpu) { cpu.Memory.Write(0x8000, 0x10) },
			0x0010},
		{"zeropage_x", MODE_ZEROPAGE_X,
			func(cpu *Cpu) {
				cpu.Memory.Write(0x8000, 0x80)
				cpu.X = 0x0F
			},
			0x008F},
		{"zeropage_x_wrap", MODE_ZEROPAGE_X,
			func(cpu *Cpu) {
				cpu.Memory.Write(0x8000, 0xFF)
				cpu.X = 0x02
			},
			0x0001},
		{"zeropage_y", MODE_ZEROPAGE_Y,
			func(cpu *Cpu) {
				cpu.Memory.Write(0x8000, 0x80)
				cpu.Y = 0x10
			},
			0x0090},
		{"absolute", MODE_ABSOLUTE,
			func(cpu *Cpu) { cpu.Memory.WriteWord(0x8000, 0x1234) },
			0x1234},
		{"absolute_x", MODE_ABSOLUTE_X,
			func(cpu *Cpu) {
				cpu.Memory.WriteWord(0x8000, 0x1000)
				cpu.X = 0xFF
			},
			0x10FF},
		{"absolute_x_wrap", MODE_ABSOLUTE_X,
			func(cpu *Cpu) {
				cpu.Memory.WriteWord(0x8000, 0xFFFF)
				cpu.X = 0x02
			},
			0x0001},
		{"absolute_y", MODE_ABSOLUTE_Y,
			func(cpu *Cpu) {
				cpu.Memory.WriteWord(0x8000, 0x2000)
				cpu.Y = 0x10
			},
			0x2010},
		{"indirect", MODE_INDIRECT,
			func(cpu *Cpu) {
				cpu.Memory.WriteWord(0x8000, 0x0120)
				cpu.Memory.WriteWord(0x0120, 0xBEEF)
			},
			0xBEEF},
		{"indirect_x", MODE_INDIRECT_X,
			func(cpu *Cpu) {
				cpu.Memory.Write(0x8000, 0xF0)
				cpu.X = 0x20
				cpu.Memory.WriteWord(0x0010, 0x1234)
			},
			0x1234},
		{"indirect_y", MODE_INDIRECT_Y,
			func(cpu *Cpu) {
				cpu.Memory.Write(0x8000, 0x40)
				cpu.Y = 0x02
				cpu.Memory.WriteWord(0x0042, 0x5678)
			},
			0x5678},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Pc = 0x8000
		entry.setup(cpu)

		addr, err := cpu.OperandAddress(entry.mode)
		assert.NoError(err, entry.name)
		assert.Equal(entry.addr, addr, entry.name)
	}
}

func TestOperandAddress_Invalid(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	_, err := cpu.OperandAddress(MODE_ACCUMULATOR)
	assert.ErrorIs(err, ErrModeInvalid(MODE_ACCUMULATOR))

	_, err = cpu.OperandAddress(MODE_NONE)
	assert.ErrorIs(err, ErrModeInvalid(MODE_NONE))
}

func TestOperandAddress_NoWrites(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Pc = 0x8000
	cpu.Memory.Write(0x8000, 0x40)
	cpu.Memory.WriteWord(0x0040, 0x1234)

	before := cpu.Memory
	_, err := cpu.OperandAddress(MODE_INDIRECT_X)
	assert.NoError(err)
	assert.Equal(before, cpu.Memory)
}
