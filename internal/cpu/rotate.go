package cpu

import (
	"fmt"

	"github.com/grewek/gboyrust/internal/alu"
)

// shiftOperations are ordered by bits 5-3 of CB opcodes 0x00-0x3F.
var shiftOperations = [8]struct {
	name string
	fn   func(c *CPU, value uint8) (uint8, alu.Flags)
}{
	{"RLC", func(_ *CPU, value uint8) (uint8, alu.Flags) { return alu.RotateLeftCircular(value) }},
	{"RRC", func(_ *CPU, value uint8) (uint8, alu.Flags) { return alu.RotateRightCircular(value) }},
	{"RL", func(c *CPU, value uint8) (uint8, alu.Flags) {
		return alu.RotateLeft(value, c.isFlagSet(alu.FlagCarry))
	}},
	{"RR", func(c *CPU, value uint8) (uint8, alu.Flags) {
		return alu.RotateRight(value, c.isFlagSet(alu.FlagCarry))
	}},
	{"SLA", func(_ *CPU, value uint8) (uint8, alu.Flags) { return alu.ShiftLeftArithmetic(value) }},
	{"SRA", func(_ *CPU, value uint8) (uint8, alu.Flags) { return alu.ShiftRightArithmetic(value) }},
	{"SWAP", func(_ *CPU, value uint8) (uint8, alu.Flags) { return alu.Swap(value) }},
	{"SRL", func(_ *CPU, value uint8) (uint8, alu.Flags) { return alu.ShiftRightLogical(value) }},
}

func init() {
	// the accumulator rotates always clear the zero flag
	for i, name := range []string{"RLCA", "RRCA", "RLA", "RRA"} {
		shift := shiftOperations[i].fn
		DefineInstruction(uint8(i)<<3|0x07, name, func(c *CPU, _ []byte) {
			result, f := shift(c, c.Read8(A))
			f.Zero = false
			c.Write8(A, result)
			c.setFlags(f)
		})
	}

	for op := uint8(0); op < 8; op++ {
		shift := shiftOperations[op]
		for index := uint8(0); index < 8; index++ {
			index := index
			DefineInstructionCB(op<<3|index, fmt.Sprintf("%s %s", shift.name, operandNames[index]), func(c *CPU, _ []byte) {
				result, f := shift.fn(c, c.readOperand8(index))
				c.writeOperand8(index, result)
				c.setFlags(f)
			})
		}
	}
}
