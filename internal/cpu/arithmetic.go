package cpu

import (
	"fmt"

	"github.com/grewek/gboyrust/internal/alu"
)

// aluOperation is an 8-bit operation on the accumulator.
type aluOperation struct {
	name string
	fn   func(c *CPU, value uint8)
}

// aluOperations are ordered by the 3-bit operation field of
// opcodes 0x80-0xBF and their immediate forms.
var aluOperations = [8]aluOperation{
	{"ADD A,", func(c *CPU, value uint8) {
		result, f := alu.Add8(c.Read8(A), value)
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"ADC A,", func(c *CPU, value uint8) {
		result, f := alu.Adc8(c.Read8(A), value, c.isFlagSet(alu.FlagCarry))
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"SUB", func(c *CPU, value uint8) {
		result, f := alu.Sub8(c.Read8(A), value)
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"SBC A,", func(c *CPU, value uint8) {
		result, f := alu.Sbc8(c.Read8(A), value, c.isFlagSet(alu.FlagCarry))
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"AND", func(c *CPU, value uint8) {
		result, f := alu.And8(c.Read8(A), value)
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"XOR", func(c *CPU, value uint8) {
		result, f := alu.Xor8(c.Read8(A), value)
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"OR", func(c *CPU, value uint8) {
		result, f := alu.Or8(c.Read8(A), value)
		c.Write8(A, result)
		c.setFlags(f)
	}},
	{"CP", func(c *CPU, value uint8) {
		c.setFlags(alu.Compare8(c.Read8(A), value))
	}},
}

func init() {
	for op := uint8(0); op < 8; op++ {
		operation := aluOperations[op]

		// OP A, r
		for index := uint8(0); index < 8; index++ {
			index := index
			DefineInstruction(0x80|op<<3|index, fmt.Sprintf("%s %s", operation.name, operandNames[index]), func(c *CPU, _ []byte) {
				operation.fn(c, c.readOperand8(index))
			})
		}

		// OP A, d8
		DefineInstruction(0xC6|op<<3, fmt.Sprintf("%s d8", operation.name), func(c *CPU, operands []byte) {
			operation.fn(c, operands[0])
		}, Length(2))
	}

	// INC r / DEC r
	for index := uint8(0); index < 8; index++ {
		index := index
		DefineInstruction(index<<3|0x04, fmt.Sprintf("INC %s", operandNames[index]), func(c *CPU, _ []byte) {
			result, f := alu.Inc8(c.readOperand8(index), c.Flags())
			c.writeOperand8(index, result)
			c.setFlags(f)
		})
		DefineInstruction(index<<3|0x05, fmt.Sprintf("DEC %s", operandNames[index]), func(c *CPU, _ []byte) {
			result, f := alu.Dec8(c.readOperand8(index), c.Flags())
			c.writeOperand8(index, result)
			c.setFlags(f)
		})
	}

	// INC rr / DEC rr / ADD HL, rr, none of which affect the zero flag
	for index := uint8(0); index < 4; index++ {
		index := index
		DefineInstruction(index<<4|0x03, fmt.Sprintf("INC %s", pairNames16[index]), func(c *CPU, _ []byte) {
			c.writePair(index, c.readPair(index)+1)
		})
		DefineInstruction(index<<4|0x0B, fmt.Sprintf("DEC %s", pairNames16[index]), func(c *CPU, _ []byte) {
			c.writePair(index, c.readPair(index)-1)
		})
		DefineInstruction(index<<4|0x09, fmt.Sprintf("ADD HL, %s", pairNames16[index]), func(c *CPU, _ []byte) {
			result, f := alu.Add16(c.Read16(HL), c.readPair(index), c.Flags())
			c.Write16(HL, result)
			c.setFlags(f)
		})
	}

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, operands []byte) {
		result, f := alu.AddSigned16(c.SP, operands[0])
		c.SP = result
		c.setFlags(f)
	}, Length(2))

	DefineInstruction(0x27, "DAA", func(c *CPU, _ []byte) {
		result, f := alu.DecimalAdjust(c.Read8(A), c.Flags())
		c.Write8(A, result)
		c.setFlags(f)
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []byte) {
		result, f := alu.Complement(c.Read8(A), c.Flags())
		c.Write8(A, result)
		c.setFlags(f)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []byte) {
		c.setFlags(alu.SetCarry(c.Flags()))
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []byte) {
		c.setFlags(alu.ComplementCarry(c.Flags()))
	})
}
