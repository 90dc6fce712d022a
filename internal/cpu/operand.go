package cpu

import "github.com/grewek/gboyrust/pkg/bits"

// hlOperand is the operand index of (HL) in the 3-bit register field
// of an opcode.
const hlOperand = 6

// operandRegisters maps the 3-bit register field of an opcode to a Register.
var operandRegisters = [8]Register{B, C, D, E, H, L, F, A}

// operandNames holds the names of the 3-bit register field, as they
// appear in mnemonics.
var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// readOperand8 returns the value of the operand at the given index,
// reading memory at HL for (HL).
func (c *CPU) readOperand8(index uint8) uint8 {
	if index == hlOperand {
		return c.readByte(c.Read16(HL))
	}
	return c.Read8(operandRegisters[index&7])
}

// writeOperand8 sets the operand at the given index.
func (c *CPU) writeOperand8(index, value uint8) {
	if index == hlOperand {
		c.writeByte(c.Read16(HL), value)
		return
	}
	c.Write8(operandRegisters[index&7], value)
}

// pairNames16 names the 2-bit pair field of an opcode, for
// the instructions that address SP as the fourth pair.
var pairNames16 = [4]string{"BC", "DE", "HL", "SP"}

// readPair returns the value of the 2-bit pair field, where 3 is SP.
func (c *CPU) readPair(index uint8) uint16 {
	if index == 3 {
		return c.SP
	}
	return c.Read16(Pair(index))
}

// writePair sets the value of the 2-bit pair field, where 3 is SP.
func (c *CPU) writePair(index uint8, value uint16) {
	if index == 3 {
		c.SP = value
		return
	}
	c.Write16(Pair(index), value)
}

// immediate16 returns the little endian 16-bit operand.
func immediate16(operands []byte) uint16 {
	return bits.Join(operands[1], operands[0])
}
