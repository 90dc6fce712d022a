package cpu

import (
	"fmt"

	"github.com/grewek/gboyrust/internal/alu"
)

// ldBB is LD B, B, which doubles as a software breakpoint in test ROMs.
const ldBB = 0x40

func init() {
	// LD r, r' / LD r, (HL) / LD (HL), r
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue // HALT
		}
		dst, src := uint8(opcode>>3)&7, uint8(opcode)&7
		DefineInstruction(uint8(opcode), fmt.Sprintf("LD %s, %s", operandNames[dst], operandNames[src]), func(c *CPU, _ []byte) {
			c.writeOperand8(dst, c.readOperand8(src))
		})
	}
	DefineInstruction(ldBB, "LD B, B", func(c *CPU, _ []byte) {
		if c.Debug {
			c.DebugBreakpoint = true
		}
	})

	// LD r, d8
	for index := uint8(0); index < 8; index++ {
		index := index
		DefineInstruction(index<<3|0x06, fmt.Sprintf("LD %s, d8", operandNames[index]), func(c *CPU, operands []byte) {
			c.writeOperand8(index, operands[0])
		}, Length(2))
	}

	// LD rr, d16
	for index := uint8(0); index < 4; index++ {
		index := index
		DefineInstruction(index<<4|0x01, fmt.Sprintf("LD %s, d16", pairNames16[index]), func(c *CPU, operands []byte) {
			c.writePair(index, immediate16(operands))
		}, Length(3))
	}

	// indirect loads through BC, DE and HL with post increment/decrement
	indirect := []struct {
		name    string
		address func(c *CPU) uint16
	}{
		{"(BC)", func(c *CPU) uint16 { return c.Read16(BC) }},
		{"(DE)", func(c *CPU) uint16 { return c.Read16(DE) }},
		{"(HL+)", func(c *CPU) uint16 {
			hl := c.Read16(HL)
			c.Write16(HL, hl+1)
			return hl
		}},
		{"(HL-)", func(c *CPU) uint16 {
			hl := c.Read16(HL)
			c.Write16(HL, hl-1)
			return hl
		}},
	}
	for i, ind := range indirect {
		address := ind.address
		DefineInstruction(uint8(i)<<4|0x02, fmt.Sprintf("LD %s, A", ind.name), func(c *CPU, _ []byte) {
			c.writeByte(address(c), c.Read8(A))
		})
		DefineInstruction(uint8(i)<<4|0x0A, fmt.Sprintf("LD A, %s", ind.name), func(c *CPU, _ []byte) {
			c.Write8(A, c.readByte(address(c)))
		})
	}

	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []byte) {
		address := immediate16(operands)
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	}, Length(3))

	// high memory loads
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []byte) {
		c.writeByte(0xFF00|uint16(operands[0]), c.Read8(A))
	}, Length(2))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []byte) {
		c.Write8(A, c.readByte(0xFF00|uint16(operands[0])))
	}, Length(2))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []byte) {
		c.writeByte(0xFF00|uint16(c.Read8(C)), c.Read8(A))
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []byte) {
		c.Write8(A, c.readByte(0xFF00|uint16(c.Read8(C))))
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []byte) {
		c.writeByte(immediate16(operands), c.Read8(A))
	}, Length(3))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []byte) {
		c.Write8(A, c.readByte(immediate16(operands)))
	}, Length(3))

	// stack pointer loads
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, operands []byte) {
		result, f := alu.AddSigned16(c.SP, operands[0])
		c.Write16(HL, result)
		c.setFlags(f)
	}, Length(2))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []byte) {
		c.SP = c.Read16(HL)
	})

	// PUSH rr / POP rr
	for i, pair := range []Pair{BC, DE, HL, AF} {
		pair := pair
		DefineInstruction(uint8(i)<<4|0xC5, fmt.Sprintf("PUSH %s", pair), func(c *CPU, _ []byte) {
			c.pushStack(c.Read16(pair))
		})
		DefineInstruction(uint8(i)<<4|0xC1, fmt.Sprintf("POP %s", pair), func(c *CPU, _ []byte) {
			// POP AF drops the lower nibble of F in Write8
			c.Write16(pair, c.popStack())
		})
	}
}
