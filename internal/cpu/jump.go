package cpu

import (
	"fmt"

	"github.com/grewek/gboyrust/internal/alu"
)

// condition is a branch condition encoded in bits 4-3 of an opcode.
type condition uint8

const (
	conditionNZ condition = iota
	conditionZ
	conditionNC
	conditionC
)

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func (cond condition) String() string {
	return conditionNames[cond&3]
}

// test returns true if the condition holds for the current flags.
func (c *CPU) test(cond condition) bool {
	switch cond {
	case conditionNZ:
		return !c.isFlagSet(alu.FlagZero)
	case conditionZ:
		return c.isFlagSet(alu.FlagZero)
	case conditionNC:
		return !c.isFlagSet(alu.FlagCarry)
	default:
		return c.isFlagSet(alu.FlagCarry)
	}
}

// jumpRelative adds the signed offset to PC.
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

// call pushes PC onto the stack and jumps to the given address.
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []byte) {
		c.jumpRelative(operands[0])
	}, Length(2))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []byte) {
		c.PC = immediate16(operands)
	}, Length(3))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ []byte) {
		c.PC = c.Read16(HL)
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []byte) {
		c.call(immediate16(operands))
	}, Length(3))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []byte) {
		c.PC = c.popStack()
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []byte) {
		c.PC = c.popStack()
		c.IME = true
	})

	for cond := condition(0); cond < 4; cond++ {
		cond := cond
		field := uint8(cond) << 3

		DefineInstruction(0x20|field, fmt.Sprintf("JR %s, r8", cond), func(c *CPU, operands []byte) {
			if c.test(cond) {
				c.jumpRelative(operands[0])
				c.branched = true
			}
		}, Length(2), Branch(3))
		DefineInstruction(0xC2|field, fmt.Sprintf("JP %s, a16", cond), func(c *CPU, operands []byte) {
			if c.test(cond) {
				c.PC = immediate16(operands)
				c.branched = true
			}
		}, Length(3), Branch(4))
		DefineInstruction(0xC4|field, fmt.Sprintf("CALL %s, a16", cond), func(c *CPU, operands []byte) {
			if c.test(cond) {
				c.call(immediate16(operands))
				c.branched = true
			}
		}, Length(3), Branch(6))
		DefineInstruction(0xC0|field, fmt.Sprintf("RET %s", cond), func(c *CPU, _ []byte) {
			if c.test(cond) {
				c.PC = c.popStack()
				c.branched = true
			}
		}, Branch(5))
	}

	// RST n
	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) << 3
		DefineInstruction(0xC7|n<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU, _ []byte) {
			c.call(vector)
		})
	}
}
