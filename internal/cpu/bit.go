package cpu

import (
	"fmt"

	"github.com/grewek/gboyrust/internal/alu"
)

func init() {
	for bit := uint8(0); bit < 8; bit++ {
		for index := uint8(0); index < 8; index++ {
			bit, index := bit, index
			operand := operandNames[index]

			DefineInstructionCB(0x40|bit<<3|index, fmt.Sprintf("BIT %d, %s", bit, operand), func(c *CPU, _ []byte) {
				c.setFlags(alu.Bit(c.readOperand8(index), bit, c.Flags()))
			})
			DefineInstructionCB(0x80|bit<<3|index, fmt.Sprintf("RES %d, %s", bit, operand), func(c *CPU, _ []byte) {
				c.writeOperand8(index, alu.ResetBit(c.readOperand8(index), bit))
			})
			DefineInstructionCB(0xC0|bit<<3|index, fmt.Sprintf("SET %d, %s", bit, operand), func(c *CPU, _ []byte) {
				c.writeOperand8(index, alu.SetBit(c.readOperand8(index), bit))
			})
		}
	}
}
