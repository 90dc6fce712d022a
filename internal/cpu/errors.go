package cpu

import (
	"errors"
	"fmt"
)

// ErrUnknownInstruction is matched by every error returned for an
// opcode that has no instruction.
var ErrUnknownInstruction = errors.New("cpu: unknown instruction")

// UnknownInstructionError reports an opcode that has no instruction,
// and the address it was fetched from.
type UnknownInstructionError struct {
	Opcode   uint8
	PC       uint16
	Prefixed bool
}

func (e *UnknownInstructionError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unknown instruction CB %02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unknown instruction %02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnknownInstructionError) Unwrap() error {
	return ErrUnknownInstruction
}
