package cpu

import (
	"fmt"

	"github.com/grewek/gboyrust/internal/types"
)

// Instruction represents a single instruction of the CPU.
type Instruction struct {
	name         string            // name of the instruction
	length       uint8             // length in bytes, including the opcode
	cycles       uint8             // m-cycles taken when no branch is taken
	branchCycles uint8             // m-cycles taken when a branch is taken
	fn           func(*CPU, []byte) // fn called with the operands of the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the length of the instruction in bytes,
// including the opcode (and prefix, if any).
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the number of m-cycles the instruction takes
// when it does not branch.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// BranchCycles returns the number of m-cycles the instruction takes
// when it branches. It equals Cycles for instructions that never branch.
func (i Instruction) BranchCycles() uint8 {
	return i.branchCycles
}

// Defined returns false for opcodes that do not exist on the CPU.
func (i Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionOpt configures an Instruction when it is defined.
type InstructionOpt func(*Instruction)

// Length sets the length of the instruction in bytes.
func Length(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = n
	}
}

// Branch sets the number of m-cycles taken when the instruction branches.
func Branch(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.branchCycles = n
	}
}

var (
	// InstructionSet holds the 256 unprefixed instructions.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the 256 instructions prefixed by 0xCB.
	InstructionSetCB [256]Instruction
)

// prefixCB is the opcode that selects InstructionSetCB.
const prefixCB = 0xCB

// DefineInstruction defines the instruction for the given opcode in the
// InstructionSet. The cycles default to those of cycleTable.
func DefineInstruction(opcode uint8, name string, fn func(*CPU, []byte), opts ...InstructionOpt) {
	InstructionSet[opcode] = newInstruction(name, cycleTable[opcode], fn, opts...)
}

// DefineInstructionCB defines the instruction for the given opcode in
// the InstructionSetCB.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU, []byte), opts ...InstructionOpt) {
	cycles := uint8(2)
	if opcode&0x7 == hlOperand {
		// BIT b, (HL) only reads memory
		if opcode>>6 == 1 {
			cycles = 3
		} else {
			cycles = 4
		}
	}
	InstructionSetCB[opcode] = newInstruction(name, cycles, fn, append([]InstructionOpt{Length(2)}, opts...)...)
}

func newInstruction(name string, cycles uint8, fn func(*CPU, []byte), opts ...InstructionOpt) Instruction {
	i := Instruction{
		name:   name,
		length: 1,
		cycles: cycles,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&i)
	}
	if i.branchCycles == 0 {
		i.branchCycles = i.cycles
	}
	if i.length < 1 || i.length > 3 {
		panic(fmt.Sprintf("cpu: invalid length %d for %s", i.length, name))
	}
	return i
}

// cycleTable holds the m-cycles taken by each unprefixed opcode when
// no branch is taken.
var cycleTable = [256]uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 1, 3, 6, 2, 4,
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
}

// illegalOpcodes are the opcodes with no instruction on the CPU.
var illegalOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []byte) {})
	DefineInstruction(0x10, "STOP", func(c *CPU, _ []byte) {
		// there is no joypad to wake from STOP, so it behaves as HALT
		// after resetting DIV
		c.writeByte(types.DIV, 0)
		c.mode = modeHalt
	}, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []byte) {
		if c.IME || !c.interruptsPending() {
			c.mode = modeHalt
		} else {
			// the byte after HALT is read twice
			c.mode = modeHaltBug
		}
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []byte) {
		c.IME = false
		c.imePending = false
	})
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []byte) {
		c.imePending = true
	})
}
