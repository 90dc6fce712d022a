// Package cpu implements the Sharp LR35902 CPU of the Game Boy.
//
// The CPU executes one instruction per call to Step against a Bus
// supplied by the caller. Instructions are looked up in two tables,
// InstructionSet and InstructionSetCB, which are built once at
// package initialisation.
package cpu

import (
	"github.com/grewek/gboyrust/internal/alu"
	"github.com/grewek/gboyrust/internal/interrupts"
	"github.com/grewek/gboyrust/internal/types"
	"github.com/grewek/gboyrust/pkg/bits"
)

const (
	// ClockSpeed is the clock speed of the CPU in t-cycles per second.
	ClockSpeed = 4194304

	// BootPC is the address execution starts from once the
	// boot ROM has handed over to the cartridge.
	BootPC = 0x0100
	// BootSP is the initial stack pointer.
	BootSP = 0xFFFE

	// interruptCycles is the number of m-cycles taken to
	// dispatch an interrupt.
	interruptCycles = 5
)

// Bus is the memory the CPU reads from and writes to.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Clocked is implemented by a Bus with hardware that needs to be
// advanced by the t-cycles taken by each instruction.
type Clocked interface {
	Tick(cycles uint16)
}

type mode = uint8

const (
	// modeNormal fetches and executes instructions.
	modeNormal mode = iota
	// modeHalt spins until an interrupt is pending.
	modeHalt
	// modeHaltBug executes the next instruction without
	// incrementing PC past its opcode.
	modeHaltBug
)

// CPU represents the Game Boy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, and the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable flag.
	IME bool

	// Debug enables the LD B, B software breakpoint, which sets
	// DebugBreakpoint when executed.
	Debug           bool
	DebugBreakpoint bool

	imePending bool
	mode       mode
	branched   bool
	fault      error

	bus      Bus
	operands [2]byte
}

// New returns a CPU in the state left behind by the boot ROM.
func New() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset returns the CPU to the state left behind by the boot ROM.
func (c *CPU) Reset() {
	c.Registers = Registers{}
	c.Write8(A, 0x01)
	c.PC = BootPC
	c.SP = BootSP
	c.IME = false
	c.imePending = false
	c.mode = modeNormal
	c.fault = nil
	c.DebugBreakpoint = false
}

// Halted returns true if the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.mode == modeHalt
}

// Err returns the error that stopped the CPU, if any.
func (c *CPU) Err() error {
	return c.fault
}

// Step executes a single instruction, or dispatches a pending interrupt,
// and returns the number of t-cycles it took. The bus is only used for
// the duration of the call.
//
// Once Step has returned an error, every subsequent call returns the
// same error without modifying any state.
func (c *CPU) Step(bus Bus) (uint8, error) {
	if c.fault != nil {
		return 0, c.fault
	}

	c.bus = bus
	defer func() { c.bus = nil }()

	cycles, err := c.step()
	if err != nil {
		return 0, err
	}

	if clk, ok := bus.(Clocked); ok {
		clk.Tick(uint16(cycles) * 4)
	}
	return cycles * 4, nil
}

// step returns the number of m-cycles taken.
func (c *CPU) step() (uint8, error) {
	if c.mode == modeHalt {
		if !c.interruptsPending() {
			return 1, nil
		}
		c.mode = modeNormal
	}

	if c.IME {
		if source, ok := interrupts.Pending(c.bus); ok {
			c.executeInterrupt(source)
			return interruptCycles, nil
		}
	}

	// EI takes effect after the instruction following it
	enableIME := c.imePending

	pc := c.PC
	opcode := c.readInstruction()
	prefixed := opcode == prefixCB
	var instruction Instruction
	if prefixed {
		opcode = c.readInstruction()
		instruction = InstructionSetCB[opcode]
	} else {
		instruction = InstructionSet[opcode]
	}

	if !instruction.Defined() {
		c.PC = pc
		c.fault = &UnknownInstructionError{Opcode: opcode, PC: pc, Prefixed: prefixed}
		return 0, c.fault
	}

	// fetch the immediate operands
	n := instruction.length - 1
	if prefixed {
		n--
	}
	operands := c.operands[:n]
	for i := range operands {
		operands[i] = c.readOperand()
	}

	c.branched = false
	instruction.fn(c, operands)

	if enableIME && c.imePending {
		c.IME = true
		c.imePending = false
	}

	if c.branched {
		return instruction.branchCycles, nil
	}
	return instruction.cycles, nil
}

// Peek returns the instruction at the given address without executing
// it, together with its raw bytes.
func (c *CPU) Peek(bus Bus, address uint16) (Instruction, []byte) {
	opcode := bus.Read(address)
	instruction := InstructionSet[opcode]
	if opcode == prefixCB {
		instruction = InstructionSetCB[bus.Read(address+1)]
	}
	length := instruction.length
	if length == 0 {
		length = 1
	}
	raw := make([]byte, length)
	for i := range raw {
		raw[i] = bus.Read(address + uint16(i))
	}
	return instruction, raw
}

// interruptsPending returns true if any interrupt is both
// requested and enabled, regardless of IME.
func (c *CPU) interruptsPending() bool {
	_, ok := interrupts.Pending(c.bus)
	return ok
}

// executeInterrupt pushes PC onto the stack and jumps to the vector of
// the given source, disabling further interrupts.
//
// When the interrupt arrives right after a HALT that triggered the halt
// bug (EI; HALT), the return address is the HALT itself.
func (c *CPU) executeInterrupt(source interrupts.Source) {
	returnPC := c.PC
	if c.mode == modeHaltBug {
		returnPC--
		c.mode = modeNormal
	}
	c.pushStack(returnPC)
	c.PC = source.Vector()
	c.IME = false
	c.imePending = false
	interrupts.Acknowledge(c.bus, source)
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.bus.Read(c.PC)
	if c.mode == modeHaltBug {
		// PC fails to increment for the byte following HALT
		c.mode = modeNormal
		return value
	}
	c.PC++
	return value
}

// readOperand reads the next operand from memory.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// pushStack pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	high, low := bits.Split(value)
	c.SP--
	c.writeByte(c.SP, high)
	c.SP--
	c.writeByte(c.SP, low)
}

// popStack pops a 16-bit value off the stack, low byte first.
func (c *CPU) popStack() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return bits.Join(high, low)
}

var _ types.Stater = (*CPU)(nil)

// Load loads the state of the CPU.
func (c *CPU) Load(s *types.State) {
	for r := B; r <= A; r++ {
		c.Write8(r, s.Read8())
	}
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.imePending = s.ReadBool()
	c.mode = s.Read8()
	c.fault = nil
}

// Save saves the state of the CPU.
func (c *CPU) Save(s *types.State) {
	for r := B; r <= A; r++ {
		s.Write8(c.Read8(r))
	}
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.imePending)
	s.Write8(c.mode)
}

// Snapshot is a copy of the CPU registers at a point in time.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	IME                    bool
	Halted                 bool
}

// Flags returns the flags held in F.
func (s Snapshot) Flags() alu.Flags {
	return alu.FlagsFromByte(s.F)
}

// Snapshot returns a copy of the registers.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.Read8(A), F: c.Read8(F),
		B: c.Read8(B), C: c.Read8(C),
		D: c.Read8(D), E: c.Read8(E),
		H: c.Read8(H), L: c.Read8(L),
		SP:     c.SP,
		PC:     c.PC,
		IME:    c.IME,
		Halted: c.Halted(),
	}
}
