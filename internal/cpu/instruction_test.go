package cpu

import (
	"testing"

	"github.com/grewek/gboyrust/internal/alu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionSet(t *testing.T) {
	illegal := make(map[uint8]bool)
	for _, opcode := range illegalOpcodes {
		illegal[opcode] = true
	}

	for i, instruction := range InstructionSet {
		opcode := uint8(i)
		switch {
		case opcode == prefixCB || illegal[opcode]:
			if instruction.Defined() {
				t.Errorf("expected 0x%02X to be undefined, got %s", opcode, instruction.Name())
			}
		case !instruction.Defined():
			t.Errorf("expected 0x%02X to be defined", opcode)
		case instruction.Cycles() == 0:
			t.Errorf("expected 0x%02X (%s) to take cycles", opcode, instruction.Name())
		}
	}

	for i, instruction := range InstructionSetCB {
		if !instruction.Defined() {
			t.Errorf("expected CB 0x%02X to be defined", i)
		}
		if instruction.Length() != 2 {
			t.Errorf("expected CB 0x%02X to be 2 bytes, got %d", i, instruction.Length())
		}
	}
}

func TestInstructionNames(t *testing.T) {
	tests := []struct {
		opcode   uint8
		prefixed bool
		name     string
		length   uint8
	}{
		{0x00, false, "NOP", 1},
		{0x01, false, "LD BC, d16", 3},
		{0x31, false, "LD SP, d16", 3},
		{0x36, false, "LD (HL), d8", 2},
		{0x22, false, "LD (HL+), A", 1},
		{0x78, false, "LD A, B", 1},
		{0x86, false, "ADD A, (HL)", 1},
		{0x97, false, "SUB A", 1},
		{0xFE, false, "CP d8", 2},
		{0x20, false, "JR NZ, r8", 2},
		{0xDC, false, "CALL C, a16", 3},
		{0xFF, false, "RST 38H", 1},
		{0x11, true, "RL C", 2},
		{0x7C, true, "BIT 7, H", 2},
		{0xC6, true, "SET 0, (HL)", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction := InstructionSet[tt.opcode]
			if tt.prefixed {
				instruction = InstructionSetCB[tt.opcode]
			}
			assert.Equal(t, tt.name, instruction.Name())
			assert.Equal(t, tt.length, instruction.Length())
		})
	}
}

func TestTiming(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		setup   func(c *CPU)
		cycles  uint8
	}{
		{"NOP", []uint8{0x00}, nil, 4},
		{"LD BC, d16", []uint8{0x01, 0x34, 0x12}, nil, 12},
		{"LD (a16), SP", []uint8{0x08, 0x00, 0xC0}, nil, 20},
		{"JR taken", []uint8{0x18, 0x00}, nil, 12},
		{"JR NZ taken", []uint8{0x20, 0x00}, nil, 12},
		{"JR Z not taken", []uint8{0x28, 0x00}, nil, 8},
		{"JP NZ taken", []uint8{0xC2, 0x00, 0x02}, nil, 16},
		{"JP Z not taken", []uint8{0xCA, 0x00, 0x02}, nil, 12},
		{"CALL NZ taken", []uint8{0xC4, 0x00, 0x02}, nil, 24},
		{"CALL Z not taken", []uint8{0xCC, 0x00, 0x02}, nil, 12},
		{"RET NZ taken", []uint8{0xC0}, nil, 20},
		{"RET Z not taken", []uint8{0xC8}, nil, 8},
		{"RET", []uint8{0xC9}, nil, 16},
		{"RST", []uint8{0xEF}, nil, 16},
		{"PUSH BC", []uint8{0xC5}, nil, 16},
		{"POP BC", []uint8{0xC1}, nil, 12},
		{"INC (HL)", []uint8{0x34}, func(c *CPU) { c.Write16(HL, 0xC000) }, 12},
		{"ADD SP, r8", []uint8{0xE8, 0x01}, nil, 16},
		{"LD HL, SP+r8", []uint8{0xF8, 0x01}, nil, 12},
		{"RLC B", []uint8{0xCB, 0x00}, nil, 8},
		{"BIT 0, (HL)", []uint8{0xCB, 0x46}, nil, 12},
		{"SET 0, (HL)", []uint8{0xCB, 0xC6}, nil, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU(tt.program...)
			if tt.setup != nil {
				tt.setup(c)
			}
			cycles, err := c.Step(bus)
			require.NoError(t, err)
			if cycles != tt.cycles {
				t.Errorf("expected %d cycles, got %d", tt.cycles, cycles)
			}
			assert.Equal(t, int(tt.cycles), bus.ticks)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("LD (HL+), A", func(t *testing.T) {
		c, bus := newTestCPU(0x22, 0x3A)
		c.Write16(HL, 0xC000)
		c.Write8(A, 0x42)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x42), bus.mem[0xC000])
		assert.Equal(t, uint16(0xC001), c.Read16(HL))

		// LD A, (HL-)
		bus.mem[0xC001] = 0x24
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x24), c.Read8(A))
		assert.Equal(t, uint16(0xC000), c.Read16(HL))
	})

	t.Run("LD (a16), SP", func(t *testing.T) {
		c, bus := newTestCPU(0x08, 0x00, 0xC0)
		c.SP = 0xBEEF
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0xEF), bus.mem[0xC000])
		assert.Equal(t, uint8(0xBE), bus.mem[0xC001])
	})

	t.Run("LDH", func(t *testing.T) {
		c, bus := newTestCPU(0xE0, 0x80, 0xF2)
		c.Write8(A, 0x99)
		c.Write8(C, 0x80)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x99), bus.mem[0xFF80])

		c.Write8(A, 0)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x99), c.Read8(A))
	})

	t.Run("LD HL, SP+r8", func(t *testing.T) {
		c, bus := newTestCPU(0xF8, 0xFF)
		c.SP = 0x0001
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x0000), c.Read16(HL))
		assert.Equal(t, alu.Flags{HalfCarry: true, Carry: true}, c.Flags())
	})
}

func TestJump(t *testing.T) {
	t.Run("JR backwards", func(t *testing.T) {
		c, bus := newTestCPU(0x18, 0xFE)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x0100), c.PC)
	})

	t.Run("CALL and RET", func(t *testing.T) {
		c, bus := newTestCPU(0xCD, 0x00, 0x02)
		bus.mem[0x0200] = 0xC9
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x0200), c.PC)
		assert.Equal(t, uint8(0x01), bus.mem[0xFFFD])
		assert.Equal(t, uint8(0x03), bus.mem[0xFFFC])

		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x0103), c.PC)
		assert.Equal(t, uint16(0xFFFE), c.SP)
	})

	t.Run("conditions", func(t *testing.T) {
		tests := []struct {
			opcode uint8
			flags  alu.Flags
			taken  bool
		}{
			{0xC2, alu.Flags{}, true},
			{0xC2, alu.Flags{Zero: true}, false},
			{0xCA, alu.Flags{Zero: true}, true},
			{0xD2, alu.Flags{Carry: true}, false},
			{0xDA, alu.Flags{Carry: true}, true},
		}
		for _, tt := range tests {
			c, bus := newTestCPU(tt.opcode, 0x00, 0x30)
			c.setFlags(tt.flags)
			mustStep(t, c, bus, 1)
			if tt.taken {
				assert.Equal(t, uint16(0x3000), c.PC, InstructionSet[tt.opcode].Name())
			} else {
				assert.Equal(t, uint16(0x0103), c.PC, InstructionSet[tt.opcode].Name())
			}
		}
	})

	t.Run("RST", func(t *testing.T) {
		c, bus := newTestCPU(0xDF)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x0018), c.PC)
	})

	t.Run("JP HL", func(t *testing.T) {
		c, bus := newTestCPU(0xE9)
		c.Write16(HL, 0x4000)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x4000), c.PC)
	})
}

func TestArithmetic(t *testing.T) {
	t.Run("ADC A, d8", func(t *testing.T) {
		c, bus := newTestCPU(0xCE, 0x0F)
		c.setFlags(alu.Flags{Carry: true})
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x11), c.Read8(A))
		assert.Equal(t, alu.Flags{HalfCarry: true}, c.Flags())
	})

	t.Run("CP leaves A", func(t *testing.T) {
		c, bus := newTestCPU(0xFE, 0x01)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x01), c.Read8(A))
		assert.Equal(t, alu.Flags{Zero: true, Subtract: true}, c.Flags())
	})

	t.Run("DEC (HL) keeps carry", func(t *testing.T) {
		c, bus := newTestCPU(0x35)
		c.Write16(HL, 0xC000)
		bus.mem[0xC000] = 0x01
		c.setFlags(alu.Flags{Carry: true})
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x00), bus.mem[0xC000])
		assert.Equal(t, alu.Flags{Zero: true, Subtract: true, Carry: true}, c.Flags())
	})

	t.Run("INC rr leaves flags", func(t *testing.T) {
		c, bus := newTestCPU(0x03, 0x3B)
		c.Write16(BC, 0xFFFF)
		c.setFlags(alu.Flags{Zero: true})
		mustStep(t, c, bus, 2)
		assert.Equal(t, uint16(0x0000), c.Read16(BC))
		assert.Equal(t, uint16(0xFFFD), c.SP)
		assert.Equal(t, alu.Flags{Zero: true}, c.Flags())
	})

	t.Run("ADD HL, HL", func(t *testing.T) {
		c, bus := newTestCPU(0x29)
		c.Write16(HL, 0x8800)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint16(0x1000), c.Read16(HL))
		assert.Equal(t, alu.Flags{HalfCarry: true, Carry: true}, c.Flags())
	})

	t.Run("XOR A", func(t *testing.T) {
		c, bus := newTestCPU(0xAF)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0), c.Read8(A))
		assert.Equal(t, alu.Flags{Zero: true}, c.Flags())
	})
}

func TestRotateAccumulator(t *testing.T) {
	// RLCA on zero still clears Z
	c, bus := newTestCPU(0x07, 0xCB, 0x07)
	c.Write8(A, 0x00)
	c.setFlags(alu.Flags{Zero: true})
	mustStep(t, c, bus, 1)
	assert.Equal(t, alu.Flags{}, c.Flags())

	// RLC A sets it
	mustStep(t, c, bus, 1)
	assert.Equal(t, alu.Flags{Zero: true}, c.Flags())

	t.Run("RRA", func(t *testing.T) {
		c, bus := newTestCPU(0x1F)
		c.Write8(A, 0x01)
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0x00), c.Read8(A))
		assert.Equal(t, alu.Flags{Carry: true}, c.Flags())
	})
}

func TestPrefixed(t *testing.T) {
	t.Run("SWAP (HL)", func(t *testing.T) {
		c, bus := newTestCPU(0xCB, 0x36)
		c.Write16(HL, 0xC000)
		bus.mem[0xC000] = 0xAB
		mustStep(t, c, bus, 1)
		assert.Equal(t, uint8(0xBA), bus.mem[0xC000])
		assert.Equal(t, uint16(0x0102), c.PC)
	})

	t.Run("BIT keeps carry", func(t *testing.T) {
		c, bus := newTestCPU(0xCB, 0x7C)
		c.Write8(H, 0x7F)
		c.setFlags(alu.Flags{Carry: true, Subtract: true})
		mustStep(t, c, bus, 1)
		assert.Equal(t, alu.Flags{Zero: true, HalfCarry: true, Carry: true}, c.Flags())
	})

	t.Run("RES and SET", func(t *testing.T) {
		c, bus := newTestCPU(0xCB, 0xBF, 0xCB, 0xC0)
		c.Write8(A, 0xFF)
		mustStep(t, c, bus, 2)
		assert.Equal(t, uint8(0x7F), c.Read8(A))
		assert.Equal(t, uint8(0x01), c.Read8(B))
	})

	t.Run("unknown", func(t *testing.T) {
		saved := InstructionSetCB[0x00]
		defer func() { InstructionSetCB[0x00] = saved }()
		InstructionSetCB[0x00] = Instruction{}

		c, bus := newTestCPU(0xCB, 0x00)
		_, err := c.Step(bus)
		var unknown *UnknownInstructionError
		require.ErrorAs(t, err, &unknown)
		assert.True(t, unknown.Prefixed)
		assert.Equal(t, uint16(0x0100), unknown.PC)
	})
}

func TestPeek(t *testing.T) {
	c, bus := newTestCPU(0xC3, 0x50, 0x01)
	instruction, raw := c.Peek(bus, BootPC)
	assert.Equal(t, "JP a16", instruction.Name())
	assert.Equal(t, []byte{0xC3, 0x50, 0x01}, raw)
	assert.Equal(t, uint16(BootPC), c.PC)
}
