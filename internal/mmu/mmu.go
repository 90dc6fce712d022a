// Package mmu provides a memory management unit for the Game Boy. The
// MMU is a flat 64kB address space, with the timer registers and the
// serial port routed to their hardware.
package mmu

import (
	"io"

	"github.com/grewek/gboyrust/internal/interrupts"
	"github.com/grewek/gboyrust/internal/timer"
	"github.com/grewek/gboyrust/internal/types"
	"github.com/grewek/gboyrust/pkg/log"
)

const (
	// romEnd is the first address past the cartridge ROM.
	romEnd = 0x8000

	// lyVBlank is the value LY reads as. There is no PPU, so it is
	// held at the first line of VBlank for ROMs that wait on it.
	lyVBlank = 0x90
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
type MMU struct {
	// 64kB address space
	raw [65536]uint8

	// 0xFF04 - 0xFF07 - Timer
	Timer *timer.Controller

	// serial receives the bytes transmitted through types.SB
	serial io.Writer

	Log log.Logger
}

// NewMMU returns a new MMU.
func NewMMU() *MMU {
	return &MMU{
		Timer:  timer.NewController(),
		serial: io.Discard,
		Log:    log.NewNullLogger(),
	}
}

// SetSerial sets the writer that receives bytes sent over the serial port.
func (m *MMU) SetSerial(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	m.serial = w
}

// LoadROM copies the ROM into the start of the address space. ROMs
// larger than 32kB are truncated, as there is no bank controller.
func (m *MMU) LoadROM(rom []byte) {
	if len(rom) > romEnd {
		m.Log.Debugf("truncating %d byte ROM to %d bytes", len(rom), romEnd)
		rom = rom[:romEnd]
	}
	copy(m.raw[:], rom)
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address >= types.DIV && address <= types.TAC:
		return m.Timer.Read(address)
	case address == types.IF:
		// the upper 3 bits are always set
		return m.raw[address] | 0xE0
	case address == types.LY:
		return lyVBlank
	}
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < romEnd:
		// ROM, writes would go to a bank controller
		return
	case address >= types.DIV && address <= types.TAC:
		m.Timer.Write(address, value)
		return
	case address == types.SC:
		if value == types.SerialTransfer {
			m.transmit()
			return
		}
	case address == types.IF:
		value &= 0x1F
	}
	m.raw[address] = value
}

// Poke stores the value at the given address without any of the side
// effects of Write, including writes to ROM.
func (m *MMU) Poke(address uint16, value uint8) {
	m.raw[address] = value
}

// transmit sends the byte held in types.SB over the serial port.
func (m *MMU) transmit() {
	if _, err := m.serial.Write([]byte{m.raw[types.SB]}); err != nil {
		m.Log.Errorf("serial: %v", err)
	}
}

// Tick advances the timer by the given number of t-cycles, requesting
// a timer interrupt when it overflows.
func (m *MMU) Tick(cycles uint16) {
	if m.Timer.Step(cycles) {
		interrupts.Request(m, interrupts.Timer)
	}
}

var _ types.Stater = (*MMU)(nil)

// Load implements the types.Stater interface.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
	m.Timer.Load(s)
}

// Save implements the types.Stater interface.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
	m.Timer.Save(s)
}
