// Package interrupts implements the interrupt sources of the Game Boy.
//
// The request (types.IF) and enable (types.IE) registers live in
// memory, so every operation here works on the bus they are mapped to.
// When an interrupt is both requested and enabled, and the CPU has IME
// set, the CPU pushes PC and jumps to the vector of the source, and the
// corresponding bit in the request register is cleared.
package interrupts

import (
	"github.com/grewek/gboyrust/internal/types"
)

// Bus is the memory holding the types.IF and types.IE registers.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Source identifies one of the five interrupt sources. Sources
// are ordered by priority, with VBlank serviced first.
type Source uint8

const (
	// VBlank is requested every time the PPU enters VBlank.
	VBlank Source = iota
	// LCD is requested by the LCD STAT register, when certain
	// conditions are met.
	LCD
	// Timer is requested when the timer overflows
	// (types.TIMA > 0xFF).
	Timer
	// Serial is requested when a serial transfer is completed.
	Serial
	// Joypad is requested when any of the selected buttons go
	// from high to low.
	Joypad
)

// mask covers the five bits of types.IF and types.IE in use.
const mask = 0x1F

var sourceNames = [5]string{"VBlank", "LCD", "Timer", "Serial", "Joypad"}

func (s Source) String() string {
	if s > Joypad {
		return "Unknown"
	}
	return sourceNames[s]
}

// Flag returns the bit of the source in types.IF and types.IE.
func (s Source) Flag() uint8 {
	return types.Bit0 << s
}

// Vector returns the address the CPU jumps to when servicing
// the source.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

// Pending returns the highest priority source that is both requested
// and enabled. IME is not taken into account.
func Pending(bus Bus) (Source, bool) {
	pending := bus.Read(types.IF) & bus.Read(types.IE) & mask
	if pending == 0 {
		return 0, false
	}
	for s := VBlank; s <= Joypad; s++ {
		if pending&s.Flag() != 0 {
			return s, true
		}
	}
	return 0, false
}

// Request requests the source, by setting its bit in types.IF.
func Request(bus Bus, s Source) {
	bus.Write(types.IF, bus.Read(types.IF)|s.Flag())
}

// Acknowledge clears the request for the source in types.IF.
func Acknowledge(bus Bus, s Source) {
	bus.Write(types.IF, bus.Read(types.IF)&^s.Flag())
}
