// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/grewek/gboyrust/internal/types"
)

// divisors holds the number of t-cycles per TIMA increment,
// indexed by the lower two bits of types.TAC.
//
//	00 = 4096 Hz
//	01 = 262144 Hz
//	10 = 65536 Hz
//	11 = 16384 Hz
var divisors = [4]uint16{1024, 16, 64, 256}

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	div     uint16 // types.DIV is the upper byte
	counter uint16 // t-cycles accumulated towards the next TIMA increment

	tima uint8
	tma  uint8
	tac  uint8
}

// NewController returns a new timer controller.
func NewController() *Controller {
	return &Controller{}
}

// Enabled returns true if TIMA is counting.
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// Read returns the value of the timer register at the given address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.div >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		// the upper 5 bits are always set
		return c.tac | 0xF8
	}
	return 0xFF
}

// Write writes the value to the timer register at the given address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// any write resets the divider
		c.div = 0
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value & 0x07
	}
}

// Step advances the timer by the given number of t-cycles, and
// returns true if TIMA overflowed, in which case it has been
// reloaded from TMA and a timer interrupt should be requested.
func (c *Controller) Step(cycles uint16) bool {
	c.div += cycles
	if !c.Enabled() {
		return false
	}

	overflow := false
	divisor := divisors[c.tac&0x03]
	c.counter += cycles
	for c.counter >= divisor {
		c.counter -= divisor
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			overflow = true
		}
	}
	return overflow
}

var _ types.Stater = (*Controller)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - div (uint16)
//   - counter (uint16)
//   - tima (uint8)
//   - tma (uint8)
//   - tac (uint8)
func (c *Controller) Load(s *types.State) {
	c.div = s.Read16()
	c.counter = s.Read16()
	c.tima = s.Read8()
	c.tma = s.Read8()
	c.tac = s.Read8()
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - div (uint16)
//   - counter (uint16)
//   - tima (uint8)
//   - tma (uint8)
//   - tac (uint8)
func (c *Controller) Save(s *types.State) {
	s.Write16(c.div)
	s.Write16(c.counter)
	s.Write8(c.tima)
	s.Write8(c.tma)
	s.Write8(c.tac)
}
