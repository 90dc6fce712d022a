package cpu

import (
	"github.com/grewek/gboyrust/internal/alu"
	"github.com/grewek/gboyrust/pkg/bits"
)

// Register identifies one of the eight 8-bit registers.
type Register uint8

const (
	B Register = iota
	C
	D
	E
	H
	L
	F
	A
)

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "F", "A"}

func (r Register) String() string {
	return registerNames[r&7]
}

// Pair identifies one of the four 16-bit register pairs. A pair
// is composed of a high and a low Register.
type Pair uint8

const (
	BC Pair = iota
	DE
	HL
	AF
)

var pairHalves = [4][2]Register{
	BC: {B, C},
	DE: {D, E},
	HL: {H, L},
	AF: {A, F},
}

var pairNames = [4]string{"BC", "DE", "HL", "AF"}

func (p Pair) String() string {
	return pairNames[p&3]
}

// High returns the Register holding the most significant byte of the pair.
func (p Pair) High() Register {
	return pairHalves[p&3][0]
}

// Low returns the Register holding the least significant byte of the pair.
func (p Pair) Low() Register {
	return pairHalves[p&3][1]
}

// Registers is the register file of the CPU. The lower nibble of
// F is always zero.
type Registers struct {
	r [8]uint8
}

// Read8 returns the value of the given Register.
func (r *Registers) Read8(reg Register) uint8 {
	return r.r[reg&7]
}

// Write8 sets the value of the given Register.
func (r *Registers) Write8(reg Register, value uint8) {
	if reg == F {
		value &= 0xF0
	}
	r.r[reg&7] = value
}

// Read16 returns the value of the given Pair, high byte first.
func (r *Registers) Read16(p Pair) uint16 {
	return bits.Join(r.Read8(p.High()), r.Read8(p.Low()))
}

// Write16 sets the value of the given Pair, high byte first.
func (r *Registers) Write16(p Pair, value uint16) {
	high, low := bits.Split(value)
	r.Write8(p.High(), high)
	r.Write8(p.Low(), low)
}

// Flags returns the flags currently held in F.
func (r *Registers) Flags() alu.Flags {
	return alu.FlagsFromByte(r.r[F])
}

// setFlags commits f to the F register.
func (r *Registers) setFlags(f alu.Flags) {
	r.r[F] = f.Byte()
}

// isFlagSet returns true if the given flag is set.
func (r *Registers) isFlagSet(flag alu.Flag) bool {
	return bits.Test(r.r[F], flag)
}
