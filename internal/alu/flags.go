// Package alu implements the arithmetic and logic unit of the
// Game Boy CPU.
//
// Every operation is a pure function over its operands and the
// incoming Flags, returning the result together with a freshly
// derived set of Flags. The caller decides whether to commit the
// returned Flags to the F register.
package alu

import "github.com/grewek/gboyrust/internal/types"

// Flag is the bit position of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags of the CPU.
//
//	Z - Zero       (bit 7)
//	N - Subtract   (bit 6)
//	H - Half Carry (bit 5)
//	C - Carry      (bit 4)
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte unpacks the flags held in the upper nibble of f.
// The lower nibble is ignored.
func FlagsFromByte(f uint8) Flags {
	return Flags{
		Zero:      f&types.Bit7 != 0,
		Subtract:  f&types.Bit6 != 0,
		HalfCarry: f&types.Bit5 != 0,
		Carry:     f&types.Bit4 != 0,
	}
}

// Byte packs the flags into the layout of the F register. The
// lower nibble is always zero.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b |= types.Bit7
	}
	if f.Subtract {
		b |= types.Bit6
	}
	if f.HalfCarry {
		b |= types.Bit5
	}
	if f.Carry {
		b |= types.Bit4
	}
	return b
}

// String returns the flags in the form "ZNHC", with a dash in
// place of every clear flag.
func (f Flags) String() string {
	s := []byte("----")
	if f.Zero {
		s[0] = 'Z'
	}
	if f.Subtract {
		s[1] = 'N'
	}
	if f.HalfCarry {
		s[2] = 'H'
	}
	if f.Carry {
		s[3] = 'C'
	}
	return string(s)
}

func carryIn(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}
