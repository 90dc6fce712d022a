package alu

import (
	"fmt"

	"github.com/grewek/gboyrust/pkg/bits"
)

// And8 performs a bitwise AND of a and b.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func And8(a, b uint8) (uint8, Flags) {
	result := a & b
	return result, Flags{Zero: result == 0, HalfCarry: true}
}

// Or8 performs a bitwise OR of a and b.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Or8(a, b uint8) (uint8, Flags) {
	result := a | b
	return result, Flags{Zero: result == 0}
}

// Xor8 performs a bitwise XOR of a and b.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Xor8(a, b uint8) (uint8, Flags) {
	result := a ^ b
	return result, Flags{Zero: result == 0}
}

// Complement flips every bit of n.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func Complement(n uint8, f Flags) (uint8, Flags) {
	return ^n, Flags{Zero: f.Zero, Subtract: true, HalfCarry: true, Carry: f.Carry}
}

// Bit tests bit index of n.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
//
// Bit panics if index is not in the range 0-7, which can only happen
// through a malformed instruction table.
func Bit(n, index uint8, f Flags) Flags {
	mustBitIndex(index)
	return Flags{Zero: !bits.Test(n, index), HalfCarry: true, Carry: f.Carry}
}

// SetBit sets bit index of n. Flags are not affected.
//
//	SET b, n
func SetBit(n, index uint8) uint8 {
	mustBitIndex(index)
	return bits.Set(n, index)
}

// ResetBit clears bit index of n. Flags are not affected.
//
//	RES b, n
func ResetBit(n, index uint8) uint8 {
	mustBitIndex(index)
	return bits.Reset(n, index)
}

// InvalidBitIndexError is the panic value raised when a bit
// operation is given an index outside of 0-7.
type InvalidBitIndexError uint8

func (e InvalidBitIndexError) Error() string {
	return fmt.Sprintf("alu: invalid bit index %d", uint8(e))
}

func mustBitIndex(index uint8) {
	if index > 7 {
		panic(InvalidBitIndexError(index))
	}
}
