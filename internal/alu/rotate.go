package alu

import (
	"github.com/grewek/gboyrust/internal/types"
	"github.com/grewek/gboyrust/pkg/bits"
)

// shifted builds the flags shared by every rotate and shift.
func shifted(result uint8, carry bool) Flags {
	return Flags{Zero: result == 0, Carry: carry}
}

// RotateLeftCircular rotates n left by 1 bit. The most significant
// bit is copied to both the carry flag and the least significant bit.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func RotateLeftCircular(n uint8) (uint8, Flags) {
	result := n<<1 | bits.Val(n, 7)
	return result, shifted(result, n&types.Bit7 != 0)
}

// RotateRightCircular rotates n right by 1 bit. The least significant
// bit is copied to both the carry flag and the most significant bit.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func RotateRightCircular(n uint8) (uint8, Flags) {
	result := n>>1 | n<<7
	return result, shifted(result, n&types.Bit0 != 0)
}

// RotateLeft rotates n left through the carry flag. The carry is
// copied to the least significant bit, and the most significant bit
// is copied to the carry.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func RotateLeft(n uint8, carry bool) (uint8, Flags) {
	result := n<<1 | carryIn(carry)
	return result, shifted(result, n&types.Bit7 != 0)
}

// RotateRight rotates n right through the carry flag. The carry is
// copied to the most significant bit, and the least significant bit
// is copied to the carry.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func RotateRight(n uint8, carry bool) (uint8, Flags) {
	result := n>>1 | carryIn(carry)<<7
	return result, shifted(result, n&types.Bit0 != 0)
}

// ShiftLeftArithmetic shifts n left by 1 bit into the carry.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func ShiftLeftArithmetic(n uint8) (uint8, Flags) {
	result := n << 1
	return result, shifted(result, n&types.Bit7 != 0)
}

// ShiftRightArithmetic shifts n right by 1 bit into the carry. The
// most significant bit does not change.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func ShiftRightArithmetic(n uint8) (uint8, Flags) {
	result := n>>1 | n&types.Bit7
	return result, shifted(result, n&types.Bit0 != 0)
}

// ShiftRightLogical shifts n right by 1 bit into the carry.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func ShiftRightLogical(n uint8) (uint8, Flags) {
	result := n >> 1
	return result, shifted(result, n&types.Bit0 != 0)
}

// Swap exchanges the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func Swap(n uint8) (uint8, Flags) {
	high, low := bits.Nibbles(n)
	result := low<<4 | high
	return result, shifted(result, false)
}
