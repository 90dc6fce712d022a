// Package bits provides small helpers for manipulating the
// individual bits and bytes of 8 and 16-bit values.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Join composes a 16-bit word from its high and low bytes.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split decomposes a 16-bit word into its high and low bytes.
func Split(word uint16) (high, low uint8) {
	return uint8(word >> 8), uint8(word)
}

// Nibbles returns the high and low nibbles of b.
func Nibbles(b uint8) (high, low uint8) {
	return b >> 4, b & 0x0F
}
