package alu

// Add8 adds b to a.
//
//	ADD A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add8(a, b uint8) (uint8, Flags) {
	return Adc8(a, b, false)
}

// Adc8 adds b and the carry to a.
//
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Adc8(a, b uint8, carry bool) (uint8, Flags) {
	c := carryIn(carry)
	sum := uint16(a) + uint16(b) + uint16(c)
	half := a&0xF + b&0xF + c

	return uint8(sum), Flags{
		Zero:      uint8(sum) == 0,
		HalfCarry: half > 0xF,
		Carry:     sum > 0xFF,
	}
}

// Sub8 subtracts b from a.
//
//	SUB A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sub8(a, b uint8) (uint8, Flags) {
	return Sbc8(a, b, false)
}

// Sbc8 subtracts b and the carry from a.
//
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Sbc8(a, b uint8, carry bool) (uint8, Flags) {
	c := int16(carryIn(carry))
	diff := int16(a) - int16(b) - c
	half := int16(a&0xF) - int16(b&0xF) - c

	return uint8(diff), Flags{
		Zero:      uint8(diff) == 0,
		Subtract:  true,
		HalfCarry: half < 0,
		Carry:     diff < 0,
	}
}

// Compare8 compares b to a by subtracting without storing the result.
//
//	CP n
//
// Flags affected:
//
//	Z - Set if a == b.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if a < b.
func Compare8(a, b uint8) Flags {
	_, f := Sub8(a, b)
	return f
}

// Inc8 increments n by 1.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func Inc8(n uint8, f Flags) (uint8, Flags) {
	result := n + 1
	return result, Flags{
		Zero:      result == 0,
		HalfCarry: n&0xF == 0xF,
		Carry:     f.Carry,
	}
}

// Dec8 decrements n by 1.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func Dec8(n uint8, f Flags) (uint8, Flags) {
	result := n - 1
	return result, Flags{
		Zero:      result == 0,
		Subtract:  true,
		HalfCarry: n&0xF == 0,
		Carry:     f.Carry,
	}
}

// Add16 adds two words.
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func Add16(a, b uint16, f Flags) (uint16, Flags) {
	sum := uint32(a) + uint32(b)
	return uint16(sum), Flags{
		Zero:      f.Zero,
		HalfCarry: a&0xFFF+b&0xFFF > 0xFFF,
		Carry:     sum > 0xFFFF,
	}
}

// AddSigned16 adds the signed offset e to the word a. The carries
// are taken from the unsigned addition of the low byte of a and e.
//
//	ADD SP, e
//	LD HL, SP+e
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func AddSigned16(a uint16, e uint8) (uint16, Flags) {
	result := uint16(int32(a) + int32(int8(e)))
	return result, Flags{
		HalfCarry: a&0xF+uint16(e&0xF) > 0xF,
		Carry:     a&0xFF+uint16(e) > 0xFF,
	}
}
