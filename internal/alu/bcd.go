package alu

// DecimalAdjust corrects a, the result of a previous binary addition
// or subtraction of two packed-BCD values, back into packed BCD.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the correction carried, otherwise not affected.
func DecimalAdjust(a uint8, f Flags) (uint8, Flags) {
	var correction uint8
	carry := f.Carry

	if f.HalfCarry || !f.Subtract && a&0xF > 0x9 {
		correction |= 0x06
	}
	if f.Carry || !f.Subtract && a > 0x99 {
		correction |= 0x60
		carry = true
	}

	if f.Subtract {
		a -= correction
	} else {
		a += correction
	}

	return a, Flags{Zero: a == 0, Subtract: f.Subtract, Carry: carry}
}

// SetCarry sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func SetCarry(f Flags) Flags {
	return Flags{Zero: f.Zero, Carry: true}
}

// ComplementCarry inverts the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func ComplementCarry(f Flags) Flags {
	return Flags{Zero: f.Zero, Carry: !f.Carry}
}
