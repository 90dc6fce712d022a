package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to be transferred over
	// the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. Writing
	// SerialTransfer to it starts a transfer of SB, which the
	// memory routes to the debug serial output.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// it is a 16-bit counter incremented every cycle, but only the
	// upper 8 bits may be read. Writing any value resets it.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Input Clock Select (1024, 16, 64, 256 cycles)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// LY is the address of the LY hardware register, the current
	// scanline. There is no PPU, so it reads as the first VBlank line.
	LY HardwareAddress = 0xFF44
	// IE is the address of the IE hardware register. Each bit
	// enables the interrupt of the same bit in IF.
	IE HardwareAddress = 0xFFFF
)

// SerialTransfer is the value written to SC to start a transfer
// using the internal clock.
const SerialTransfer = 0x81
