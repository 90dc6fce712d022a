package gameboy

import (
	"io"

	"github.com/grewek/gboyrust/internal/types"
	"github.com/grewek/gboyrust/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// StopOnBreakpoint enables the LD B, B breakpoint, which stops Run.
func StopOnBreakpoint() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// SerialDebugger stops Run once the serial output reports
// "Passed" or "Failed".
func SerialDebugger() Opt {
	return func(gb *GameBoy) {
		gb.serial.watch = true
	}
}

// SerialOutput copies everything sent over the serial port to w.
func SerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serial.out = w
	}
}

// WithLogger sets the logger of the GameBoy.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithState restores a state previously returned by Save.
// An invalid state is logged and leaves the machine partially loaded.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		if err := gb.Load(types.StateFromBytes(b)); err != nil {
			gb.Errorf("%v", err)
		}
	}
}

// WithTrace writes a line describing the CPU state to w before each
// instruction is executed.
func WithTrace(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.trace = w
	}
}
