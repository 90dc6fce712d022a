package gameboy

import (
	"strings"

	"github.com/grewek/gboyrust/internal/cpu"
)

// Result is the outcome reported by a test ROM.
type Result uint8

const (
	// ResultUnknown means the ROM has not reported an outcome.
	ResultUnknown Result = iota
	ResultPassed
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultPassed:
		return "passed"
	case ResultFailed:
		return "failed"
	}
	return "unknown"
}

// passRegisters is the fibonacci sequence written to B, C, D, E, H
// and L by a passing ROM before it hits the LD B, B breakpoint.
var passRegisters = [6]uint8{3, 5, 8, 13, 21, 34}

// failValue is written to every register by a failing ROM.
const failValue = 0x42

// Result returns the outcome reported by the ROM, either over the
// serial port or through the registers at a breakpoint.
func (g *GameBoy) Result() Result {
	if r := resultFromSerial(g.Serial()); r != ResultUnknown {
		return r
	}
	if !g.CPU.DebugBreakpoint {
		return ResultUnknown
	}

	regs := [6]uint8{}
	for i, r := range []cpu.Register{cpu.B, cpu.C, cpu.D, cpu.E, cpu.H, cpu.L} {
		regs[i] = g.CPU.Read8(r)
	}
	switch {
	case regs == passRegisters:
		return ResultPassed
	case regs == [6]uint8{failValue, failValue, failValue, failValue, failValue, failValue}:
		return ResultFailed
	}
	return ResultUnknown
}

// resultFromSerial looks for the outcome printed by blargg's ROMs.
func resultFromSerial(output string) Result {
	switch {
	case strings.Contains(output, "Passed"):
		return ResultPassed
	case strings.Contains(output, "Failed"):
		return ResultFailed
	}
	return ResultUnknown
}
