package gameboy

import (
	"fmt"
)

// writeTrace writes the CPU state in the line format used by
// gameboy-doctor, followed by the 4 bytes at PC.
func (g *GameBoy) writeTrace() error {
	s := g.CPU.Snapshot()
	_, err := fmt.Fprintf(g.trace,
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X\n",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC,
		g.MMU.Read(s.PC), g.MMU.Read(s.PC+1), g.MMU.Read(s.PC+2), g.MMU.Read(s.PC+3),
	)
	return err
}
