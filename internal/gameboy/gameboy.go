// Package gameboy provides a headless emulation of the Game Boy CPU,
// driven one instruction at a time against a flat memory.
package gameboy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash"
	"github.com/grewek/gboyrust/internal/cpu"
	"github.com/grewek/gboyrust/internal/mmu"
	"github.com/grewek/gboyrust/internal/types"
	"github.com/grewek/gboyrust/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz

	// contextInterval is the number of instructions executed
	// between checks of the run context.
	contextInterval = 4096
)

var (
	// ErrCycleLimit is returned by Run when the cycle limit is reached
	// before the ROM reported a result.
	ErrCycleLimit = errors.New("gameboy: cycle limit reached")
	// ErrInvalidState is returned when loading data that was not
	// produced by Save.
	ErrInvalidState = errors.New("gameboy: invalid state")
)

// stateMagic prefixes every saved state.
const stateMagic uint32 = 0x47425301 // "GBS" 1

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	serial *serialMonitor
	trace  io.Writer

	cycles uint64
}

// New returns a new GameBoy with the ROM loaded, in the state left
// behind by the boot ROM.
func New(rom []byte, opts ...Opt) *GameBoy {
	g := &GameBoy{
		CPU:    cpu.New(),
		MMU:    mmu.NewMMU(),
		Logger: log.NewNullLogger(),
		serial: &serialMonitor{},
	}
	g.MMU.LoadROM(rom)
	g.MMU.SetSerial(g.serial)

	for _, opt := range opts {
		opt(g)
	}
	g.MMU.Log = g.Logger

	return g
}

// Cycles returns the number of t-cycles executed since the GameBoy was created.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Serial returns everything sent over the serial port so far.
func (g *GameBoy) Serial() string {
	return g.serial.String()
}

// Step executes a single instruction, tracing it first when a trace
// writer has been configured, and returns the t-cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	if g.trace != nil && !g.CPU.Halted() {
		if err := g.writeTrace(); err != nil {
			return 0, fmt.Errorf("gameboy: writing trace: %w", err)
		}
	}

	cycles, err := g.CPU.Step(g.MMU)
	if err != nil {
		var unknown *cpu.UnknownInstructionError
		if errors.As(err, &unknown) {
			g.WithFields(log.Fields{
				"pc":     fmt.Sprintf("0x%04X", unknown.PC),
				"opcode": fmt.Sprintf("0x%02X", unknown.Opcode),
				"cycles": g.cycles,
			}).Errorf("cpu stopped: %v", err)
		}
		return 0, err
	}
	g.cycles += uint64(cycles)
	return cycles, nil
}

// Run executes instructions until the ROM reports a result, the CPU
// hits a breakpoint, maxCycles t-cycles have been executed or the
// context is done. A maxCycles of 0 runs without a limit.
//
// A breakpoint hit by a previous Run is cleared, so Run resumes past it.
func (g *GameBoy) Run(ctx context.Context, maxCycles uint64) error {
	g.CPU.DebugBreakpoint = false
	start := g.cycles
	for steps := 0; ; steps++ {
		if steps%contextInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if _, err := g.Step(); err != nil {
			return fmt.Errorf("gameboy: after %d cycles: %w", g.cycles-start, err)
		}

		if g.CPU.DebugBreakpoint || g.serial.Done() {
			g.Debugf("stopped after %d cycles: %s", g.cycles-start, g.Result())
			return nil
		}
		if maxCycles > 0 && g.cycles-start >= maxCycles {
			return ErrCycleLimit
		}
	}
}

// Fingerprint returns a hash of the machine state, which is equal for
// two machines that have executed the same instructions from the same
// state.
func (g *GameBoy) Fingerprint() uint64 {
	return xxhash.Sum64(g.Save().Bytes())
}

// Save returns the state of the machine.
func (g *GameBoy) Save() *types.State {
	s := types.NewState()
	s.Write32(stateMagic)
	g.CPU.Save(s)
	g.MMU.Save(s)
	return s
}

// Load restores the state of the machine.
func (g *GameBoy) Load(s *types.State) error {
	if s.Read32() != stateMagic {
		return ErrInvalidState
	}
	g.CPU.Load(s)
	g.MMU.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("gameboy: loading state: %w", err)
	}
	return nil
}
