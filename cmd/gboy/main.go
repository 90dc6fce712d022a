// Command gboy runs Game Boy ROMs headlessly, reporting the results of
// test ROMs or tracing every instruction executed.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/grewek/gboyrust/internal/gameboy"
	"github.com/grewek/gboyrust/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// machineFlags are the flags shared by every command that runs a ROM.
type machineFlags struct {
	maxCycles  uint64
	breakpoint bool
	state      string
}

func (f *machineFlags) register(fs *pflag.FlagSet) {
	fs.Uint64Var(&f.maxCycles, "max-cycles", 60*gameboy.ClockSpeed, "Stop after this many t-cycles (0 = no limit)")
	fs.BoolVar(&f.breakpoint, "breakpoint", false, "Stop on the LD B, B breakpoint")
	fs.StringVar(&f.state, "state", "", "The state file to load before running")
}

// options returns the gameboy options selected by the flags.
func (f *machineFlags) options(logger log.Logger) ([]gameboy.Opt, error) {
	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if f.breakpoint {
		opts = append(opts, gameboy.StopOnBreakpoint())
	}
	if f.state != "" {
		b, err := os.ReadFile(f.state)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gameboy.WithState(b))
	}
	return opts, nil
}

func main() {
	var logger log.Logger
	var level string

	rootCmd := &cobra.Command{
		Use:           "gboy",
		Short:         "Headless Game Boy CPU emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger = log.NewWithLevel(os.Stderr, lvl)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&level, "log-level", logrus.InfoLevel.String(), "Log level (debug, info, warn, error)")

	getLogger := func() log.Logger { return logger }
	rootCmd.AddCommand(newRunCmd(getLogger), newTraceCmd(getLogger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.New().Fatal(err.Error())
	}
}
