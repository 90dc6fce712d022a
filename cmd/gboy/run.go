package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/grewek/gboyrust/internal/gameboy"
	"github.com/grewek/gboyrust/pkg/log"
	"github.com/grewek/gboyrust/pkg/utils"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// errNotPassed is reported for a ROM that finished without passing.
var errNotPassed = errors.New("did not pass")

func newRunCmd(logger func() log.Logger) *cobra.Command {
	var flags machineFlags
	var timeout time.Duration
	var serial bool
	var saveState string

	cmd := &cobra.Command{
		Use:   "run ROM...",
		Short: "Run ROMs until they report a result",
		Long: "Run each ROM until it reports a result over the serial port, or through the\n" +
			"registers at the LD B, B breakpoint when --breakpoint is set.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(logger())
			if err != nil {
				return err
			}
			opts = append(opts, gameboy.SerialDebugger())
			if serial {
				opts = append(opts, gameboy.SerialOutput(cmd.OutOrStdout()))
			}

			var result *multierror.Error
			for _, path := range args {
				if err := runROM(cmd.Context(), path, timeout, flags.maxCycles, saveState, opts, logger()); err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: %w", filepath.Base(path), err))
				}
			}
			return result.ErrorOrNil()
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up on a ROM after this long (0 = no timeout)")
	cmd.Flags().BoolVar(&serial, "serial", false, "Print the serial output of each ROM")
	cmd.Flags().StringVar(&saveState, "save-state", "", "Write the final state of the last ROM to this file")

	return cmd
}

// runROM runs a single ROM, returning an error if it did not pass.
func runROM(ctx context.Context, path string, timeout time.Duration, maxCycles uint64, saveState string, opts []gameboy.Opt, logger log.Logger) error {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	g := gameboy.New(rom, opts...)
	runErr := g.Run(ctx, maxCycles)

	l := logger.WithFields(log.Fields{
		"rom":     filepath.Base(path),
		"cycles":  g.Cycles(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	})
	if saveState != "" {
		if err := g.Save().SaveToFile(saveState); err != nil {
			return err
		}
	}
	if runErr != nil {
		l.Errorf("%v", runErr)
		return runErr
	}

	result := g.Result()
	l.Infof("%s", result)
	if result != gameboy.ResultPassed {
		return fmt.Errorf("%w: %s", errNotPassed, result)
	}
	return nil
}

