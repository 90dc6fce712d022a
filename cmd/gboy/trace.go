package main

import (
	"bufio"
	"errors"
	"os"

	"github.com/grewek/gboyrust/internal/gameboy"
	"github.com/grewek/gboyrust/pkg/log"
	"github.com/grewek/gboyrust/pkg/utils"
	"github.com/spf13/cobra"
)

func newTraceCmd(logger func() log.Logger) *cobra.Command {
	var flags machineFlags
	var output string

	cmd := &cobra.Command{
		Use:   "trace ROM",
		Short: "Write the CPU state before every instruction",
		Long: "Write the CPU state before every instruction in the line format used by\n" +
			"gameboy-doctor, until the ROM reports a result or the cycle limit is reached.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			w := bufio.NewWriter(out)
			defer func() {
				if flushErr := w.Flush(); err == nil {
					err = flushErr
				}
			}()

			opts, err := flags.options(logger())
			if err != nil {
				return err
			}
			opts = append(opts, gameboy.SerialDebugger(), gameboy.WithTrace(w))

			g := gameboy.New(rom, opts...)
			if err := g.Run(cmd.Context(), flags.maxCycles); err != nil && !errors.Is(err, gameboy.ErrCycleLimit) {
				return err
			}
			logger().WithFields(log.Fields{"cycles": g.Cycles()}).Infof("trace finished: %s", g.Result())
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the trace to this file instead of stdout")

	return cmd
}
