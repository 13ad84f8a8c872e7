// Command bejdump decodes a BEJ-encoded document into canonical JSON, given
// a schema dictionary and an annotation dictionary. Built with
// github.com/spf13/cobra, the flag-parsing stack moby-moby and
// s0up4200-go-bdinfo both use, in place of opendcm's own hand-rolled
// os.Args switch (cmd/opendcm-util/main.go).
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vkolodii/bejdump/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bejdump",
		Short:         "Decode DMTF BEJ (DSP0218) binary documents to JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDecodeCmd())
	return root
}

// configureLogger points the package logger at stderr, colorized unless
// stdout is a pipe — mirroring cmd/opendcm-util/main.go's IsAPipe check.
func configureLogger(verbose bool) {
	isPipe := false
	if fi, err := os.Stdout.Stat(); err == nil {
		isPipe = (fi.Mode() & os.ModeCharDevice) == 0
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logging.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: isPipe}).
		Level(level).
		With().Timestamp().Logger()
}
