// Package logging centralizes the decoder's diagnostic output. It mirrors
// opendcm's Debug/Warn/Errorf shim (dicom.go) but backs onto zerolog, the
// structured logger cmd/opendcm-util/main.go wires up, instead of a
// hand-rolled console writer.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger every decoding stage writes through.
// Decode callers may reassign it (e.g. the CLI points it at os.Stderr with
// console formatting); library callers embedding this module get a
// reasonable default.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

// Configure points Log at w, optionally disabling debug-level output.
func Configure(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// Debug logs a low-priority diagnostic.
func Debug(msg string) { Log.Debug().Msg(msg) }

// Debugf logs a formatted low-priority diagnostic.
func Debugf(format string, args ...interface{}) { Log.Debug().Msgf(format, args...) }

// Warn logs a non-fatal diagnostic, prefixed "Warning:".
func Warn(msg string) { Log.Warn().Msg("Warning: " + msg) }

// Warnf logs a formatted non-fatal diagnostic.
func Warnf(format string, args ...interface{}) { Log.Warn().Msgf("Warning: "+format, args...) }

// Error logs a diagnostic for an aborting failure, prefixed "Error:".
func Error(err error, msg string) { Log.Error().Err(err).Msg("Error: " + msg) }

// Errorf logs a formatted diagnostic for an aborting failure.
func Errorf(format string, args ...interface{}) { Log.Error().Msgf("Error: "+format, args...) }
