// Package logging sets up the zerolog logger of the timeslot command.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Setup returns a console logger writing to w. Only warnings and
// errors are logged unless verbose (info) or debug (debug) is set.
func Setup(w io.Writer, verbose, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case debug:
		level = zerolog.DebugLevel
	case verbose:
		level = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{Out: w, NoColor: true}

	return zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level)
}
