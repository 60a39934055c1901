package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/vvka-141/pathkit/internal/console"
)

// New creates the CLI logger. Verbose mode lowers the level to debug so
// per-candidate probe diagnostics become visible; otherwise only
// warnings and errors surface. Output goes to stderr.
func New(verbose bool) zerolog.Logger {
	return NewWithOutput(os.Stderr, verbose)
}

// NewWithOutput creates a logger writing to w. This is primarily useful
// for capturing output in tests.
func NewWithOutput(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !console.IsInteractive(),
		// One-shot runs don't need timestamps.
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(writer).Level(level)
}

// Nop returns a logger that discards everything (useful for testing).
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
