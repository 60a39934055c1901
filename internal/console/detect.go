package console

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the output mode for pathkit.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and piped output.
	ModePlain Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether pathkit should style its human output.
//
// Returns ModePlain if:
//   - PATHKIT_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout or stderr is not a terminal (piped or redirected output)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	// Check environment overrides first
	if os.Getenv("PATHKIT_NON_INTERACTIVE") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	// Human summaries go to stderr and results to stdout; style only
	// when both reach a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModePlain
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
