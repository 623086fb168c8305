// Package detector provides environment detection for diagnostic output
// mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the diagnostic rendering mode for the driver.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeInteractive renders with the terminal's full color profile.
	ModeInteractive
	// ModeLinear renders plain, broadly compatible output for CI logs.
	ModeLinear
)

// DetectEnvironment returns the recommended output mode based on the
// environment. It checks if stderr is a TTY and if CI environment
// variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveMode applies a user override flag to auto-detection.
// userFlag should be one of: "auto", "interactive", "linear", "ci", or
// empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "interactive":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}
