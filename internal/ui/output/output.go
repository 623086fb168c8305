// Package output constructs termenv outputs under ripple's color rules:
// NO_COLOR always wins, interactive terminals get their own profile, and
// CI logs get plain ANSI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Detect returns the terminal's own color profile, or Ascii when NO_COLOR
// is set.
func Detect() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ANSI returns the 16-color profile for non-interactive logs, or Ascii
// when NO_COLOR is set.
func ANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New wraps w in a termenv.Output using the detected profile. A nil
// writer defaults to os.Stderr.
func New(w io.Writer) *termenv.Output {
	return wrap(w, Detect())
}

// NewANSI wraps w in a termenv.Output using the ANSI profile. A nil
// writer defaults to os.Stderr.
func NewANSI(w io.Writer) *termenv.Output {
	return wrap(w, ANSI())
}

func wrap(w io.Writer, profile termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true))
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
