// Package style defines the color roles and glyphs shared by ripple's
// diagnostic and log output.
package style

import "github.com/charmbracelet/lipgloss"

// Color roles. Output code names the role, never the color, so a retheme
// touches only this file.
var (
	// Muted is the default tone for informational lines and remarks.
	Muted = lipgloss.Color("#6E7781")
	// Caution marks warnings.
	Caution = lipgloss.Color("#9A6700")
	// Failure marks errors.
	Failure = lipgloss.Color("#CF222E")
)

// Glyphs prefixed to status lines.
const (
	// GlyphCaution precedes warning lines.
	GlyphCaution = "!"
	// GlyphFail precedes error lines.
	GlyphFail = "✗"
)
