// Package diag implements the driver's diagnostics engine. Warnings and
// remarks are line-oriented and stable in wording; build systems and IDEs
// scrape them.
package diag

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/ripple/internal/adapters/detector"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/ripple/internal/ui/output"
	"go.trai.ch/ripple/internal/ui/style"
)

var _ ports.Diagnostics = (*Engine)(nil)

// Engine implements ports.Diagnostics over a writer.
type Engine struct {
	out *termenv.Output

	mu       sync.Mutex
	warnings int
	remarks  int
}

// NewEngine creates an Engine writing to w. A nil writer defaults to
// os.Stderr. Non-interactive environments get the broadly compatible ANSI
// profile.
func NewEngine(w io.Writer) *Engine {
	if w == nil {
		w = os.Stderr
	}
	if detector.DetectEnvironment() == detector.ModeLinear {
		return &Engine{out: output.NewANSI(w)}
	}
	return &Engine{out: output.New(w)}
}

// Warning emits a warning diagnostic.
func (e *Engine) Warning(_ ports.DiagID, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.warnings++
	e.writeLine("warning: "+msg, style.Caution)
}

// Remark emits a remark diagnostic.
func (e *Engine) Remark(_ ports.DiagID, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.remarks++
	e.writeLine("remark: "+msg, style.Muted)
}

// WarningCount returns the number of warnings emitted so far.
func (e *Engine) WarningCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.warnings
}

// RemarkCount returns the number of remarks emitted so far.
func (e *Engine) RemarkCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remarks
}

func (e *Engine) writeLine(line string, color lipgloss.Color) {
	styled := e.out.String(line).Foreground(termenv.RGBColor(string(color)))
	_, _ = e.out.WriteString(styled.String() + "\n")
}
