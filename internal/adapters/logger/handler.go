package logger

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/ripple/internal/ui/output"
	"go.trai.ch/ripple/internal/ui/style"
)

// PrettyHandler renders each slog record as a single colored line:
// an optional level glyph, the message, then space-separated key=value
// attributes. Groups become dotted key prefixes.
type PrettyHandler struct {
	out *termenv.Output
	min slog.Level

	// preformatted holds handler-level attributes already rendered with
	// the group prefix in effect when WithAttrs ran.
	preformatted []string
	group        string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil writer
// defaults to os.Stderr via the output package.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	min := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		min = opts.Level.Level()
	}
	return &PrettyHandler{
		out: output.New(w),
		min: min,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

// Handle formats and writes the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg, color := h.decorate(r)

	parts := slices.Clone(h.preformatted)
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, h.format(attr))
		return true
	})
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// decorate prefixes the level glyph and picks the line color.
func (h *PrettyHandler) decorate(r slog.Record) (string, termenv.Color) {
	switch r.Level {
	case slog.LevelWarn:
		return style.GlyphCaution + " " + r.Message, termenv.RGBColor(string(style.Caution))
	case slog.LevelError:
		return style.GlyphFail + " " + r.Message, termenv.RGBColor(string(style.Failure))
	default:
		return r.Message, termenv.RGBColor(string(style.Muted))
	}
}

// WithAttrs renders the attributes under the current group and returns a
// handler carrying them.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	pre := slices.Clone(h.preformatted)
	for _, attr := range attrs {
		pre = append(pre, h.format(attr))
	}

	clone := *h
	clone.preformatted = pre
	return &clone
}

// WithGroup returns a handler whose subsequent attribute keys nest under
// name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	if h.group == "" {
		clone.group = name
	} else {
		clone.group = h.group + "." + name
	}
	return &clone
}

// format renders one attribute as key=value, applying the group prefix.
func (h *PrettyHandler) format(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return key + "=" + attr.Value.String()
}
