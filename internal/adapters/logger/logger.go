// Package logger implements the driver's logger on log/slog, with a
// pretty handler for terminals and a JSON handler for machine consumers.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/ripple/internal/core/ports"
)

// chainer is the error shape zerr produces: a link that can report its
// own message without repeating the rest of the chain. Errors without it
// fall back to their full Error() text.
type chainer interface {
	Message() string
}

// Logger implements ports.Logger.
type Logger struct {
	mu      sync.RWMutex
	slogger *slog.Logger
	json    bool
	w       io.Writer
}

// New creates a Logger writing pretty output to os.Stderr.
func New() ports.Logger {
	l := &Logger{w: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput redirects the logger. A nil writer resets to os.Stderr. The
// JSON/pretty choice is preserved.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json = enable
	l.rebuild()
}

// rebuild swaps in a handler matching the current writer and mode.
// Callers hold mu.
func (l *Logger) rebuild() {
	w := l.w
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.json {
		l.slogger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	l.slogger = slog.New(NewPrettyHandler(w, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.slogger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.slogger.Warn(msg)
}

// Error logs an error with its cause chain laid out line by line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.json {
		l.slogger.Error("operation failed", "error", err)
		return
	}
	l.slogger.Error(renderChain(err))
}

// chainMessages walks the error chain outward-in. Each chainer link
// contributes its own message; the first foreign error contributes its
// full text and ends the walk.
func chainMessages(err error) []string {
	var msgs []string
	for err != nil {
		c, ok := err.(chainer)
		if !ok {
			msgs = append(msgs, err.Error())
			break
		}
		msgs = append(msgs, c.Message())
		err = errors.Unwrap(err)
	}
	return msgs
}

// renderChain lays the chain out as a headline plus an indented cause
// list:
//
//	Error: <outermost>
//
//	  Caused by:
//	    → <next>
//	    → <root>
func renderChain(err error) string {
	msgs := chainMessages(err)

	var out []string
	appendIndented := func(lines []string, first, rest string) {
		out = append(out, first+lines[0])
		for _, line := range lines[1:] {
			out = append(out, rest+line)
		}
	}

	for i, msg := range msgs {
		lines := strings.Split(msg, "\n")
		switch i {
		case 0:
			appendIndented(lines, "Error: ", "       ")
		case 1:
			out = append(out, "", "  Caused by:")
			fallthrough
		default:
			appendIndented(lines, "    → ", "      ")
		}
	}

	return strings.Join(out, "\n")
}
