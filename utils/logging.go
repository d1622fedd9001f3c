package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	LoggingFormatJson = "json"
	LoggingFormatText = "text"
)

// NewLogger builds the process logger. The json format is shaped for Cloud Logging, text is for local development.
func NewLogger(format string) *slog.Logger {
	return newLogger(os.Stdout, format, slog.LevelInfo)
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	switch strings.ToLower(format) {
	case LoggingFormatText:
		return slog.New(NewLocalDevHandler(w, level, true))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: GCPLoggerAttributeReplacer,
		}))
	}
}

var gcpSeverities = []struct {
	below    slog.Level
	severity string
}{
	{slog.LevelInfo, "DEBUG"},
	{slog.LevelWarn, "INFO"},
	{slog.LevelError, "WARNING"},
}

// GCPLoggerAttributeReplacer renames the message and level keys to the ones Cloud Logging parses.
func GCPLoggerAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
		level, _ := a.Value.Any().(slog.Level)
		severity := "ERROR"
		for _, s := range gcpSeverities {
			if level < s.below {
				severity = s.severity
				break
			}
		}
		a.Value = slog.StringValue(severity)
	}
	return a
}

// LocalDevHandler prints "time LEVEL message" followed by the attributes in logfmt.
type LocalDevHandler struct {
	attrs    slog.Handler
	color    bool
	mu       *sync.Mutex
	w        io.Writer
	minLevel slog.Level
}

func NewLocalDevHandler(w io.Writer, level slog.Level, color bool) *LocalDevHandler {
	return &LocalDevHandler{
		attrs: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
					return slog.Attr{}
				}
				return a
			},
		}),
		color:    color,
		mu:       &sync.Mutex{},
		w:        w,
		minLevel: level,
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String()
	if h.color {
		level = colorize(r.Level, level)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := fmt.Fprintf(h.w, "%s %s %s ", r.Time.Format(time.RFC3339), level, r.Message); err != nil {
		return err
	}
	return h.attrs.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = h.attrs.WithAttrs(attrs)
	return &clone
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.attrs = h.attrs.WithGroup(name)
	return &clone
}

func colorize(level slog.Level, s string) string {
	code := 31 // red
	switch {
	case level < slog.LevelInfo:
		code = 35 // magenta
	case level < slog.LevelWarn:
		code = 34 // blue
	case level < slog.LevelError:
		code = 33 // yellow
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}
