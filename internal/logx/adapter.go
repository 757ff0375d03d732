package logx

import (
	"io"
	"log/slog"
	"strings"
)

type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps l as a Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &slogAdapter{l: l}
}

// NewJSON returns a Logger writing JSON lines to w at the given level
// ("debug", "info", "warn" or "error"; anything else means info).
func NewJSON(w io.Writer, level string) Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return NewSlogAdapter(slog.New(h))
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *slogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, toSlogArgs(fields)...) }
func (s *slogAdapter) Info(msg string, fields ...Field)  { s.l.Info(msg, toSlogArgs(fields)...) }
func (s *slogAdapter) Warn(msg string, fields ...Field)  { s.l.Warn(msg, toSlogArgs(fields)...) }
func (s *slogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, toSlogArgs(fields)...) }

func (s *slogAdapter) With(fields ...Field) Logger {
	return &slogAdapter{l: s.l.With(toSlogArgs(fields)...)}
}

// Sync is a no-op: slog handlers write through.
func (s *slogAdapter) Sync() error { return nil }

func toSlogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}
