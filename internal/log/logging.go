// Package log builds the slog.Logger used by bootpad.
//
// Without a log file, records go to the console: non-error levels on
// stdout, errors on stderr, with colored level tags when writing to a
// terminal-ish stream. With a log file, a plain text handler is used so
// the menu's screen stays uncluttered.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is a custom level below Debug for per-report output.
const LevelTrace slog.Level = slog.LevelDebug - 4

// ParseLevel maps a level name to a slog level. Unknown names and the
// empty string mean Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds the logger and installs it as the slog default. The
// returned closer is non-nil when a log file was opened.
func Setup(level, file string) (*slog.Logger, io.Closer, error) {
	lvl := ParseLevel(level)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
		slog.SetDefault(logger)
		return logger, f, nil
	}

	logger := slog.New(splitHandler{
		out: &consoleHandler{w: os.Stdout, level: lvl},
		err: &consoleHandler{w: os.Stderr, level: lvl},
	})
	slog.SetDefault(logger)
	return logger, nil, nil
}

// splitHandler routes records at Error and above to err, the rest to out.
type splitHandler struct {
	out slog.Handler
	err slog.Handler
}

func (s splitHandler) target(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return s.err
	}
	return s.out
}

func (s splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.target(level).Enabled(ctx, level)
}

func (s splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return s.target(r.Level).Handle(ctx, r)
}

func (s splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return splitHandler{out: s.out.WithAttrs(attrs), err: s.err.WithAttrs(attrs)}
}

func (s splitHandler) WithGroup(name string) slog.Handler {
	return splitHandler{out: s.out.WithGroup(name), err: s.err.WithGroup(name)}
}

type consoleHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "\033[31mERROR\033[0m"
	case level >= slog.LevelWarn:
		return "\033[33m WARN\033[0m"
	case level >= slog.LevelInfo:
		return "\033[32m INFO\033[0m"
	case level >= slog.LevelDebug:
		return "\033[34mDEBUG\033[0m"
	default:
		return "\033[35mTRACE\033[0m"
	}
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder
	buf.WriteString("\033[90m")
	buf.WriteString(r.Time.Format("15:04:05.000"))
	buf.WriteString("\033[0m ")
	buf.WriteString(levelTag(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	writeAttr := func(a slog.Attr) bool {
		fmt.Fprintf(&buf, " %s=%s", a.Key, a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)

	buf.WriteString("\n")
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{w: h.w, level: h.level, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	return h
}
