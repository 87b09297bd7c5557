package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// NewSlogHandler returns a slog.Handler that forwards records to l, so code
// written against log/slog lands in the same log file. Nil in, nil out.
func NewSlogHandler(l *Logger) slog.Handler {
	if l == nil {
		return nil
	}
	return &slogAdapter{log: l}
}

type slogAdapter struct {
	log    *Logger
	groups []string
	parts  []string // attributes bound by WithAttrs, already qualified
}

func (h *slogAdapter) Enabled(_ context.Context, level slog.Level) bool {
	return h.log.Enabled(slogLevel(level))
}

func (h *slogAdapter) Handle(_ context.Context, record slog.Record) error {
	parts := append([]string(nil), h.parts...)
	record.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, attr, h.groups)
		return true
	})

	message := record.Message
	if text := strings.Join(parts, " "); text != "" {
		if message == "" {
			message = text
		} else {
			message += " " + text
		}
	}

	h.log.log(slogLevel(record.Level), "%s", message)
	return nil
}

func (h *slogAdapter) WithAttrs(attrs []slog.Attr) slog.Handler {
	parts := append([]string(nil), h.parts...)
	for _, attr := range attrs {
		parts = appendAttr(parts, attr, h.groups)
	}
	return &slogAdapter{log: h.log, groups: h.groups, parts: parts}
}

func (h *slogAdapter) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := append(append([]string(nil), h.groups...), name)
	return &slogAdapter{log: h.log, groups: groups, parts: h.parts}
}

func slogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

func appendAttr(parts []string, attr slog.Attr, prefix []string) []string {
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	key := attr.Key
	if key == "" {
		key = "attr"
	}

	if attr.Value.Kind() == slog.KindGroup {
		nested := append(append([]string(nil), prefix...), key)
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, a, nested)
		}
		return parts
	}

	path := append(append([]string(nil), prefix...), key)
	return append(parts, fmt.Sprintf("%s=%v", strings.Join(path, "."), attr.Value))
}
