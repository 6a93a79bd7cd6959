package handler

import (
	"context"
	"log/slog"
	"strings"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// line Handler. Each record becomes one newline-terminated line:
//
//	LEVEL message key=value ...
type SlogHandler struct {
	handler Handler
	level   slog.Leveler
	attrs   []slog.Attr
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// A nil level means slog.LevelInfo.
func NewSlogHandler(h Handler, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle renders the record as a line and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Level.String())
	b.WriteByte(' ')
	b.WriteString(record.Message)

	for _, a := range s.attrs {
		appendSlogAttr(&b, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendSlogAttr(&b, s.group, a)
		return true
	})
	b.WriteByte('\n')

	return s.handler.HandleLine(b.String())
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// appendSlogAttr writes a, flattening groups into dotted keys.
func appendSlogAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendSlogAttr(b, key, ga)
		}
		return
	}
	appendField(b, key, a.Value.String())
}
