package handler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ZapCore implements zapcore.Core on top of a line Handler, so a
// *zap.Logger can feed its entries through a line formatter. Each entry
// becomes one newline-terminated line:
//
//	LEVEL [logger] message key=value ...
//
// Fields are written in key order.
type ZapCore struct {
	zapcore.LevelEnabler
	handler Handler
	fields  []zapcore.Field
}

// NewZapCore creates a core that forwards entries at or above enab to h.
func NewZapCore(h Handler, enab zapcore.LevelEnabler) *ZapCore {
	return &ZapCore{
		LevelEnabler: enab,
		handler:      h,
	}
}

// With returns a copy of the core carrying additional context fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	return &ZapCore{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		fields:       append(newFields, fields...),
	}
}

// Check adds the core to ce when the entry's level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry as a line and passes it to the wrapped handler.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ent.Level.CapitalString())
	b.WriteByte(' ')
	if ent.LoggerName != "" {
		b.WriteByte('[')
		b.WriteString(ent.LoggerName)
		b.WriteString("] ")
	}
	b.WriteString(ent.Message)
	for _, k := range keys {
		appendField(&b, k, fmt.Sprint(enc.Fields[k]))
	}
	if ent.Stack != "" {
		appendField(&b, "stacktrace", ent.Stack)
	}
	b.WriteByte('\n')

	return c.handler.HandleLine(b.String())
}

// Sync flushes the wrapped handler if it supports it.
func (c *ZapCore) Sync() error {
	if s, ok := c.handler.(Syncer); ok {
		return s.Sync()
	}
	return nil
}
