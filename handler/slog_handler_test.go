package handler

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Philipp01105/logline/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(NewWriterHandler(WriterConfig{Writer: &bytes.Buffer{}}), slog.LevelInfo)

	assert.False(t, sh.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, sh.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, sh.Enabled(context.Background(), slog.LevelError))
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{Writer: &buf, Formatter: formatter.NewPlain("TOKEN ")})
	logger := slog.New(NewSlogHandler(h, slog.LevelDebug))

	logger.Info("test message", "key", "value", "count", 42)

	assert.Equal(t, "TOKEN INFO test message key=value count=42\n", buf.String())
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{Writer: &buf})
	logger := slog.New(NewSlogHandler(h, nil)).
		With("service", "api").
		WithGroup("req").
		With("id", 7)

	logger.Warn("slow", "path", "/a b", slog.Group("timing", "ms", 1500))

	assert.Equal(t, "WARN slow service=api req.id=7 req.path=\"/a b\" req.timing.ms=1500\n", buf.String())
}

func TestSlogHandler_CustomFormatter(t *testing.T) {
	f, err := formatter.NewCustom(formatter.Config{Template: "{hostname} {appname}: {line}", Hostname: "h", Appname: "app"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewWriterHandler(WriterConfig{Writer: &buf, Formatter: f}), slog.LevelInfo))
	logger.Debug("dropped")
	logger.Error("boom", "err", "timeout")

	assert.Equal(t, "h app: ERROR boom err=timeout\n", buf.String())
}
