package handler

import (
	"bytes"
	"testing"

	"github.com/Philipp01105/logline/core"
	"github.com/Philipp01105/logline/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapCore_Write(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{Writer: &buf, Formatter: formatter.NewPlain("TOKEN ")})
	logger := zap.New(NewZapCore(h, zapcore.InfoLevel))

	logger.Debug("dropped")
	logger.Info("request handled", zap.Int("status", 200), zap.String("method", "GET"))

	assert.Equal(t, "TOKEN INFO request handled method=GET status=200\n", buf.String())
}

func TestZapCore_WithAndNamed(t *testing.T) {
	var buf bytes.Buffer
	h := NewWriterHandler(WriterConfig{Writer: &buf})
	logger := zap.New(NewZapCore(h, zapcore.DebugLevel)).
		Named("shipper").
		With(zap.String("app", "api"))

	logger.Warn("queue slow", zap.String("note", "two words"))

	assert.Equal(t, "WARN [shipper] queue slow app=api note=\"two words\"\n", buf.String())
}

func TestZapCore_Syslog(t *testing.T) {
	f, err := formatter.NewSyslog(formatter.Config{Hostname: "h1", Appname: "app1", Token: "T ", Clock: core.FixedClock{T: fixedTime}})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zap.New(NewZapCore(NewWriterHandler(WriterConfig{Writer: &buf, Formatter: f}), zapcore.InfoLevel))
	logger.Info("msg")

	assert.Equal(t, "T <14>1 2026-01-15T12:00:00.000000Z h1 app1 - - - hostname=h1 appname=app1 INFO msg\n", buf.String())
}

func TestZapCore_Sync(t *testing.T) {
	w := &closeRecorder{}
	c := NewZapCore(NewWriterHandler(WriterConfig{Writer: w}), zapcore.InfoLevel)

	require.NoError(t, c.Sync())
	assert.True(t, w.synced)
}
