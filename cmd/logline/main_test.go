package main

import (
	"bytes"
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/Philipp01105/logline/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := buildApp(zap.NewNop(), strings.NewReader(input), &out)
	err := app.Run(append([]string{"logline"}, args...))
	return out.String(), err
}

func TestRun_Plain(t *testing.T) {
	out, err := runApp(t, "one\ntwo\n", "--token", "T1 ")
	require.NoError(t, err)
	assert.Equal(t, "T1 one\nT1 two\n", out)
}

func TestRun_PlainLastLineWithoutNewline(t *testing.T) {
	out, err := runApp(t, "one\ntwo", "--token", "T1 ")
	require.NoError(t, err)
	assert.Equal(t, "T1 one\nT1 two", out)
}

func TestRun_Syslog(t *testing.T) {
	out, err := runApp(t, "msg\n", "--format", "syslog", "--hostname", "h1", "--appname", "app1", "--token", "T2<", "--msgid", "42")
	require.NoError(t, err)

	re := regexp.MustCompile(`^T2<<14>1 \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z h1 app1 - 42 - hostname=h1 appname=app1 msg\n$`)
	assert.Regexp(t, re, out)
}

func TestRun_Custom(t *testing.T) {
	out, err := runApp(t, "data\nmore\n", "--format", "custom", "--template", "{hostname}:{appname}:{line}", "--hostname", "h2", "--appname", "app2", "--token", "P-")
	require.NoError(t, err)
	assert.Equal(t, "P-h2:app2:data\nP-h2:app2:more\n", out)
}

func TestRun_CustomLocalHostname(t *testing.T) {
	host, err := os.Hostname()
	if err != nil {
		t.Skipf("os.Hostname() unavailable: %v", err)
	}
	out, err := runApp(t, "x\n", "--format", "custom", "--template", "{hostname}")
	require.NoError(t, err)
	assert.Equal(t, host+"\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, err := runApp(t, "x\n", "--format", "gelf")
	assert.ErrorIs(t, err, formatter.ErrUnknownKind)

	_, err = runApp(t, "x\n", "--format", "custom")
	assert.ErrorContains(t, err, "--template is required")

	out, err := runApp(t, "x\n", "--format", "custom", "--template", "{unknown}")
	assert.ErrorIs(t, err, formatter.ErrUnknownPlaceholder)
	assert.Empty(t, out)
}

func TestRun_CoarseClock(t *testing.T) {
	out, err := runApp(t, "msg\n", "--format", "custom", "--template", "{isodatetime} {hostname} {line}", "--hostname", "h1", "--coarse-clock")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6} h1 msg\n$`), out)
}

func TestRunCountsLines(t *testing.T) {
	var out bytes.Buffer
	stats, err := run(strings.NewReader("a\nb\nc"), &out, formatter.NewPlain(""))
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.ProcessedTotal)
	assert.Equal(t, "a\nb\nc", out.String())
}

// rejectingFormatter fails on the line "bad\n" and passes others through.
type rejectingFormatter struct{}

func (rejectingFormatter) FormatLine(line string) (string, error) {
	if line == "bad\n" {
		return "", errors.New("rejected")
	}
	return line, nil
}

func TestRun_FlushesOutputBeforeFailure(t *testing.T) {
	var out bytes.Buffer
	stats, err := run(strings.NewReader("a\nb\nbad\nc\n"), &out, rejectingFormatter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, "a\nb\n", out.String())
	assert.EqualValues(t, 2, stats.ProcessedTotal)
	assert.EqualValues(t, 1, stats.FormatErrorTotal)
}
