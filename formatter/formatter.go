package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/Philipp01105/logline/core"
	"github.com/pkg/errors"
)

// LineFormatter formats a single log line.
type LineFormatter interface {
	// FormatLine returns the line as it should be sent downstream.
	FormatLine(line string) (string, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without building an intermediate string.
type WriterFormatter interface {
	// FormatLineTo formats line and writes the result to w
	FormatLineTo(w io.Writer, line string) error
}

// Kind selects a formatter variant.
type Kind string

const (
	PlainKind  Kind = "plain"
	SyslogKind Kind = "syslog"
	CustomKind Kind = "custom"
)

// ErrUnknownKind is returned for a formatter kind other than plain, syslog or custom.
var ErrUnknownKind = errors.New("unknown formatter kind")

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case PlainKind, SyslogKind, CustomKind:
		return k, nil
	default:
		return "", errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// Config holds the construction-time settings shared by all formatters.
// Fields a variant does not use are ignored.
type Config struct {
	// Kind selects the variant built by New (default: plain)
	Kind Kind
	// Token is prepended to every formatted line
	Token string
	// Hostname is used verbatim; empty means the local hostname
	Hostname string
	// Appname identifies the application in syslog and custom output
	Appname string
	// Template is the custom format string
	Template string
	// Clock supplies timestamps (default: core.SystemClock)
	Clock core.Clock
}

func (c Config) clock() core.Clock {
	if c.Clock == nil {
		return core.SystemClock{}
	}
	return c.Clock
}

// New builds the formatter selected by cfg.Kind.
func New(cfg Config) (LineFormatter, error) {
	switch cfg.Kind {
	case PlainKind, "":
		return NewPlain(cfg.Token), nil
	case SyslogKind:
		return NewSyslog(cfg)
	case CustomKind:
		return NewCustom(cfg)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", cfg.Kind)
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
