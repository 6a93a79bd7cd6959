package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/Philipp01105/logline/formatter"
	"github.com/pkg/errors"
)

// WriterConfig holds configuration for a writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: plain formatter with an empty token)
	Formatter formatter.LineFormatter
}

// WriterHandler formats lines and writes them to an io.Writer.
type WriterHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.LineFormatter
	writerFormatter formatter.WriterFormatter
	buf             bytes.Buffer
	stats           *Stats
	closed          bool
}

// ErrClosed is returned by HandleLine after Close.
var ErrClosed = errors.New("handler closed")

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPlain("")
	}

	h := &WriterHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache WriterFormatter so formatting goes straight into the buffer
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// HandleLine formats line and writes it. Formatter errors are returned
// unchanged; nothing is written for that line.
func (h *WriterHandler) HandleLine(line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.writerFormatter != nil {
		h.buf.Reset()
		if err := h.writerFormatter.FormatLineTo(&h.buf, line); err != nil {
			h.stats.IncrementFormatErrors()
			return err
		}
		return h.write(h.buf.Bytes())
	}

	out, err := h.formatter.FormatLine(line)
	if err != nil {
		h.stats.IncrementFormatErrors()
		return err
	}
	return h.write([]byte(out))
}

func (h *WriterHandler) write(p []byte) error {
	if _, err := h.writer.Write(p); err != nil {
		h.stats.IncrementWriteErrors()
		return errors.Wrap(err, "writing formatted line")
	}
	h.stats.IncrementProcessed()
	return nil
}

// Sync flushes the writer if it supports it.
func (h *WriterHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.writer.(Syncer); ok && !isStdStream(h.writer) {
		return s.Sync()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *WriterHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying writer when it is an io.Closer other
// than stdout or stderr. Further HandleLine calls return ErrClosed.
func (h *WriterHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if c, ok := h.writer.(io.Closer); ok && !isStdStream(h.writer) {
		return c.Close()
	}
	return nil
}

func isStdStream(w io.Writer) bool {
	return w == os.Stdout || w == os.Stderr
}
