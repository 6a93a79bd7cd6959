package formatter

import (
	"bytes"
	"io"
	"strings"

	"github.com/Philipp01105/logline/core"
)

// Custom renders lines through a user template. Supported placeholders:
//
//	{isodatetime}  current UTC time, e.g. 2015-08-11T13:10:09.320514
//	{hostname}     configured or local hostname
//	{appname}      application name
//	{line}         the input line without its trailing newline
//
// The output is token + rendered template + "\n".
type Custom struct {
	segments []segment
	err      error
	hostname string
	appname  string
	token    string
	clock    core.Clock
}

// NewCustom creates a custom formatter. The template is not validated
// here: a bad template is reported by every FormatLine call, and by
// Validate. The only construction error is a failed hostname lookup.
func NewCustom(cfg Config) (*Custom, error) {
	hostname, err := core.ResolveHostname(cfg.Hostname)
	if err != nil {
		return nil, err
	}
	f := &Custom{
		hostname: hostname,
		appname:  cfg.Appname,
		token:    cfg.Token,
		clock:    cfg.clock(),
	}
	f.segments, f.err = parseTemplate(cfg.Template)
	return f, nil
}

// Hostname returns the resolved hostname.
func (f *Custom) Hostname() string {
	return f.hostname
}

// Validate reports whether the template can be rendered.
func (f *Custom) Validate() error {
	return f.err
}

// FormatLine renders line through the template.
func (f *Custom) FormatLine(line string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(buf, line)
	return buf.String(), nil
}

// FormatLineTo writes the FormatLine result to w
func (f *Custom) FormatLineTo(w io.Writer, line string) error {
	if f.err != nil {
		return f.err
	}
	buf := getBuffer()

	f.formatToBuffer(buf, line)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *Custom) formatToBuffer(buf *bytes.Buffer, line string) {
	line = strings.TrimSuffix(line, "\n")
	now := f.clock.Now()

	buf.WriteString(f.token)
	for _, s := range f.segments {
		switch s.kind {
		case fieldLiteral:
			buf.WriteString(s.text)
		case fieldISODateTime:
			buf.Write(core.AppendISOTime(buf.AvailableBuffer(), now))
		case fieldHostname:
			buf.WriteString(f.hostname)
		case fieldAppname:
			buf.WriteString(f.appname)
		case fieldLine:
			buf.WriteString(line)
		}
	}
	buf.WriteByte('\n')
}
