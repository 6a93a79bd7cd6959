package formatter

import (
	"bytes"
	"io"

	"github.com/Philipp01105/logline/core"
)

// syslogHeader is PRI <14> (facility user, severity informational)
// followed by protocol version 1.
const syslogHeader = "<14>1 "

// NilValue is the RFC 5424 placeholder for an absent header field.
const NilValue = "-"

// Syslog wraps lines in an RFC 5424 style envelope:
//
//	{token}<14>1 {timestamp}Z {hostname} {appname} - {msgid} - hostname={hostname} appname={appname} {line}
type Syslog struct {
	hostname string
	appname  string
	token    string
	clock    core.Clock
}

// NewSyslog creates a syslog formatter. An empty cfg.Hostname is replaced
// by the local hostname; the lookup is the only way this can fail.
func NewSyslog(cfg Config) (*Syslog, error) {
	hostname, err := core.ResolveHostname(cfg.Hostname)
	if err != nil {
		return nil, err
	}
	return &Syslog{
		hostname: hostname,
		appname:  cfg.Appname,
		token:    cfg.Token,
		clock:    cfg.clock(),
	}, nil
}

// Hostname returns the resolved hostname.
func (f *Syslog) Hostname() string {
	return f.hostname
}

// FormatLine formats line with a nil msgid and the configured token.
func (f *Syslog) FormatLine(line string) (string, error) {
	return f.FormatMessage(line, NilValue, ""), nil
}

// FormatMessage formats line with the given msgid. A non-empty token
// replaces the configured one for this call; an empty msgid is written
// as "-".
func (f *Syslog) FormatMessage(line, msgid, token string) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(buf, line, msgid, token)
	return buf.String()
}

// FormatLineTo writes the FormatLine result to w
func (f *Syslog) FormatLineTo(w io.Writer, line string) error {
	buf := getBuffer()

	f.formatToBuffer(buf, line, NilValue, "")

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *Syslog) formatToBuffer(buf *bytes.Buffer, line, msgid, token string) {
	if token == "" {
		token = f.token
	}
	if msgid == "" {
		msgid = NilValue
	}

	buf.WriteString(token)
	buf.WriteString(syslogHeader)
	buf.Write(core.AppendISOTime(buf.AvailableBuffer(), f.clock.Now()))
	buf.WriteString("Z ")
	buf.WriteString(f.hostname)
	buf.WriteByte(' ')
	buf.WriteString(f.appname)
	buf.WriteString(" - ")
	buf.WriteString(msgid)
	buf.WriteString(" - hostname=")
	buf.WriteString(f.hostname)
	buf.WriteString(" appname=")
	buf.WriteString(f.appname)
	buf.WriteByte(' ')
	buf.WriteString(line)
}
