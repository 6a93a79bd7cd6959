package formatter

import "io"

// Plain prepends a static token to each line.
type Plain struct {
	token string
}

// NewPlain creates a plain formatter.
func NewPlain(token string) *Plain {
	return &Plain{token: token}
}

// Format returns token + line.
func (f *Plain) Format(line string) string {
	return f.token + line
}

// FormatLine returns token + line. It never fails.
func (f *Plain) FormatLine(line string) (string, error) {
	return f.Format(line), nil
}

// FormatLineTo writes token + line to w
func (f *Plain) FormatLineTo(w io.Writer, line string) error {
	buf := getBuffer()
	buf.WriteString(f.token)
	buf.WriteString(line)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
