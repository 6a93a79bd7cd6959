package formatter

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownPlaceholder is returned when a template names a field other
	// than isodatetime, hostname, appname or line.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	// ErrMalformedTemplate is returned for unbalanced braces and for fields
	// carrying a conversion or format spec.
	ErrMalformedTemplate = errors.New("malformed template")
)

type placeholder uint8

const (
	fieldLiteral placeholder = iota
	fieldISODateTime
	fieldHostname
	fieldAppname
	fieldLine
)

var placeholderNames = map[string]placeholder{
	"isodatetime": fieldISODateTime,
	"hostname":    fieldHostname,
	"appname":     fieldAppname,
	"line":        fieldLine,
}

// segment is either literal text or a single placeholder.
type segment struct {
	kind placeholder
	text string
}

// parseTemplate splits tmpl into segments. "{{" and "}}" escape literal
// braces; everything between a single pair of braces must be one of the
// known placeholder names.
func parseTemplate(tmpl string) ([]segment, error) {
	var (
		segs []segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{kind: fieldLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(tmpl[i+1:], "{}")
			if end < 0 {
				return nil, errors.Wrapf(ErrMalformedTemplate, "expected '}' before end of template (offset %d)", i)
			}
			end += i + 1
			if tmpl[end] == '{' {
				return nil, errors.Wrapf(ErrMalformedTemplate, "unexpected '{' in field name (offset %d)", end)
			}
			name := tmpl[i+1 : end]
			if strings.ContainsAny(name, ":!") {
				return nil, errors.Wrapf(ErrMalformedTemplate, "field %q: conversions and format specs are not supported", name)
			}
			p, ok := placeholderNames[name]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownPlaceholder, "{%s}", name)
			}
			flush()
			segs = append(segs, segment{kind: p})
			i = end
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, errors.Wrapf(ErrMalformedTemplate, "single '}' encountered (offset %d)", i)
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return segs, nil
}
