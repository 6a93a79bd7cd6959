package handler

import (
	"strconv"
	"strings"
)

// appendField writes " key=value", quoting value when it would be
// ambiguous in a space separated line.
func appendField(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	if needsQuoting(value) {
		b.WriteString(strconv.Quote(value))
		return
	}
	b.WriteString(value)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c == '=' || c == '"' || c >= 0x7f {
			return true
		}
	}
	return false
}
