package core

import "time"

// isoLayout renders microsecond precision with a 'T' separator and no zone.
const isoLayout = "2006-01-02T15:04:05.000000"

// AppendISOTime appends t, converted to UTC, as YYYY-MM-DDTHH:MM:SS.ffffff.
// No zone designator is written; callers that want one append it themselves.
func AppendISOTime(dst []byte, t time.Time) []byte {
	return t.UTC().AppendFormat(dst, isoLayout)
}

// ISOTime is the string form of AppendISOTime.
func ISOTime(t time.Time) string {
	return string(AppendISOTime(make([]byte, 0, len(isoLayout)), t))
}
