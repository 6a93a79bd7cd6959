// Package formatter turns raw log lines into the strings shipped to a
// remote collector.
//
// Three variants implement LineFormatter:
//
//   - Plain prepends a static token.
//   - Syslog wraps the line in an RFC 5424 style envelope with PRI <14>,
//     a microsecond UTC timestamp, hostname and application name.
//   - Custom renders a user template with the {isodatetime}, {hostname},
//     {appname} and {line} placeholders.
//
// A formatter is chosen once at configuration time, usually through New,
// and then called once per line. Formatters are immutable after
// construction and safe for concurrent use.
//
// All variants also implement WriterFormatter. FormatLineTo renders into a
// pooled bytes.Buffer and writes it in one call, skipping the intermediate
// string. Buffers larger than 64 KiB are not returned to the pool so a
// single huge line does not pin memory.
package formatter
