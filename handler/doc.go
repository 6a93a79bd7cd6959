// Package handler connects line formatters to outputs.
//
// A Handler accepts raw log lines, runs them through a formatter and
// forwards the result. The built-in handlers are:
//
//   - WriterHandler formats each line and writes it to any io.Writer
//     (default: stdout). Writes are serialized so lines never interleave.
//   - MultiHandler fans a single line out to several child handlers and
//     combines their errors.
//   - SlogHandler adapts Handler to log/slog.Handler so a *slog.Logger can
//     feed lines into a formatter.
//   - ZapCore adapts Handler to zapcore.Core for the same purpose with zap.
//
// Handlers never log. Formatter and writer errors are returned to the
// caller and counted in Stats.
package handler
