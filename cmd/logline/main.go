// Command logline reads log lines from stdin and writes them to stdout
// formatted for token-based ingestion: plain token prefix, an RFC 5424
// syslog envelope, or a custom template.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/Philipp01105/logline/core"
	"github.com/Philipp01105/logline/formatter"
	"github.com/Philipp01105/logline/handler"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	formatFlagName   = "format"
	tokenFlagName    = "token"
	hostnameFlagName = "hostname"
	appnameFlagName  = "appname"
	templateFlagName = "template"
	msgidFlagName    = "msgid"
	coarseFlagName   = "coarse-clock"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		os.Stderr.WriteString("logline: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	app := buildApp(logger, os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logger.Error("logline failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds a production zap logger that writes to stderr so
// diagnostics never mix with formatted output.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func buildApp(logger *zap.Logger, in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "logline"
	app.Usage = "prefix log lines with a token, syslog envelope or custom template"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  formatFlagName,
			Value: string(formatter.PlainKind),
			Usage: "line format: plain, syslog or custom",
		},
		cli.StringFlag{
			Name:   tokenFlagName,
			Usage:  "token prepended to every line",
			EnvVar: "LOGLINE_TOKEN",
		},
		cli.StringFlag{
			Name:  hostnameFlagName,
			Usage: "hostname to report (default: local hostname)",
		},
		cli.StringFlag{
			Name:  appnameFlagName,
			Usage: "application name to report",
		},
		cli.StringFlag{
			Name:  templateFlagName,
			Usage: "custom template using {isodatetime}, {hostname}, {appname} and {line}",
		},
		cli.StringFlag{
			Name:  msgidFlagName,
			Value: formatter.NilValue,
			Usage: "syslog MSGID header field",
		},
		cli.BoolFlag{
			Name:  coarseFlagName,
			Usage: "read timestamps from a clock cached every 500µs instead of the system clock",
		},
	}
	app.Action = func(c *cli.Context) error {
		kind, err := formatter.ParseKind(c.String(formatFlagName))
		if err != nil {
			return errors.Wrap(err, "invalid --format")
		}
		if kind == formatter.CustomKind && c.String(templateFlagName) == "" {
			return errors.New("--template is required for the custom format")
		}

		cfg := formatter.Config{
			Kind:     kind,
			Token:    c.String(tokenFlagName),
			Hostname: c.String(hostnameFlagName),
			Appname:  c.String(appnameFlagName),
			Template: c.String(templateFlagName),
		}
		if c.Bool(coarseFlagName) {
			cfg.Clock = core.CoarseClock()
		}

		f, err := formatter.New(cfg)
		if err != nil {
			return errors.Wrap(err, "building formatter")
		}

		// Custom templates are only checked when formatting; fail before
		// reading any input.
		if v, ok := f.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return errors.Wrap(err, "invalid --template")
			}
		}

		fields := []zap.Field{zap.String("format", string(kind)), zap.Bool("coarse_clock", c.Bool(coarseFlagName))}
		if h, ok := f.(interface{ Hostname() string }); ok {
			fields = append(fields, zap.String("hostname", h.Hostname()))
		}
		if s, ok := f.(*formatter.Syslog); ok {
			f = msgidFormatter{syslog: s, msgid: c.String(msgidFlagName)}
		}

		logger.Debug("formatting stdin", fields...)
		stats, err := run(in, out, f)
		logger.Debug("done",
			zap.Uint64("lines", stats.ProcessedTotal),
			zap.Uint64("format_errors", stats.FormatErrorTotal),
			zap.Uint64("write_errors", stats.WriteErrorTotal))
		return err
	}
	return app
}

// msgidFormatter applies a fixed MSGID to every syslog line.
type msgidFormatter struct {
	syslog *formatter.Syslog
	msgid  string
}

func (f msgidFormatter) FormatLine(line string) (string, error) {
	return f.syslog.FormatMessage(line, f.msgid, ""), nil
}

// run formats every line of in and writes it to out. Lines keep the
// newline they were read with. Output formatted before a failure is
// still flushed. The returned snapshot counts the lines handled.
func run(in io.Reader, out io.Writer, f formatter.LineFormatter) (stats handler.Snapshot, err error) {
	bw := bufio.NewWriter(out)
	h := handler.NewWriterHandler(handler.WriterConfig{Writer: bw, Formatter: f})
	defer func() {
		stats = h.Stats()
		err = multierr.Append(err, errors.Wrap(bw.Flush(), "flushing output"))
	}()

	r := bufio.NewReader(in)
	for n := 1; ; n++ {
		line, rerr := r.ReadString('\n')
		if line != "" {
			if herr := h.HandleLine(line); herr != nil {
				return stats, errors.Wrapf(herr, "line %d", n)
			}
		}
		if rerr == io.EOF {
			return stats, nil
		}
		if rerr != nil {
			return stats, errors.Wrap(rerr, "reading input")
		}
	}
}
