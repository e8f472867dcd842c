package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
)

// LevelTrace is below Debug and logs per-file merge decisions.
const LevelTrace = slog.LevelDebug - 4

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ErrInvalidFormat is returned by ParseFormat for unknown format names.
var ErrInvalidFormat = errors.New("invalid log format")

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", errors.Wrapf(ErrInvalidFormat, "%q (valid: text, json)", s)
}

// Config holds the configuration for creating a new logger.
type Config struct {
	// Level sets the minimum log level. Messages below this level are discarded.
	Level slog.Level
	// Format specifies the console output format. Unknown values mean text.
	Format Format
	// Output receives console output. Defaults to os.Stderr if nil.
	Output io.Writer
	// File, when set, also receives every record at Level as JSON lines.
	File string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg. The returned closer releases the log file,
// if any, and is never nil.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var console slog.Handler
	if cfg.Format == FormatJSON {
		console = NewJSONHandler(output, cfg.Level)
	} else {
		console = NewHandler(output, &slog.HandlerOptions{Level: cfg.Level})
	}

	if cfg.File == "" {
		return slog.New(console), nopCloser{}, nil
	}
	file, closer, err := OpenFileHandler(cfg.File, cfg.Level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", cfg.File)
	}
	return slog.New(NewMultiHandler(console, file)), closer, nil
}

// NewJSONHandler returns a JSON handler that prints TRACE for LevelTrace and
// redacts credentials the same way the text handler does.
func NewJSONHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelName(lvl))
		}
	case a.Value.Kind() == slog.KindString || a.Value.Kind() == slog.KindAny:
		a.Value = slog.AnyValue(redact(a.Key, a.Value.Any()))
	}
	return a
}

// LevelFromVerbosity maps the count of -v flags to a log level.
// Zero logs warnings and errors only.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	case verbosity == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// LevelName renders a level, naming LevelTrace explicitly.
func LevelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// testWriter sends each log line to t.Log.
type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(trimNewline(p)))
	return len(p), nil
}

func trimNewline(p []byte) []byte {
	if n := len(p); n > 0 && p[n-1] == '\n' {
		return p[:n-1]
	}
	return p
}

// ForTest returns a trace-level logger writing through t.Log, so output
// shows only for failing tests or with -v.
func ForTest(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(NewHandler(testWriter{t: t}, &slog.HandlerOptions{Level: LevelTrace}))
}
