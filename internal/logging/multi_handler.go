package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// MultiHandler sends every record to each of its handlers that accepts the
// record's level. It backs --log-file, pairing the console with a JSON file.
type MultiHandler []slog.Handler

// NewMultiHandler drops nil entries so optional sinks can be passed as is.
func NewMultiHandler(handlers ...slog.Handler) MultiHandler {
	m := make(MultiHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle gives each handler its own clone of r. Failures are joined and do
// not stop delivery to the remaining handlers.
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m MultiHandler) derive(fn func(slog.Handler) slog.Handler) MultiHandler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = fn(h)
	}
	return out
}

// OpenFileHandler appends JSON records to path. The file and its directory
// are created private to the user. Closing the returned io.Closer closes
// the file.
func OpenFileHandler(path string, level slog.Leveler) (slog.Handler, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewJSONHandler(f, level), f, nil
}
