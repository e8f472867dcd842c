package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// clockFormat is used for timestamps, which are only printed at debug
// verbosity and below.
const clockFormat = "15:04:05.000"

// palette holds the colors of a terminal handler. A nil palette prints
// plain text.
type palette struct {
	clock *color.Color
	trace *color.Color
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
	key   *color.Color
}

func newPalette() *palette {
	return &palette{
		clock: color.New(color.FgHiBlack),
		trace: color.New(color.FgHiBlack),
		debug: color.New(color.FgMagenta),
		info:  color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
		key:   color.New(color.FgCyan),
	}
}

func (p *palette) level(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// Handler writes one line per record for a terminal: an optional clock,
// the level, the message, then key=value attributes. Attribute values pass
// through the same redaction as the JSON handler.
type Handler struct {
	level   slog.Leveler
	out     io.Writer
	mu      *sync.Mutex
	colors  *palette
	preset  []byte // attributes bound by WithAttrs, already formatted
	group   string // dotted prefix from WithGroup
	showAge bool
}

// NewHandler creates a terminal handler writing to out. Colors are used
// only when out is a terminal that accepts them.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	h := &Handler{
		level:   level,
		out:     out,
		mu:      &sync.Mutex{},
		showAge: level.Level() <= slog.LevelDebug,
	}
	if SupportsColor(out) {
		h.colors = newPalette()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats r into a buffer and writes it with a single call.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if h.showAge && !r.Time.IsZero() {
		buf.WriteString(h.paint(h.clockColor(), r.Time.Format(clockFormat)))
		buf.WriteByte(' ')
	}

	name := LevelName(r.Level)
	pad := strings.Repeat(" ", max(0, 5-len(name)))
	if h.colors != nil {
		name = h.colors.level(r.Level).Sprint(name)
	}
	buf.WriteString(name)
	buf.WriteString(pad)
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	buf.Write(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) clockColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.clock
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// writeAttr appends " key=value", flattening group attributes into dotted
// keys. Empty attributes are dropped.
func (h *Handler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, inner, ga)
		}
		return
	}

	key := prefix + a.Key
	if h.colors != nil {
		key = h.colors.key.Sprint(key)
	}

	value := fmt.Sprint(redact(a.Key, a.Value.Any()))
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}

	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(value)
}

// WithAttrs returns a handler that prints attrs on every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	buf.Write(h.preset)
	for _, a := range attrs {
		h.writeAttr(&buf, h.group, a)
	}

	clone := *h
	clone.preset = buf.Bytes()
	return &clone
}

// WithGroup returns a handler that prefixes later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}
