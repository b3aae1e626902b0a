package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// TabOptions configures [NewTabHandler].
type TabOptions struct {
	// Level is the minimum level written.
	Level slog.Leveler
	// Prefix starts each line, e.g. "|| ".
	Prefix string
	// Name, if set, is written as a column after the level.
	Name string
	// TimeFormat defaults to "2006-01-02 15:04:05,000".
	TimeFormat string
}

// TabHandler writes one tab separated line per record:
// prefix, time, level, name (if any), and message followed by attributes.
type TabHandler struct {
	opts   TabOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  string // Preformatted from WithAttrs.
	groups string // Dotted key prefix from WithGroup.
}

const defaultTimeFormat = "2006-01-02 15:04:05,000"

// NewTabHandler returns a [TabHandler] writing to w.
func NewTabHandler(w io.Writer, opts TabOptions) *TabHandler {
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = defaultTimeFormat
	}
	return &TabHandler{opts: opts, mu: new(sync.Mutex), w: w}
}

func (h *TabHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *TabHandler) Handle(_ context.Context, record slog.Record) error {
	var line strings.Builder
	line.WriteString(h.opts.Prefix)
	if !record.Time.IsZero() {
		line.WriteString(record.Time.Format(h.opts.TimeFormat))
	}
	line.WriteByte('\t')
	line.WriteString(record.Level.String())
	line.WriteByte('\t')
	if h.opts.Name != "" {
		line.WriteString(h.opts.Name)
		line.WriteByte('\t')
	}
	line.WriteString(record.Message)
	line.WriteString(h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, h.groups, attr)
		return true
	})
	line.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line.String())
	return err
}

func (h *TabHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var formatted strings.Builder
	formatted.WriteString(h.attrs)
	for _, attr := range attrs {
		writeAttr(&formatted, h.groups, attr)
	}
	derived := *h
	derived.attrs = formatted.String()
	return &derived
}

func (h *TabHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	derived := *h
	derived.groups = h.groups + name + "."
	return &derived
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			writeAttr(b, prefix, member)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%q", prefix, attr.Key, attr.Value.String())
}
