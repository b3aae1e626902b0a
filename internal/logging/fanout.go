// Package logging provides the [slog.Handler]s used by the demo command.
package logging

import (
	"context"
	"errors"
	"log/slog"
)

type fanout []slog.Handler

// Fanout returns a handler which passes each record
// to every handler that is enabled for its level.
func Fanout(handlers ...slog.Handler) slog.Handler {
	return fanout(handlers)
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanout, len(f))
	for i, h := range f {
		derived[i] = h.WithAttrs(attrs)
	}
	return derived
}

func (f fanout) WithGroup(name string) slog.Handler {
	derived := make(fanout, len(f))
	for i, h := range f {
		derived[i] = h.WithGroup(name)
	}
	return derived
}
