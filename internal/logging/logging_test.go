package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/djdv/go-lru/internal/logging"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, time.March, 1, 12, 30, 45, 123_000_000, time.UTC)

func record(level slog.Level, msg string, args ...any) slog.Record {
	r := slog.NewRecord(stamp, level, msg, 0)
	r.Add(args...)
	return r
}

func TestTabHandler(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	h := logging.NewTabHandler(&buf, logging.TabOptions{
		Level:  slog.LevelDebug,
		Prefix: "|| ",
		Name:   "total",
	})
	require.NoError(h.Handle(context.Background(),
		record(slog.LevelInfo, "add to cache", "key", "k1", "value", "val1")))
	require.Equal(
		"|| 2024-03-01 12:30:45,123\tINFO\ttotal\tadd to cache key=\"k1\" value=\"val1\"\n",
		buf.String())
}

func TestTabHandlerAttrsAndGroups(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	h := logging.NewTabHandler(&buf, logging.TabOptions{}).
		WithAttrs([]slog.Attr{slog.Int("capacity", 2)}).
		WithGroup("cache")
	require.False(h.Enabled(context.Background(), slog.LevelDebug))
	require.NoError(h.Handle(context.Background(),
		record(slog.LevelWarn, "remove from cache", "key", "k2")))
	require.Equal(
		"2024-03-01 12:30:45,123\tWARN\tremove from cache capacity=\"2\" cache.key=\"k2\"\n",
		buf.String())
}

type failing struct{ slog.Handler }

func (failing) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestFanout(t *testing.T) {
	require := require.New(t)

	var file, console bytes.Buffer
	h := logging.Fanout(
		logging.NewTabHandler(&file, logging.TabOptions{Level: slog.LevelInfo}),
		logging.NewTabHandler(&console, logging.TabOptions{Level: slog.LevelDebug}),
	)
	require.True(h.Enabled(context.Background(), slog.LevelDebug))
	require.NoError(h.Handle(context.Background(),
		record(slog.LevelDebug, "move to back of recency order", "key", "k1")))
	require.Empty(file.String())
	require.Contains(console.String(), "DEBUG\tmove to back of recency order key=\"k1\"")

	broken := logging.Fanout(failing{logging.NewTabHandler(&file, logging.TabOptions{})})
	require.EqualError(broken.Handle(context.Background(),
		record(slog.LevelError, "boom")), "disk full")
}
