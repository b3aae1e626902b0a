package lruslog_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/djdv/go-lru"
	"github.com/djdv/go-lru/lruslog"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) == 0 && attr.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return attr
		},
	}))
}

func lines(buf *bytes.Buffer) []string {
	defer buf.Reset()
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestObserver(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	cache, err := lru.NewObserved(2,
		lruslog.New[string, string](newLogger(&buf, slog.LevelDebug)))
	require.NoError(err)

	cache.Set("k1", "val1")
	cache.Set("k2", "val2")
	require.Equal([]string{
		`level=INFO msg="add to cache" key=k1 value=val1`,
		`level=INFO msg="add to cache" key=k2 value=val2`,
	}, lines(&buf))

	_, ok := cache.Get("k3")
	require.False(ok)
	require.Empty(buf.String())

	_, ok = cache.Get("k1")
	require.True(ok)
	require.Equal([]string{
		`level=INFO msg="get from cache" value=val1`,
		`level=DEBUG msg="move to back of recency order" key=k1`,
	}, lines(&buf))

	cache.Set("k3", "val3")
	require.Equal([]string{
		`level=WARN msg="remove from cache" key=k2`,
		`level=INFO msg="add to cache" key=k3 value=val3`,
	}, lines(&buf))
}

func TestObserverLevel(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	cache, err := lru.NewObserved(1,
		lruslog.New[int, int](newLogger(&buf, slog.LevelInfo)))
	require.NoError(err)

	cache.Set(1, 1)
	buf.Reset()
	cache.Set(1, 2) // Promotion only; debug is filtered.
	require.Empty(buf.String())
}

func TestObserverDefaultLogger(t *testing.T) {
	require := require.New(t)

	var (
		buf      bytes.Buffer
		previous = slog.Default()
	)
	slog.SetDefault(newLogger(&buf, slog.LevelDebug))
	t.Cleanup(func() { slog.SetDefault(previous) })

	observer := lruslog.New[string, int](nil)
	observer.Evicted("gone")
	require.Equal([]string{`level=WARN msg="remove from cache" key=gone`}, lines(&buf))
}
