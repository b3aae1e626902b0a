// Package lruslog reports [lru.Cache] events to a [slog.Logger].
package lruslog

import (
	"context"
	"log/slog"

	"github.com/djdv/go-lru"
)

// Messages used for each event.
const (
	AccessedMessage = "get from cache"
	PromotedMessage = "move to back of recency order"
	EvictedMessage  = "remove from cache"
	AddedMessage    = "add to cache"
)

type observer[Key comparable, Value any] struct {
	logger *slog.Logger
}

// New returns an [lru.Observer] which logs
// accesses and additions at [slog.LevelInfo],
// promotions at [slog.LevelDebug],
// and evictions at [slog.LevelWarn].
// A nil logger uses [slog.Default] at the time of each event.
func New[Key comparable, Value any](logger *slog.Logger) lru.Observer[Key, Value] {
	return observer[Key, Value]{logger: logger}
}

func (o observer[Key, Value]) log(level slog.Level, msg string, args ...any) {
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), level, msg, args...)
}

func (o observer[_, Value]) Accessed(value Value) {
	o.log(slog.LevelInfo, AccessedMessage, slog.Any("value", value))
}

func (o observer[Key, _]) Promoted(key Key) {
	o.log(slog.LevelDebug, PromotedMessage, slog.Any("key", key))
}

func (o observer[Key, _]) Evicted(key Key) {
	o.log(slog.LevelWarn, EvictedMessage, slog.Any("key", key))
}

func (o observer[Key, Value]) Added(key Key, value Value) {
	o.log(slog.LevelInfo, AddedMessage,
		slog.Any("key", key), slog.Any("value", value))
}
