// Package logging wraps slog, keeping log records in memory and relaying them
// as events.
package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/leg100/timeago/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, emitting log records as events.
type Logger struct {
	logger *slog.Logger
	writer *writer

	*pubsub.Broker[Message]
}

// NewLogger constructs Logger. An unrecognised level falls back to the default
// level.
func NewLogger(opts Options) *Logger {
	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}

	logger := &Logger{}
	// Full subscribers are dropped silently: logging the drop would recurse.
	broker := pubsub.NewBroker[Message](nil)
	writer := &writer{broker: broker}

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, writer)...),
		&slog.HandlerOptions{Level: level},
	)

	logger.logger = slog.New(handler)
	logger.Broker = broker
	logger.writer = writer

	return logger
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger { return l.logger }

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// List lists the most recent log messages, oldest first.
func (l *Logger) List() []Message {
	return l.writer.list()
}
