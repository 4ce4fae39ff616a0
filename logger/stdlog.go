// Package logger adapts slog for APIs that still want a *log.Logger.
package logger

import (
	"bytes"
	"context"
	"log"
	"log/slog"

	commonlogger "go.ntppool.org/common/logger"
)

type stdLoggerish struct {
	key   string
	level slog.Level
	log   *slog.Logger
}

// NewStdLog returns a *log.Logger writing each line to log at level,
// with the line as "msg" and key as the slog message.
func NewStdLog(key string, level slog.Level, log *slog.Logger) *log.Logger {
	if log == nil {
		log = commonlogger.Setup()
	}
	return newStdLog(&stdLoggerish{
		key:   key,
		level: level,
		log:   log,
	})
}

func newStdLog(w *stdLoggerish) *log.Logger {
	return log.New(w, "", 0)
}

func (l *stdLoggerish) Write(p []byte) (int, error) {
	msg := string(bytes.TrimRight(p, "\n"))
	l.log.Log(context.Background(), l.level, l.key, "msg", msg)
	return len(p), nil
}
