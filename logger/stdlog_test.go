package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStdLog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	std := NewStdLog("http", slog.LevelWarn, log)
	std.Printf("TLS handshake error from %s", "10.0.0.1:5555")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=http")
	assert.Contains(t, out, `msg="TLS handshake error from 10.0.0.1:5555"`)
}
