package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	s.Debug(context.Background(), "request", "method", "GET")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request", record["msg"])
	assert.Equal(t, "GET", record["method"])
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	child := s.With("component", "session")
	child.Info(context.Background(), "token applied")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "session", record["component"])
}

func TestNewNop_DiscardsSilently(t *testing.T) {
	assert.NotPanics(t, func() {
		l := NewNop()
		l.Debug(context.Background(), "x")
		l.Info(context.Background(), "x")
		l.Warn(context.Background(), "x")
		l.Error(context.Background(), "x")
	})
}
