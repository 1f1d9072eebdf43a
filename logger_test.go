package multivec

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug))
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithCount(4).WithDim(128).LogGram(4, 4, 2)

	out := buf.String()
	assert.Contains(t, out, "gram computed")
	assert.Contains(t, out, "count=4")
	assert.Contains(t, out, "dimension=128")
	assert.Contains(t, out, "workers=2")
}

func TestLogOrthogonalizeRankWarning(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogOrthogonalize(4, 3)
	assert.Contains(t, buf.String(), "dependent elements")
}
