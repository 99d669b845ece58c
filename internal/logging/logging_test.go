package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	assert.ErrorContains(t, err, `log level "loud"`)

	l, err := New("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestLevelsSplitByStream(t *testing.T) {
	var out, errOut bytes.Buffer
	l := newLogger(zapcore.InfoLevel, zapcore.AddSync(&out), zapcore.AddSync(&errOut))

	l.Debug("hidden")
	l.Info("scene started", zap.String("scene", "textures"))
	l.Error("shader diagnostic")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "scene started")
	assert.Contains(t, out.String(), "textures")
	assert.NotContains(t, out.String(), "shader diagnostic")
	assert.Contains(t, errOut.String(), "shader diagnostic")
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, zap.L(), From(ctx))

	l := zap.NewNop()
	ctx = Context(ctx, l)
	assert.Same(t, l, From(ctx))

	sub, ctx := FromWithFields(ctx, zap.String("scene", "x"))
	assert.Same(t, sub, From(ctx))
}
