package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" WARNING "))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestLogFallsBackToGlobal(t *testing.T) {
	assert.Same(t, global, Log(context.Background()))

	l := zap.NewNop().Sugar()
	ctx := ContextWithLogger(context.Background(), l)
	assert.Same(t, l, Log(ctx))
}
