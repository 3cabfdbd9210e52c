package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetUserID(ctx))

	ctx = WithTraceID(ctx, "trace-1")
	ctx = WithUserID(ctx, "42")
	ctx = WithFileName(ctx, "G0418.xlsx")

	assert.Equal(t, "trace-1", GetTraceID(ctx))
	assert.Equal(t, "42", GetUserID(ctx))
	assert.Equal(t, "G0418.xlsx", GetFileName(ctx))
}

func TestLogger_AttachesContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	ctx := WithUserID(WithTraceID(context.Background(), "trace-1"), "42")
	log.Info(ctx, "file processed", "codes", 3, "error", errors.New("boom"), 7, "ignored")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "42", fields["user_id"])
	assert.EqualValues(t, 3, fields["codes"])
	assert.Equal(t, "boom", fields["error"])
	assert.NotContains(t, fields, "file_name")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}
