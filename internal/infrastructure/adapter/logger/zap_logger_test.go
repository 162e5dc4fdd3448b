package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

func newObservedLogger(level core.LogLevel) (core.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	return NewZapLoggerFrom(zap.New(obsCore), level), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedLogger(core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]any{"account_id": "acc-1"})
	log.Warn("warned", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, "acc-1", entry.ContextMap()["account_id"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now shown", nil)
	assert.Equal(t, 1, logs.FilterMessage("now shown").Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("suppressed", nil)
	log.Error("failed", nil)
	assert.Equal(t, 0, logs.FilterMessage("suppressed").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed").Len())
}

func TestZapLogger_With(t *testing.T) {
	log, logs := newObservedLogger(core.LogLevelInfo)

	child := log.With(map[string]any{"request_id": "req-7"})
	child.Info("handled", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-7", fields["request_id"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel(" error "))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"k": "v"}))
	assert.NoError(t, log.Flush())
}
