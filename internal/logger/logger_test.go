package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/hrplatform/freelancer-api/internal/logger"
)

func TestInitLogger_SetsGlobalLogger(t *testing.T) {
	logger.InitLogger("test")
	require.NotNil(t, logger.Log)
	assert.True(t, logger.Log.Core().Enabled(zapcore.InfoLevel))
}

func TestInitLogger_HonorsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	logger.InitLogger("test")
	require.NotNil(t, logger.Log)
	assert.False(t, logger.Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Log.Core().Enabled(zapcore.WarnLevel))
}
