// Package logger holds the process-wide zap logger. InitLogger must run
// before handlers or services are constructed; they capture Log at
// build time.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hrplatform/freelancer-api/internal/constants"
)

// Log is the process-wide logger. Nil until InitLogger runs.
var Log *zap.Logger

// InitLogger builds the global logger for a deployment stage. Prod emits
// JSON with service metadata; every other stage emits a colored console
// format. LOG_LEVEL overrides the default info threshold.
func InitLogger(stage string) {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	var cfg zap.Config
	if stage == constants.StageProd {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.MessageKey = "message"
		cfg.InitialFields = map[string]interface{}{
			"service": "freelancer-api",
			"stage":   stage,
		}
		cfg.DisableStacktrace = level > zapcore.DebugLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = logger
}

func parseLevel(raw string) zapcore.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

// Info logs a message at InfoLevel.
func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

// Fatal logs a message at FatalLevel, then exits.
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}
