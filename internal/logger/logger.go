package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger
type Config struct {
	Level      string
	EnableJSON bool
}

// New builds the CLI / server logger. Debug lowers the level to debug;
// otherwise only warnings and errors are written so report output on
// stdout stays clean.
func New(debug bool) (*zap.Logger, error) {
	level := "warn"
	if debug {
		level = "debug"
	}
	return NewWithConfig(Config{Level: level})
}

// NewWithConfig builds a logger from an explicit configuration.
func NewWithConfig(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.EnableJSON {
		// structured output for the HTTP server
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.InitialFields = map[string]interface{}{
			"service": "form11",
		}
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.DisableStacktrace = true
	}
	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	return zapConfig.Build()
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
