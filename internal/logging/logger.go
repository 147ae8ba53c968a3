// Package logging holds the process-wide zap logger. Call sites use the
// package functions with alternating key/value pairs.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "airport-lookup"

// Replaced by Init. Until then log calls are discarded, which keeps tests quiet.
var globalLogger = zap.NewNop().Sugar()

// Init builds the JSON logger for appEnv. Production logs from info up,
// every other environment from debug up.
func Init(appEnv string) error {
	config := zap.NewDevelopmentConfig()
	if appEnv == "production" {
		config = zap.NewProductionConfig()
	}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{
		"service": serviceName,
		"env":     appEnv,
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	use(logger)
	return nil
}

func use(logger *zap.Logger) {
	globalLogger = logger.Sugar()
}

// Close flushes buffered entries.
func Close() error {
	return globalLogger.Sync()
}

func Info(message string, kv ...any) {
	globalLogger.Infow(message, kv...)
}

func Debug(message string, kv ...any) {
	globalLogger.Debugw(message, kv...)
}

func Warn(message string, kv ...any) {
	globalLogger.Warnw(message, kv...)
}

func Error(message string, kv ...any) {
	globalLogger.Errorw(message, kv...)
}

// WithRequest scopes a logger to one HTTP request.
func WithRequest(requestID, method, endpoint string) *zap.SugaredLogger {
	return globalLogger.With(
		"request_id", requestID,
		"method", method,
		"endpoint", endpoint,
	)
}
