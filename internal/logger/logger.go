package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with appropriate configuration
func NewLogger(development bool) (*zap.Logger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	return config.Build()
}

// MustNewLogger creates a new logger and panics if it fails
func MustNewLogger(development bool) *zap.Logger {
	logger, err := NewLogger(development)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}

// Sugared wraps NewLogger and returns the sugared variant most components
// consume through the narrow Logger interfaces they declare.
func Sugared(development bool) (*zap.SugaredLogger, error) {
	l, err := NewLogger(development)
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Nop returns a no-op sugared logger for tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// ZapAdapter exposes a zap.SugaredLogger through the key/value logging
// methods the domain packages declare on their local Logger interfaces.
type ZapAdapter struct {
	sugar *zap.SugaredLogger
}

// NewZapAdapter wraps a zap logger for injection into domain components.
func NewZapAdapter(l *zap.Logger) *ZapAdapter {
	return &ZapAdapter{sugar: l.Sugar()}
}

// Info logs at info level with structured key/value pairs.
func (a *ZapAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.sugar.Infow(msg, keysAndValues...)
}

// Warn logs at warn level with structured key/value pairs.
func (a *ZapAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.sugar.Warnw(msg, keysAndValues...)
}

// Error logs at error level with structured key/value pairs.
func (a *ZapAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.sugar.Errorw(msg, keysAndValues...)
}
