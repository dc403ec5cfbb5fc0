package settlement

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// ZapLogger adapts a sugared zap logger to the Temporal SDK logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

var _ log.Logger = (*ZapLogger)(nil)

func NewZapLogger(logger *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (z *ZapLogger) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debugw(msg, keyvals...)
}

func (z *ZapLogger) Info(msg string, keyvals ...interface{}) {
	z.logger.Infow(msg, keyvals...)
}

func (z *ZapLogger) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warnw(msg, keyvals...)
}

func (z *ZapLogger) Error(msg string, keyvals ...interface{}) {
	z.logger.Errorw(msg, keyvals...)
}
