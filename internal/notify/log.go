package notify

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log delivers messages as structured log records.
type Log struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewLog creates a notifier that logs at info level. A nil logger
// discards everything.
func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger, level: zapcore.InfoLevel}
}

// WithLevel returns a copy of l logging at level.
func (l *Log) WithLevel(level zapcore.Level) *Log {
	return &Log{logger: l.logger, level: level}
}

// Notify writes one "alert" record carrying message.
func (l *Log) Notify(message string) error {
	l.logger.Log(l.level, "alert", zap.String("message", message))
	return nil
}
