// SPDX-License-Identifier: MIT

package progress

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/crs/iterative"
)

// Logger reports progress through a zap.Logger.
type Logger struct {
	log   *zap.Logger
	level zapcore.Level
}

var _ iterative.Reporter = (*Logger)(nil)

// NewLogger returns a sink logging at debug level. A nil logger is replaced
// by zap.NewNop().
func NewLogger(log *zap.Logger) *Logger {
	return NewLoggerAt(log, zapcore.DebugLevel)
}

// NewLoggerAt returns a sink logging at the given level.
func NewLoggerAt(log *zap.Logger, level zapcore.Level) *Logger {
	if log == nil {
		log = zap.NewNop()
	}

	return &Logger{log: log, level: level}
}

// Report implements iterative.Reporter.
func (l *Logger) Report(p iterative.Progress) {
	ce := l.log.Check(l.level, "solver iteration")
	if ce == nil {
		return
	}
	fields := []zap.Field{
		zap.Stringer("method", p.Method),
		zap.Int("iteration", p.Iteration),
		zap.Float64("metric", p.Metric),
	}
	if p.Method == iterative.MethodSOR {
		fields = append(fields, zap.Float64("lambda", p.Lambda))
	}
	ce.Write(fields...)
}
