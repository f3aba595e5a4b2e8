package infrastructure

import (
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port on top of the application slog logger
type SlogLoggerAdapter struct {
	logger *logger.Logger
}

// NewSlogLoggerAdapter creates a Logger port backed by l; nil uses a default info-level JSON logger
func NewSlogLoggerAdapter(l *logger.Logger) *SlogLoggerAdapter {
	if l == nil {
		l = logger.New()
	}
	return &SlogLoggerAdapter{logger: l}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, toArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, toArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, toArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, toArgs(fields)...)
}

// With returns an adapter whose entries always carry key
func (l *SlogLoggerAdapter) With(key string, value interface{}) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: l.logger.WithField(key, value)}
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		value := field.Value
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		args = append(args, field.Key, value)
	}
	return args
}

// MultiLogger fans every entry out to all wrapped loggers
type MultiLogger struct {
	loggers []ports.Logger
}

// NewMultiLogger combines loggers; nil entries are skipped
func NewMultiLogger(loggers ...ports.Logger) *MultiLogger {
	kept := make([]ports.Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &MultiLogger{loggers: kept}
}

func (m *MultiLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Debug(msg, fields...)
	}
}

func (m *MultiLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Info(msg, fields...)
	}
}

func (m *MultiLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Warn(msg, fields...)
	}
}

func (m *MultiLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range m.loggers {
		l.Error(msg, fields...)
	}
}
