package external

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
)

// setupLoggerMock accepts any logger call with up to four fields
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	for fields := 0; fields <= 4; fields++ {
		args := make([]interface{}, fields)
		for i := range args {
			args[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, args...).Maybe()
	}

	return mockLogger
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func (l *testLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}
