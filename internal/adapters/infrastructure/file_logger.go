package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// FileLoggerAdapter appends one JSON object per entry to a gateway traffic log
type FileLoggerAdapter struct {
	filePath string
	file     *os.File
	now      func() time.Time
	mutex    sync.Mutex
}

// NewFileLoggerAdapter opens logPath for appending, creating parent directories
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		file:     file,
		now:      time.Now,
	}, nil
}

// Path returns the log file location
func (f *FileLoggerAdapter) Path() string {
	return f.filePath
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write("DEBUG", msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write("INFO", msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write("WARN", msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write("ERROR", msg, fields)
}

// Close flushes and closes the log file; later entries are dropped
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) write(level, msg string, fields []ports.Field) {
	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		value := field.Value
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		entry[field.Key] = value
	}
	// reserved keys win over fields with the same name
	entry["timestamp"] = f.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %s"}`, err))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write gateway log entry: %v\n", err)
	}
}

var _ io.Closer = (*FileLoggerAdapter)(nil)
