package testutils

import (
	"bytes"
	"log/slog"
	"sync"
)

// Logger is a slog.Logger writing into a buffer tests can inspect.
type Logger struct {
	*slog.Logger
	*SyncBuffer
}

// NewTestLogger returns a debug level logger that keeps all records in memory.
func NewTestLogger() *Logger {
	syncBuffer := new(SyncBuffer)

	return &Logger{
		slog.New(slog.NewTextHandler(syncBuffer, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
		syncBuffer,
	}
}

// GetLogs returns the accumulated log output as a string.
func (l Logger) GetLogs() string {
	return l.String()
}

// SyncBuffer is a bytes.Buffer guarded by a mutex, since handlers log from
// several goroutines.
type SyncBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

func (s *SyncBuffer) Write(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.buffer.Write(p) //nolint:wrapcheck
}

func (s *SyncBuffer) String() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.buffer.String()
}
