// Package tracelog implements ambient structured logging of reducer
// activity: one JSON line per dispatched action, recording its name,
// duration, and any resulting error. JSON Lines, mutex-guarded, size-based
// rotation — the same shape as an audit log, repurposed from SQL-audit
// entries to reducer-activity entries.
package tracelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Entry is a single trace log record.
type Entry struct {
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	DurationMS int64     `json:"duration_ms"`
	IsError    bool      `json:"is_error"`
	ErrorMsg   string    `json:"error,omitempty"`
}

// Logger writes JSON Lines trace entries to a file.
type Logger struct {
	mu        sync.Mutex
	f         *os.File
	enc       *json.Encoder
	path      string
	maxSizeMB int
}

// New creates a trace Logger. It creates parent directories (0o700) and
// opens the file in append mode (0o600). If maxSizeMB > 0, the file is
// rotated when it exceeds that size.
func New(path string, maxSizeMB int) (*Logger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("tracelog: create dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("tracelog: open file: %w", err)
	}

	return &Logger{
		f:         f,
		enc:       json.NewEncoder(f),
		path:      path,
		maxSizeMB: maxSizeMB,
	}, nil
}

// Log writes an entry as a JSON line. Safe for concurrent use. Calling Log
// on a nil Logger is a no-op, so tracing can be disabled by leaving the
// Logger pointer nil throughout the reducer.
func (l *Logger) Log(e Entry) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.enc.Encode(e)

	if l.maxSizeMB > 0 {
		l.rotateIfNeeded()
	}
}

// Trace records one reducer dispatch: actionName, how long it took, and the
// error it produced (if any). Intended to be called via defer with
// time.Now() captured at dispatch start.
func (l *Logger) Trace(actionName string, start time.Time, err error) {
	e := Entry{
		Timestamp:  start,
		Action:     actionName,
		DurationMS: time.Since(start).Milliseconds(),
		IsError:    err != nil,
	}
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	l.Log(e)
}

// Close closes the underlying file. Calling Close on a nil Logger is a
// no-op.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

func (l *Logger) rotateIfNeeded() {
	info, err := l.f.Stat()
	if err != nil {
		return
	}
	if info.Size() < int64(l.maxSizeMB)*1024*1024 {
		return
	}
	l.rotate()
}

func (l *Logger) rotate() {
	_ = l.f.Close()
	_ = os.Rename(l.path, l.path+".1")

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	l.f = f
	l.enc = json.NewEncoder(f)
}
