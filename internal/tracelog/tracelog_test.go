package tracelog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestLogWritesJSONLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")
	l, err := New(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.Log(Entry{
		Timestamp:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Action:     "TableGotoTop",
		DurationMS: 2,
		IsError:    false,
	})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("invalid JSON line: %v\ndata: %s", err, data)
	}
	if e.Action != "TableGotoTop" {
		t.Errorf("action = %q, want %q", e.Action, "TableGotoTop")
	}
	if e.IsError {
		t.Error("IsError should be false")
	}
}

func TestTraceRecordsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")
	l, err := New(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.Trace("QueryExecute", time.Now(), errors.New("no current frame"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if !e.IsError {
		t.Error("IsError should be true")
	}
	if e.ErrorMsg != "no current frame" {
		t.Errorf("error = %q, want %q", e.ErrorMsg, "no current frame")
	}
}

func TestMultipleEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")
	l, err := New(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	for i := 0; i < 5; i++ {
		l.Log(Entry{Timestamp: time.Now(), Action: "TableGotoDown"})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Errorf("got %d lines, want 5", len(lines))
	}
}

func TestNilReceiver(t *testing.T) {
	var l *Logger
	l.Log(Entry{Action: "Quit"})
	l.Trace("Quit", time.Now(), nil)
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger returned error: %v", err)
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")
	l, err := New(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	bigAction := strings.Repeat("x", 10000)
	for i := 0; i < 120; i++ {
		l.Log(Entry{Action: bigAction})
	}

	if _, err := os.Stat(path + ".1"); os.IsNotExist(err) {
		t.Error("rotation backup file does not exist")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > 1024*1024 {
		t.Errorf("current file size %d exceeds 1 MB after rotation", info.Size())
	}
}

func TestFilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.jsonl")
	l, err := New(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	l.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file permissions = %o, want 600", perm)
	}
}

func TestDirectoryCreation(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	path := filepath.Join(nested, "trace.jsonl")
	l, err := New(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	l.Close()

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("nested directory was not created")
	}
}
