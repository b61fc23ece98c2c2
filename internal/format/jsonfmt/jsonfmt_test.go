package jsonfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tabiew-go/tabiew/internal/dataframe"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadJSONArray(t *testing.T) {
	path := writeTemp(t, "data.json", `[{"a":1,"b":"x"},{"a":2,"b":"y"}]`)
	frames, err := NewReader(false).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	df := frames[0].Frame
	if df.Height() != 2 || df.Width() != 2 {
		t.Fatalf("got %dx%d, want 2x2", df.Height(), df.Width())
	}
}

func TestReadJSONLines(t *testing.T) {
	path := writeTemp(t, "data.jsonl", "{\"a\":1}\n{\"a\":2}\n")
	frames, err := NewReader(true).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].Frame.Height() != 2 {
		t.Errorf("Height() = %d, want 2", frames[0].Frame.Height())
	}
}

func TestReadRaggedRecordsUnionsKeys(t *testing.T) {
	path := writeTemp(t, "data.jsonl", "{\"a\":1}\n{\"b\":2}\n")
	frames, err := NewReader(true).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	df := frames[0].Frame
	if df.Width() != 2 {
		t.Fatalf("Width() = %d, want 2 (union of a, b)", df.Width())
	}
	if df.Column("a").Data[1] != nil {
		t.Error("row 1 should have a null `a` cell")
	}
}

func TestWriteJSONLinesThenRead(t *testing.T) {
	src := dataframe.New([]*dataframe.Column{
		{Name: "a", Type: dataframe.TypeInt, Data: []any{int64(1), int64(2)}},
	})
	path := filepath.Join(t.TempDir(), "out.jsonl")
	if err := NewWriter(true).Write(path, src); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	frames, err := NewReader(true).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].Frame.Height() != 2 {
		t.Errorf("round trip Height() = %d, want 2", frames[0].Frame.Height())
	}
}
