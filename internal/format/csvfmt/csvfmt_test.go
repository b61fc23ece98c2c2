package csvfmt

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

func TestReadWithHeader(t *testing.T) {
	path := writeTemp(t, "data.csv", "a,b\n1,x\n2,y\n")
	frames, err := NewReader(DefaultOptions()).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	df := frames[0].Frame
	if df.Height() != 2 || df.Width() != 2 {
		t.Fatalf("got %dx%d frame, want 2x2", df.Height(), df.Width())
	}
	if df.ColumnNames()[0] != "a" {
		t.Errorf("first column name = %q, want a", df.ColumnNames()[0])
	}
}

func TestReadWithoutHeader(t *testing.T) {
	path := writeTemp(t, "data.csv", "1,x\n2,y\n")
	opts := DefaultOptions()
	opts.HasHeader = false
	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	df := frames[0].Frame
	if df.Height() != 2 {
		t.Errorf("Height() = %d, want 2", df.Height())
	}
	if df.ColumnNames()[0] != "column_1" {
		t.Errorf("fallback header = %q, want column_1", df.ColumnNames()[0])
	}
}

func TestTSVSeparator(t *testing.T) {
	path := writeTemp(t, "data.tsv", "a\tb\n1\tx\n")
	opts := DefaultOptions()
	opts.Separator = '\t'
	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].Frame.Height() != 1 {
		t.Errorf("Height() = %d, want 1", frames[0].Frame.Height())
	}
}

func TestRoundTrip(t *testing.T) {
	src := dataframe.New([]*dataframe.Column{
		{Name: "a", Type: dataframe.TypeString, Data: []any{"1", "2"}},
		{Name: "b", Type: dataframe.TypeString, Data: []any{"x", "y"}},
	})
	path := filepath.Join(t.TempDir(), "out.csv")
	opts := DefaultOptions()
	if err := NewWriter(opts).Write(path, src); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	got := frames[0].Frame
	if got.Height() != src.Height() || got.Width() != src.Width() {
		t.Fatalf("round trip shape mismatch: got %dx%d, want %dx%d", got.Height(), got.Width(), src.Height(), src.Width())
	}
	for i, name := range got.ColumnNames() {
		if name != src.ColumnNames()[i] {
			t.Errorf("column %d name = %q, want %q", i, name, src.ColumnNames()[i])
		}
	}
}

func TestSuggestedNameStripsExtension(t *testing.T) {
	path := writeTemp(t, "orders.csv", "a\n1\n")
	frames, err := NewReader(DefaultOptions()).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].SuggestedName != "orders" {
		t.Errorf("SuggestedName = %q, want orders", frames[0].SuggestedName)
	}
}
