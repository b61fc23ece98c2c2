package fwffmt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadExplicitWidthsWithHeader(t *testing.T) {
	// Widths 4 and 2 with a 1-byte separator: "John 25" reads as "John", "25".
	path := writeTemp(t, "nameage\nJohn 25\nJane 30\n")
	opts := Options{SeparatorLength: 1, Widths: []int{4, 2}, HasHeader: true}
	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	df := frames[0].Frame
	if df.Height() != 2 {
		t.Fatalf("Height() = %d, want 2", df.Height())
	}
	if df.ColumnNames()[0] != "name" {
		t.Errorf("column 0 = %q, want name", df.ColumnNames()[0])
	}
}

func TestReadNoHeaderUsesFallbackNames(t *testing.T) {
	path := writeTemp(t, "1234\n5678\n")
	opts := Options{Widths: []int{2, 2}, HasHeader: false}
	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].Frame.ColumnNames()[0] != "column_1" {
		t.Errorf("fallback column name = %q", frames[0].Frame.ColumnNames()[0])
	}
}

func TestFlexibleWidthInfersFromHeader(t *testing.T) {
	path := writeTemp(t, "id   name\n1    Alice\n")
	opts := Options{FlexibleWidth: true, HasHeader: true}
	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].Frame.Width() == 0 {
		t.Error("expected at least one inferred column")
	}
}

func TestFlexibleWidthWithSeparatorAlignsDataRows(t *testing.T) {
	// Header has a 2-byte gap between "id" and "name", matching
	// SeparatorLength. Inferred widths must skip exactly that gap the same
	// way splitFixed does when it carves the data rows, or the second
	// column's values land off by the gap width.
	path := writeTemp(t, "id  name\n42  Jane\n07  Amit\n")
	opts := Options{FlexibleWidth: true, SeparatorLength: 2, HasHeader: true}
	frames, err := NewReader(opts).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	df := frames[0].Frame
	names := df.ColumnNames()
	if len(names) != 2 {
		t.Fatalf("got %d columns, want 2: %v", len(names), names)
	}
	if names[0] != "id" || names[1] != "name" {
		t.Errorf("column names = %v, want [id name]", names)
	}
	got := df.Columns[1].Data
	want := []string{"Jane", "Amit"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("row %d col 1 = %q, want %q", i, got[i], w)
		}
	}
}

func TestEmptyFileProducesEmptyFrame(t *testing.T) {
	path := writeTemp(t, "")
	frames, err := NewReader(Options{}).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if frames[0].Frame.Height() != 0 {
		t.Errorf("expected empty frame, got height %d", frames[0].Frame.Height())
	}
}
