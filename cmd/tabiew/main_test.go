package main

import (
	"testing"

	"github.com/tabiew-go/tabiew/internal/action"
)

func TestImportActionFor_DispatchesByExtension(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"data.csv", "csv"},
		{"data.tsv", "csv"},
		{"data.json", "json"},
		{"data.jsonl", "jsonlines"},
		{"data.ndjson", "jsonlines"},
		{"data.parquet", "parquet"},
		{"data.arrow", "arrow"},
		{"data.db", "sqlite"},
		{"data.unknown", "csv"},
	}

	for _, c := range cases {
		got := kindOf(importActionFor(c.path, ',', true))
		if got != c.want {
			t.Errorf("%s: expected kind %q, got %q", c.path, c.want, got)
		}
	}
}

func kindOf(act action.Action) string {
	switch act.(type) {
	case action.ImportCSV:
		return "csv"
	case action.ImportJSON:
		return "json"
	case action.ImportJSONLines:
		return "jsonlines"
	case action.ImportParquet:
		return "parquet"
	case action.ImportArrow:
		return "arrow"
	case action.ImportSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

func TestImportActionFor_TSVUsesTabSeparator(t *testing.T) {
	got, ok := importActionFor("rows.tsv", ',', true).(action.ImportCSV)
	if !ok {
		t.Fatalf("expected ImportCSV for .tsv")
	}
	if got.Separator != '\t' {
		t.Fatalf("expected tab separator for .tsv, got %q", got.Separator)
	}
}

func TestImportActionFor_DefaultUsesGivenSeparatorAndHeaderFlag(t *testing.T) {
	got, ok := importActionFor("rows.csv", ';', false).(action.ImportCSV)
	if !ok {
		t.Fatalf("expected ImportCSV for .csv")
	}
	if got.Separator != ';' {
		t.Fatalf("expected separator ';', got %q", got.Separator)
	}
	if got.HasHeader {
		t.Fatalf("expected HasHeader false")
	}
}

func TestImportActionsFor_OneActionPerPath(t *testing.T) {
	acts := importActionsFor([]string{"a.csv", "b.json"}, ",", true)
	if len(acts) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(acts))
	}
}
