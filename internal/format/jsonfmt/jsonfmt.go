// Package jsonfmt implements the FormatReader/FormatWriter collaborators for
// the json and jsonl import/export formats, decoding with
// github.com/goccy/go-json for its permissive handling of ragged,
// unknown-shape records.
package jsonfmt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/format"
)

// Lines selects JSON-lines (one object per line) vs. a single JSON array.
type Reader struct {
	Lines bool
}

// NewReader builds a Reader for json (Lines=false) or jsonl (Lines=true).
func NewReader(lines bool) *Reader { return &Reader{Lines: lines} }

func (r *Reader) Read(path string) ([]format.NamedFrame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if r.Lines {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			var rec map[string]any
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	} else {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []format.NamedFrame{{SuggestedName: name, Frame: recordsToFrame(records)}}, nil
}

// recordsToFrame builds a DataFrame whose columns are the union of keys
// across all records; records missing a key get a nil (null) cell. Keys
// first seen in a later record come after those of earlier records, but
// keys first seen in the same record follow Go map iteration, so their
// relative order is not defined.
func recordsToFrame(records []map[string]any) *dataframe.DataFrame {
	var order []string
	seen := map[string]bool{}
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}

	cols := make([]*dataframe.Column, len(order))
	for i, name := range order {
		cols[i] = &dataframe.Column{Name: name, Type: dataframe.TypeString}
	}
	for _, rec := range records {
		for i, name := range order {
			cols[i].Data = append(cols[i].Data, rec[name])
		}
	}
	return dataframe.New(cols)
}

// Writer encodes a DataFrame as json (array of objects) or jsonl
// (one object per line).
type Writer struct {
	Lines bool
}

// NewWriter builds a Writer for json (Lines=false) or jsonl (Lines=true).
func NewWriter(lines bool) *Writer { return &Writer{Lines: lines} }

func (w *Writer) Write(path string, frame *dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	names := frame.ColumnNames()
	enc := json.NewEncoder(f)

	if !w.Lines {
		records := make([]map[string]any, frame.Height())
		for r := 0; r < frame.Height(); r++ {
			row := frame.Row(r)
			rec := make(map[string]any, len(names))
			for i, name := range names {
				rec[name] = row[i]
			}
			records[r] = rec
		}
		return enc.Encode(records)
	}

	for r := 0; r < frame.Height(); r++ {
		row := frame.Row(r)
		rec := make(map[string]any, len(names))
		for i, name := range names {
			rec[name] = row[i]
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
