// Package csvfmt implements the FormatReader/FormatWriter collaborators for
// the CSV and TSV dialects (spec.md §4.2.2 CSV options, §4.2.1 export).
package csvfmt

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/format"
)

// Options controls the CSV dialect used for both import and export.
type Options struct {
	Separator rune
	Quote     rune
	HasHeader bool
}

// DefaultOptions is the `,` separator, `"` quote, header-present dialect
// spec.md §4.2.1 names as the default for both csv and tsv (tsv overrides
// Separator to '\t').
func DefaultOptions() Options {
	return Options{Separator: ',', Quote: '"', HasHeader: true}
}

// Reader decodes a CSV/TSV file into a single NamedFrame.
type Reader struct {
	Opts Options
}

// NewReader builds a Reader with the given dialect options.
func NewReader(opts Options) *Reader { return &Reader{Opts: opts} }

func (r *Reader) Read(path string) ([]format.NamedFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = r.Opts.Separator
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []format.NamedFrame{{SuggestedName: suggestedName(path), Frame: dataframe.Empty()}}, nil
	}

	var header []string
	start := 0
	width := len(records[0])
	if r.Opts.HasHeader {
		header = records[0]
		start = 1
	} else {
		header = make([]string, width)
		for i := range header {
			header[i] = columnLabel(i)
		}
	}

	cols := make([]*dataframe.Column, width)
	for i := range cols {
		cols[i] = &dataframe.Column{Name: header[i], Type: dataframe.TypeString}
	}
	for _, rec := range records[start:] {
		for i := 0; i < width; i++ {
			var v any
			if i < len(rec) {
				v = rec[i]
			} else {
				v = ""
			}
			cols[i].Data = append(cols[i].Data, v)
		}
	}

	return []format.NamedFrame{{SuggestedName: suggestedName(path), Frame: dataframe.New(cols)}}, nil
}

// Writer encodes a DataFrame as CSV/TSV.
type Writer struct {
	Opts Options
}

// NewWriter builds a Writer with the given dialect options.
func NewWriter(opts Options) *Writer { return &Writer{Opts: opts} }

func (w *Writer) Write(path string, frame *dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = w.Opts.Separator

	if w.Opts.HasHeader {
		if err := cw.Write(frame.ColumnNames()); err != nil {
			return err
		}
	}
	for r := 0; r < frame.Height(); r++ {
		row := frame.Row(r)
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = cellString(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func suggestedName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func columnLabel(i int) string {
	// fallback label for headerless imports: column_1, column_2, ...
	return "column_" + strconv.Itoa(i+1)
}
