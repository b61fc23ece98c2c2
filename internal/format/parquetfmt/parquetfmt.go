// Package parquetfmt implements the FormatReader/FormatWriter collaborators
// for Parquet files, built on github.com/apache/arrow-go/v18's parquet/file
// and parquet/pqarrow packages for Arrow-aware Parquet I/O.
package parquetfmt

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/format"
	"github.com/tabiew-go/tabiew/internal/format/arrowconv"
)

// Reader decodes a Parquet file into a single NamedFrame.
type Reader struct{}

// NewReader builds a parquetfmt Reader.
func NewReader() *Reader { return &Reader{} }

func (r *Reader) Read(path string) ([]format.NamedFrame, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	fileReader, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, arrowconv.Pool)
	if err != nil {
		return nil, err
	}

	table, err := fileReader.ReadTable(context.Background())
	if err != nil {
		return nil, err
	}
	defer table.Release()

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	var combined *dataframe.DataFrame
	for tr.Next() {
		rec := tr.Record()
		df := arrowconv.ToFrame(rec)
		if combined == nil {
			combined = df
			continue
		}
		for i, c := range combined.Columns {
			c.Data = append(c.Data, df.Columns[i].Data...)
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if combined == nil {
		combined = dataframe.Empty()
	}
	return []format.NamedFrame{{SuggestedName: name, Frame: combined}}, nil
}

// Writer encodes a DataFrame as a Parquet file.
type Writer struct{}

// NewWriter builds a parquetfmt Writer.
func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Write(path string, frame *dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rec := arrowconv.ToRecord(frame)
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithAllocator(arrowconv.Pool))
	writer, err := pqarrow.NewFileWriter(rec.Schema(), f, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return err
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}
