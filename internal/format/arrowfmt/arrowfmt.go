// Package arrowfmt implements the FormatReader/FormatWriter collaborators
// for the Arrow IPC file format, built on github.com/apache/arrow-go/v18's
// arrow/ipc reader and writer.
package arrowfmt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/ipc"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/format"
	"github.com/tabiew-go/tabiew/internal/format/arrowconv"
)

// Reader decodes an Arrow IPC file into a single NamedFrame, concatenating
// all record batches in file order.
type Reader struct{}

// NewReader builds an arrowfmt Reader.
func NewReader() *Reader { return &Reader{} }

func (r *Reader) Read(path string) ([]format.NamedFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ipcReader, err := ipc.NewFileReader(f, ipc.WithAllocator(arrowconv.Pool))
	if err != nil {
		return nil, err
	}
	defer ipcReader.Close()

	var frames []*dataframe.DataFrame
	for i := 0; i < ipcReader.NumRecords(); i++ {
		rec, err := ipcReader.RecordAt(i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, arrowconv.ToFrame(rec))
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if len(frames) == 0 {
		return []format.NamedFrame{{SuggestedName: name, Frame: dataframe.Empty()}}, nil
	}
	combined := frames[0]
	for _, next := range frames[1:] {
		combined = concat(combined, next)
	}
	return []format.NamedFrame{{SuggestedName: name, Frame: combined}}, nil
}

func concat(a, b *dataframe.DataFrame) *dataframe.DataFrame {
	out := a.Clone()
	for i, col := range out.Columns {
		if i < len(b.Columns) {
			col.Data = append(col.Data, b.Columns[i].Data...)
		}
	}
	return out
}

// Writer encodes a DataFrame as a single-batch Arrow IPC file.
type Writer struct{}

// NewWriter builds an arrowfmt Writer.
func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Write(path string, frame *dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rec := arrowconv.ToRecord(frame)
	defer rec.Release()

	writer, err := ipc.NewFileWriter(f, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(arrowconv.Pool))
	if err != nil {
		return err
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}
