// Package format declares the FormatReader/FormatWriter collaborators
// (spec.md §6): the import and export boundary the reducer calls through
// without depending on any concrete file-format decoder or encoder.
package format

import "github.com/tabiew-go/tabiew/internal/dataframe"

// NamedFrame pairs a suggested catalog name with the frame an importer
// decoded it into.
type NamedFrame struct {
	SuggestedName string
	Frame         *dataframe.DataFrame
}

// Reader decodes a source into one or more (suggested_name, DataFrame)
// pairs. One implementation per import format (csvfmt, fwffmt, jsonfmt,
// parquetfmt, arrowfmt, sqlitefmt).
type Reader interface {
	Read(path string) ([]NamedFrame, error)
}

// Writer encodes a single DataFrame to destination. One implementation per
// export format.
type Writer interface {
	Write(path string, frame *dataframe.DataFrame) error
}
