// Package sqlitefmt implements the FormatReader collaborator for SQLite
// files: opens the file read-only with modernc.org/sqlite (pure Go, CGO
// free) and decodes every user table into a NamedFrame.
package sqlitefmt

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/format"
)

// Reader decodes every user table of a SQLite file into one NamedFrame per
// table, in sqlite_master's declaration order.
type Reader struct{}

// NewReader builds a sqlitefmt Reader.
func NewReader() *Reader { return &Reader{} }

func (r *Reader) Read(path string) ([]format.NamedFrame, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	defer db.Close()

	names, err := tableNames(db)
	if err != nil {
		return nil, err
	}

	out := make([]format.NamedFrame, 0, len(names))
	for _, name := range names {
		frame, err := readTable(db, name)
		if err != nil {
			return nil, fmt.Errorf("read table %q: %w", name, err)
		}
		out = append(out, format.NamedFrame{SuggestedName: name, Frame: frame})
	}
	return out, nil
}

func tableNames(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func readTable(db *sql.DB, name string) (*dataframe.DataFrame, error) {
	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s"`, name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	cols := make([]*dataframe.Column, len(colNames))
	for i, name := range colNames {
		cols[i] = &dataframe.Column{Name: name, Type: columnTypeFromSQLite(colTypes[i].DatabaseTypeName())}
	}

	dest := make([]any, len(colNames))
	ptrs := make([]any, len(colNames))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i := range cols {
			cols[i].Data = append(cols[i].Data, dest[i])
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dataframe.New(cols), nil
}

func columnTypeFromSQLite(declared string) dataframe.ColumnType {
	switch declared {
	case "INTEGER", "INT", "BIGINT":
		return dataframe.TypeInt
	case "REAL", "FLOAT", "DOUBLE", "NUMERIC":
		return dataframe.TypeFloat
	case "BOOLEAN", "BOOL":
		return dataframe.TypeBool
	default:
		return dataframe.TypeString
	}
}
