// Package sqlengine implements the SqlEngine collaborator (spec.md §6) on
// top of an in-memory DuckDB connection: every call to Execute loads the
// catalog's tables (plus, if present, the reserved `_` current-frame
// placeholder) into a fresh connection and runs the caller's SQL verbatim,
// so `_` is never rewritten — it is a literal DuckDB table name.
package sqlengine

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/tabiew-go/tabiew/internal/dataframe"
)

// Engine runs SQL text against a set of named DataFrames using DuckDB.
type Engine struct{}

// New builds a DuckDB-backed Engine.
func New() *Engine { return &Engine{} }

// Execute loads tables (and, if non-nil, current under the name `_`) into a
// fresh in-memory DuckDB connection, runs sql, and scans the result set back
// into a DataFrame.
func (e *Engine) Execute(sqlText string, tables map[string]*dataframe.DataFrame, current *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	for name, frame := range tables {
		if err := loadTable(db, name, frame); err != nil {
			return nil, fmt.Errorf("load table %q: %w", name, err)
		}
	}
	if current != nil {
		if err := loadTable(db, "_", current); err != nil {
			return nil, fmt.Errorf("load current frame: %w", err)
		}
	}

	rows, err := db.Query(sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

// loadTable creates a table named name with frame's schema and bulk-inserts
// its rows via a prepared statement.
func loadTable(db *sql.DB, name string, frame *dataframe.DataFrame) error {
	cols := frame.Columns
	colDefs := make([]string, len(cols))
	for i, c := range cols {
		colDefs[i] = fmt.Sprintf("%s %s", quoteIdent(c.Name), duckdbType(c.Type))
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(colDefs, ", "))
	if _, err := db.Exec(createSQL); err != nil {
		return err
	}
	if frame.Height() == 0 {
		return nil
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(name), strings.Join(placeholders, ", "))
	stmt, err := db.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for r := 0; r < frame.Height(); r++ {
		row := frame.Row(r)
		if _, err := stmt.Exec(row...); err != nil {
			return err
		}
	}
	return nil
}

func duckdbType(t dataframe.ColumnType) string {
	switch t {
	case dataframe.TypeInt:
		return "BIGINT"
	case dataframe.TypeFloat:
		return "DOUBLE"
	case dataframe.TypeBool:
		return "BOOLEAN"
	case dataframe.TypeDate:
		return "DATE"
	case dataframe.TypeDateTime:
		return "TIMESTAMP"
	default:
		return "VARCHAR"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// scanRows converts a *sql.Rows result set into a DataFrame, inferring each
// column's ColumnType from DuckDB's reported database type name.
func scanRows(rows *sql.Rows) (*dataframe.DataFrame, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	cols := make([]*dataframe.Column, len(colTypes))
	for i, ct := range colTypes {
		cols[i] = &dataframe.Column{Name: ct.Name(), Type: columnTypeFromSQL(ct.DatabaseTypeName())}
	}

	dest := make([]any, len(colTypes))
	ptrs := make([]any, len(colTypes))
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

func columnTypeFromSQL(dbType string) dataframe.ColumnType {
	switch strings.ToUpper(dbType) {
	case "BIGINT", "INTEGER", "SMALLINT", "TINYINT", "HUGEINT":
		return dataframe.TypeInt
	case "DOUBLE", "FLOAT", "DECIMAL":
		return dataframe.TypeFloat
	case "BOOLEAN":
		return dataframe.TypeBool
	case "DATE":
		return dataframe.TypeDate
	case "TIMESTAMP", "TIMESTAMP WITH TIME ZONE":
		return dataframe.TypeDateTime
	default:
		return dataframe.TypeString
	}
}
