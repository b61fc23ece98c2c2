package dataframe

import (
	"strconv"
	"time"
)

// dateLayout and dateTimeLayouts are the parse layouts tried during type
// inference, covering the int, float, boolean, date, datetime, catch-all
// string buckets.
const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// InferColumnType classifies a column's non-null string-ish values into one
// of the inference buckets, trying int, then float, then bool, then date,
// then datetime, and falling back to string if any value fails to parse
// under the current candidate type.
func InferColumnType(values []string) ColumnType {
	candidates := []ColumnType{TypeInt, TypeFloat, TypeBool, TypeDate, TypeDateTime}
	for _, cand := range candidates {
		if allMatch(values, cand) {
			return cand
		}
	}
	return TypeString
}

func allMatch(values []string, t ColumnType) bool {
	seen := false
	for _, v := range values {
		if v == "" {
			continue
		}
		seen = true
		if !matches(v, t) {
			return false
		}
	}
	return seen
}

func matches(v string, t ColumnType) bool {
	switch t {
	case TypeInt:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	case TypeFloat:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	case TypeBool:
		_, err := strconv.ParseBool(v)
		return err == nil
	case TypeDate:
		_, err := time.Parse(dateLayout, v)
		return err == nil
	case TypeDateTime:
		for _, layout := range dateTimeLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Coerce converts a column's raw []any values (as decoded by a format
// reader, usually strings) into typed Go values matching t. Values that fail
// to parse under t become nil (null), matching "leave as string" fallback
// behavior pushed down to the cell level rather than aborting the column.
func Coerce(col *Column, t ColumnType) *Column {
	out := make([]any, len(col.Data))
	for i, v := range col.Data {
		s, ok := v.(string)
		if !ok {
			out[i] = v
			continue
		}
		if s == "" {
			out[i] = nil
			continue
		}
		switch t {
		case TypeInt:
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				out[i] = n
			}
		case TypeFloat:
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				out[i] = f
			}
		case TypeBool:
			if b, err := strconv.ParseBool(s); err == nil {
				out[i] = b
			}
		case TypeDate:
			if d, err := time.Parse(dateLayout, s); err == nil {
				out[i] = d
			}
		case TypeDateTime:
			for _, layout := range dateTimeLayouts {
				if d, err := time.Parse(layout, s); err == nil {
					out[i] = d
					break
				}
			}
		default:
			out[i] = s
		}
	}
	return &Column{Name: col.Name, Type: t, Data: out}
}

// InferColumns re-infers and coerces every column of df whose current type
// is TypeString, restricted to the requested bucket when kind is not
// TypeString (the "all" token maps to TypeString meaning "try everything").
func InferColumns(df *DataFrame, kind ColumnType, all bool) *DataFrame {
	out := df.Clone()
	for i, c := range out.Columns {
		if c.Type != TypeString {
			continue
		}
		strs := make([]string, len(c.Data))
		for j, v := range c.Data {
			if s, ok := v.(string); ok {
				strs[j] = s
			}
		}
		if all {
			t := InferColumnType(strs)
			out.Columns[i] = Coerce(c, t)
			continue
		}
		if allMatch(strs, kind) {
			out.Columns[i] = Coerce(c, kind)
		}
	}
	return out
}
