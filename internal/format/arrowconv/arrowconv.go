// Package arrowconv converts between dataframe.DataFrame and Arrow records,
// shared by arrowfmt (Arrow IPC) and parquetfmt (Parquet), both of which
// build on github.com/apache/arrow-go/v18's columnar array/record types.
package arrowconv

import (
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/tabiew-go/tabiew/internal/dataframe"
)

// Pool is the shared allocator used for every conversion.
var Pool = memory.NewGoAllocator()

// ArrowType maps a dataframe.ColumnType to its Arrow counterpart.
func ArrowType(t dataframe.ColumnType) arrow.DataType {
	switch t {
	case dataframe.TypeInt:
		return arrow.PrimitiveTypes.Int64
	case dataframe.TypeFloat:
		return arrow.PrimitiveTypes.Float64
	case dataframe.TypeBool:
		return arrow.FixedWidthTypes.Boolean
	case dataframe.TypeDate:
		return arrow.FixedWidthTypes.Date32
	case dataframe.TypeDateTime:
		return arrow.FixedWidthTypes.Timestamp_ns
	default:
		return arrow.BinaryTypes.String
	}
}

// ColumnType maps an Arrow DataType back to a dataframe.ColumnType.
func ColumnType(t arrow.DataType) dataframe.ColumnType {
	switch t.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return dataframe.TypeInt
	case arrow.FLOAT32, arrow.FLOAT64:
		return dataframe.TypeFloat
	case arrow.BOOL:
		return dataframe.TypeBool
	case arrow.DATE32, arrow.DATE64:
		return dataframe.TypeDate
	case arrow.TIMESTAMP:
		return dataframe.TypeDateTime
	default:
		return dataframe.TypeString
	}
}

// Schema builds an Arrow schema for frame's columns.
func Schema(frame *dataframe.DataFrame) *arrow.Schema {
	fields := make([]arrow.Field, frame.Width())
	for i, c := range frame.Columns {
		fields[i] = arrow.Field{Name: c.Name, Type: ArrowType(c.Type), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// ToRecord builds a single Arrow record from frame.
func ToRecord(frame *dataframe.DataFrame) arrow.Record {
	schema := Schema(frame)
	cols := make([]arrow.Array, frame.Width())
	for i, c := range frame.Columns {
		cols[i] = buildArray(c)
	}
	return array.NewRecord(schema, cols, int64(frame.Height()))
}

func buildArray(c *dataframe.Column) arrow.Array {
	switch c.Type {
	case dataframe.TypeInt:
		b := array.NewInt64Builder(Pool)
		defer b.Release()
		for _, v := range c.Data {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(asInt64(v))
		}
		return b.NewArray()
	case dataframe.TypeFloat:
		b := array.NewFloat64Builder(Pool)
		defer b.Release()
		for _, v := range c.Data {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(asFloat64(v))
		}
		return b.NewArray()
	case dataframe.TypeBool:
		b := array.NewBooleanBuilder(Pool)
		defer b.Release()
		for _, v := range c.Data {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(v.(bool))
		}
		return b.NewArray()
	case dataframe.TypeDate, dataframe.TypeDateTime:
		b := array.NewTimestampBuilder(Pool, arrow.FixedWidthTypes.Timestamp_ns.(*arrow.TimestampType))
		defer b.Release()
		for _, v := range c.Data {
			if v == nil {
				b.AppendNull()
				continue
			}
			t, _ := v.(time.Time)
			b.Append(arrow.Timestamp(t.UnixNano()))
		}
		return b.NewArray()
	default:
		b := array.NewStringBuilder(Pool)
		defer b.Release()
		for _, v := range c.Data {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(asString(v))
		}
		return b.NewArray()
	}
}

// ToFrame converts an Arrow record into a dataframe.DataFrame.
func ToFrame(rec arrow.Record) *dataframe.DataFrame {
	cols := make([]*dataframe.Column, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		field := rec.Schema().Field(i)
		col := &dataframe.Column{Name: field.Name, Type: ColumnType(field.Type)}
		col.Data = extractValues(rec.Column(i))
		cols[i] = col
	}
	return dataframe.New(cols)
}

func extractValues(col arrow.Array) []any {
	n := col.Len()
	out := make([]any, n)
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			continue
		}
		switch a := col.(type) {
		case *array.Int64:
			out[i] = a.Value(i)
		case *array.Int32:
			out[i] = int64(a.Value(i))
		case *array.Float64:
			out[i] = a.Value(i)
		case *array.Float32:
			out[i] = float64(a.Value(i))
		case *array.Boolean:
			out[i] = a.Value(i)
		case *array.String:
			out[i] = a.Value(i)
		case *array.Timestamp:
			out[i] = time.Unix(0, int64(a.Value(i))).UTC()
		case *array.Date32:
			out[i] = a.Value(i).ToTime()
		default:
			out[i] = a.GetOneForMarshal(i)
		}
	}
	return out
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
