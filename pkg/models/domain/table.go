package domain

import (
	"math"
	"strings"
)

// Row maps a column name to its value. A missing key reads as null.
type Row map[string]any

// Table is an ordered set of rows sharing a column list
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given columns
func NewTable(columns ...string) Table {
	return Table{
		Columns: append([]string{}, columns...),
		Rows:    []Row{},
	}
}

func (t Table) Len() int {
	return len(t.Rows)
}

func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns every value of the named column in row order
func (t Table) Column(name string) ([]any, error) {
	if !t.HasColumn(name) {
		return nil, &SchemaError{Op: "column", Column: name}
	}

	values := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[name])
	}
	return values, nil
}

// WithRows returns a table with the same columns and the given rows
func (t Table) WithRows(rows []Row) Table {
	return Table{
		Columns: append([]string{}, t.Columns...),
		Rows:    rows,
	}
}

// IsNull reports whether v counts as an empty cell.
func IsNull(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case float64:
		return math.IsNaN(val)
	case float32:
		return math.IsNaN(float64(val))
	default:
		return false
	}
}

// AsFloat converts numeric values to float64. ok is false for nulls and non-numbers.
func AsFloat(v any) (f float64, ok bool) {
	if IsNull(v) {
		return 0, false
	}

	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}
