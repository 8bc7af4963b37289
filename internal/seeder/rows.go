package seeder

import (
	"github.com/Rana718/dbfixture/internal/types"
)

// Rows is the seed data of one table: a column list and value tuples of the
// same arity. Build it with NewRows.
type Rows struct {
	Table   string
	Columns []string
	Values  [][]any
}

// NewRows pairs each tuple positionally with columns. A tuple whose arity
// differs from len(columns) is rejected with *types.ShapeMismatchError.
// nil is an explicit NULL.
func NewRows(table string, columns []string, values ...[]any) (*Rows, error) {
	for i, row := range values {
		if len(row) != len(columns) {
			return nil, &types.ShapeMismatchError{Table: table, Index: i, Want: len(columns), Got: len(row)}
		}
	}
	return &Rows{Table: table, Columns: columns, Values: values}, nil
}

// MustRows is NewRows for static fixture data; it panics on a shape mismatch.
func MustRows(table string, columns []string, values ...[]any) *Rows {
	rows, err := NewRows(table, columns, values...)
	if err != nil {
		panic(err)
	}
	return rows
}

func (r *Rows) Len() int {
	return len(r.Values)
}

// ColumnIndex returns the position of column, or -1.
func (r *Rows) ColumnIndex(column string) int {
	for i, name := range r.Columns {
		if name == column {
			return i
		}
	}
	return -1
}

// Column returns every value of column in row order.
func (r *Rows) Column(column string) []any {
	index := r.ColumnIndex(column)
	if index < 0 {
		return nil
	}
	values := make([]any, len(r.Values))
	for i, row := range r.Values {
		values[i] = row[index]
	}
	return values
}

// MaxID returns the highest integer value of column, and false when the
// column is absent or holds no integer values.
func (r *Rows) MaxID(column string) (int64, bool) {
	var max int64
	found := false
	for _, value := range r.Column(column) {
		id, ok := AsInt64(value)
		if !ok {
			continue
		}
		if !found || id > max {
			max = id
			found = true
		}
	}
	return max, found
}

// AsInt64 converts the integer kinds used in seed data.
func AsInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}
