package seeder

import (
	"errors"
	"testing"

	"github.com/Rana718/dbfixture/internal/types"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewRowsRejectsShapeMismatch(t *testing.T) {
	_, err := NewRows("users", []string{"id", "name"},
		[]any{1, "andrej"},
		[]any{2},
	)

	var shapeErr *types.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Expected *types.ShapeMismatchError, got %v", err)
	}
	if shapeErr.Table != "users" || shapeErr.Index != 1 || shapeErr.Want != 2 || shapeErr.Got != 1 {
		t.Errorf("Unexpected error details: %+v", shapeErr)
	}
}

func TestNewRowsKeepsExplicitNull(t *testing.T) {
	rows, err := NewRows("torrent_peers", []string{"id", "torrent_id"}, []any{6, nil})
	if err != nil {
		t.Fatalf("NewRows failed: %v", err)
	}
	if got := rows.Column("torrent_id"); len(got) != 1 || got[0] != nil {
		t.Errorf("Expected an explicit NULL, got %v", got)
	}
}

func TestMaxID(t *testing.T) {
	rows := MustRows("album_images", []string{"id", "name"},
		[]any{3, "a"},
		[]any{9, "b"},
		[]any{int64(4), "c"},
	)

	if max, ok := rows.MaxID("id"); !ok || max != 9 {
		t.Errorf("Expected max id 9, got %d (%v)", max, ok)
	}
	if _, ok := rows.MaxID("missing"); ok {
		t.Error("Expected no max for a missing column")
	}

	empty := MustRows("settings", []string{"name", "value"})
	if _, ok := empty.MaxID("name"); ok {
		t.Error("Expected no max for an empty row set")
	}
}

func TestMustRowsPanicsOnShapeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustRows to panic")
		}
	}()
	MustRows("roles", []string{"id", "name"}, []any{1})
}

// TestProperty_RowArity checks that NewRows accepts a row set exactly when
// every tuple has as many values as there are columns.
func TestProperty_RowArity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("NewRows fails iff some tuple arity differs", prop.ForAll(
		func(columnCount int, arities []int) bool {
			columns := make([]string, columnCount)
			for i := range columns {
				columns[i] = string(rune('a' + i))
			}

			values := make([][]any, len(arities))
			firstBad := -1
			for i, arity := range arities {
				values[i] = make([]any, arity)
				if arity != columnCount && firstBad < 0 {
					firstBad = i
				}
			}

			rows, err := NewRows("t", columns, values...)
			if firstBad < 0 {
				return err == nil && rows.Len() == len(arities)
			}

			var shapeErr *types.ShapeMismatchError
			return errors.As(err, &shapeErr) && shapeErr.Index == firstBad && shapeErr.Got == arities[firstBad]
		},
		gen.IntRange(1, 8),
		gen.SliceOf(gen.IntRange(1, 8)),
	))

	properties.Property("MaxID is the largest id seeded", prop.ForAll(
		func(ids []int64) bool {
			values := make([][]any, len(ids))
			var want int64
			for i, id := range ids {
				values[i] = []any{id}
				if i == 0 || id > want {
					want = id
				}
			}

			rows := MustRows("t", []string{"id"}, values...)
			got, ok := rows.MaxID("id")
			if len(ids) == 0 {
				return !ok
			}
			return ok && got == want
		},
		gen.SliceOf(gen.Int64Range(1, 1_000_000)),
	))

	properties.TestingRun(t)
}
