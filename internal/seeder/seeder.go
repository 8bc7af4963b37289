package seeder

import (
	"context"
	"fmt"

	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/types"
)

// Seed inserts all rows of one table with a single multi-row INSERT.
// An empty row set is a no-op. Failures are *types.SeedError.
func Seed(ctx context.Context, adapter database.DatabaseAdapter, rows *Rows) error {
	if rows == nil || rows.Len() == 0 {
		return nil
	}

	columns := make([]string, len(rows.Columns))
	for i, column := range rows.Columns {
		columns[i] = adapter.QuoteIdentifier(column)
	}

	insert := adapter.StatementBuilder().
		Insert(adapter.QuoteIdentifier(rows.Table)).
		Columns(columns...)
	for _, row := range rows.Values {
		insert = insert.Values(row...)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return &types.SeedError{Dialect: adapter.Dialect(), Table: rows.Table, Err: fmt.Errorf("failed to build insert: %w", err)}
	}

	if err := adapter.Exec(ctx, query, args...); err != nil {
		return &types.SeedError{Dialect: adapter.Dialect(), Table: rows.Table, Err: err}
	}
	return nil
}

// SeedAll seeds the plan in order and stops at the first failure. progress,
// when set, is called after each table.
func SeedAll(ctx context.Context, adapter database.DatabaseAdapter, plan []*Rows, progress func(rows *Rows)) error {
	for _, rows := range plan {
		if err := Seed(ctx, adapter, rows); err != nil {
			return err
		}
		if progress != nil {
			progress(rows)
		}
	}
	return nil
}
