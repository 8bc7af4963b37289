package schema

import (
	"context"

	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
)

// Builder drops and recreates the fixture schema on one dialect.
type Builder struct {
	adapter database.DatabaseAdapter
}

func NewBuilder(adapter database.DatabaseAdapter) *Builder {
	return &Builder{adapter: adapter}
}

// Reset drops every table in the target schema and recreates the given tables
// in order. Errors are *types.SchemaError.
func Reset(ctx context.Context, adapter database.DatabaseAdapter, tables []types.TableSpec) error {
	b := NewBuilder(adapter)
	if err := ValidateOrder(tables); err != nil {
		return b.schemaError("", "validate table order", err)
	}
	if _, err := b.DropAll(ctx); err != nil {
		return err
	}
	return b.Create(ctx, tables)
}

func (b *Builder) schemaError(table, op string, err error) error {
	return &types.SchemaError{Dialect: b.adapter.Dialect(), Table: table, Op: op, Err: err}
}

// DropAll drops every existing table and returns their names. Foreign keys
// are bypassed with the dialect's drop strategy.
func (b *Builder) DropAll(ctx context.Context) ([]string, error) {
	names, err := b.adapter.GetAllTableNames(ctx)
	if err != nil {
		return nil, b.schemaError("", "list tables", err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	switch b.adapter.Capabilities().DropStrategy {
	case common.DropCascade:
		if err := b.adapter.DropTables(ctx, names); err != nil {
			return nil, b.schemaError("", "drop tables", err)
		}

	default:
		if err := b.adapter.SetForeignKeyChecks(ctx, false); err != nil {
			return nil, b.schemaError("", "disable foreign key checks", err)
		}
		dropErr := b.adapter.DropTables(ctx, names)
		if err := b.adapter.SetForeignKeyChecks(ctx, true); err != nil && dropErr == nil {
			return nil, b.schemaError("", "enable foreign key checks", err)
		}
		if dropErr != nil {
			return nil, b.schemaError("", "drop tables", dropErr)
		}
	}

	return names, nil
}

// Create creates the tables strictly in the given order and attaches table
// and column comments where the dialect has them.
func (b *Builder) Create(ctx context.Context, tables []types.TableSpec) error {
	if err := ValidateOrder(tables); err != nil {
		return b.schemaError("", "validate table order", err)
	}

	caps := b.adapter.Capabilities()
	for _, table := range tables {
		if err := b.adapter.Exec(ctx, b.adapter.GenerateCreateTableSQL(table)); err != nil {
			return b.schemaError(table.Name, "create table", err)
		}

		if !caps.TableComments && !caps.ColumnComments {
			continue
		}
		for _, statement := range b.adapter.GenerateCommentSQL(table) {
			if err := b.adapter.Exec(ctx, statement); err != nil {
				return b.schemaError(table.Name, "add comment", err)
			}
		}
	}
	return nil
}
