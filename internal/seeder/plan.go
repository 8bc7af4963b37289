package seeder

import (
	"fmt"

	"github.com/Rana718/dbfixture/internal/schema"
	"github.com/Rana718/dbfixture/internal/types"
)

// ValidatePlan checks a seed plan against the schema before anything is
// inserted:
//   - every seeded table and column is declared,
//   - a table is never seeded before a table it references through a
//     non-nullable foreign key,
//   - every non-null foreign key value matches a seeded parent key,
//   - explicit ids are unique within a table.
func ValidatePlan(tables []types.TableSpec, plan []*Rows) error {
	if _, err := schema.Graph(tables).BuildInsertionOrder(); err != nil {
		return fmt.Errorf("failed to build insertion order: %w", err)
	}

	specs := make(map[string]types.TableSpec, len(tables))
	for _, table := range tables {
		specs[table.Name] = table
	}

	position := make(map[string]int, len(plan))
	seeded := make(map[string]*Rows, len(plan))
	for i, rows := range plan {
		if _, ok := specs[rows.Table]; !ok {
			return fmt.Errorf("seed plan references unknown table %s", rows.Table)
		}
		if _, dup := position[rows.Table]; dup {
			return fmt.Errorf("table %s appears twice in the seed plan", rows.Table)
		}
		position[rows.Table] = i
		seeded[rows.Table] = rows
	}

	for i, rows := range plan {
		table := specs[rows.Table]

		for _, column := range rows.Columns {
			if _, ok := table.Column(column); !ok {
				return fmt.Errorf("table %s has no column %s", rows.Table, column)
			}
		}

		if err := validateUniqueIDs(table, rows); err != nil {
			return err
		}

		for _, fk := range table.ForeignKeys {
			if err := validateForeignKey(table, fk, rows, i, position, seeded); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateUniqueIDs(table types.TableSpec, rows *Rows) error {
	idColumn, ok := table.AutoIncrementColumn()
	if !ok {
		return nil
	}

	seen := make(map[int64]bool, rows.Len())
	for _, value := range rows.Column(idColumn.Name) {
		id, ok := AsInt64(value)
		if !ok {
			continue
		}
		if seen[id] {
			return fmt.Errorf("table %s seeds id %d twice", table.Name, id)
		}
		seen[id] = true
	}
	return nil
}

func validateForeignKey(table types.TableSpec, fk types.ForeignKeySpec, rows *Rows, index int, position map[string]int, seeded map[string]*Rows) error {
	if len(fk.Columns) != 1 || len(fk.RefColumns) != 1 || fk.RefTable == table.Name {
		return nil
	}

	childColumn := fk.Columns[0]
	values := rows.Column(childColumn)
	if values == nil {
		return nil
	}

	column, _ := table.Column(childColumn)
	parentPos, parentSeeded := position[fk.RefTable]
	if !column.Nullable && parentSeeded && parentPos > index {
		return fmt.Errorf("table %s is seeded before %s, which it references through %s",
			table.Name, fk.RefTable, childColumn)
	}

	parentKeys := make(map[int64]bool)
	if parent, ok := seeded[fk.RefTable]; ok && parentPos < index {
		for _, value := range parent.Column(fk.RefColumns[0]) {
			if id, ok := AsInt64(value); ok {
				parentKeys[id] = true
			}
		}
	}

	for i, value := range values {
		if value == nil {
			if !column.Nullable {
				return fmt.Errorf("table %s row %d: %s cannot be NULL", table.Name, i, childColumn)
			}
			continue
		}
		id, ok := AsInt64(value)
		if !ok {
			continue
		}
		if !parentKeys[id] {
			return fmt.Errorf("table %s row %d: %s = %d has no seeded parent in %s",
				table.Name, i, childColumn, id, fk.RefTable)
		}
	}
	return nil
}
