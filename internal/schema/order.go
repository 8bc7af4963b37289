package schema

import (
	"fmt"

	"github.com/Rana718/dbfixture/internal/types"
)

// Graph builds the dependency graph of the given tables.
func Graph(tables []types.TableSpec) *DependencyGraph {
	graph := NewDependencyGraph()
	for _, table := range tables {
		graph.AddTable(table.Name, table.Dependencies())
	}
	return graph
}

// ValidateOrder checks that the tables are declared parent before child: every
// foreign key must point at the table itself or at a table declared earlier.
func ValidateOrder(tables []types.TableSpec) error {
	if _, err := Graph(tables).BuildInsertionOrder(); err != nil {
		return err
	}

	declared := make(map[string]bool, len(tables))
	for _, table := range tables {
		if declared[table.Name] {
			return fmt.Errorf("table %s is declared twice", table.Name)
		}
		for _, dep := range table.Dependencies() {
			if !declared[dep] {
				return fmt.Errorf("table %s is declared before the table %s it references", table.Name, dep)
			}
		}
		declared[table.Name] = true
	}
	return nil
}
