package schema

import "fmt"

// DependencyGraph orders tables so that every table follows the tables it
// references. Tables are visited in insertion order, so the result is stable.
type DependencyGraph struct {
	deps  map[string][]string
	names []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(name string, dependencies []string) {
	if _, exists := g.deps[name]; !exists {
		g.names = append(g.names, name)
	}
	g.deps[name] = dependencies
}

func (g *DependencyGraph) Has(name string) bool {
	_, ok := g.deps[name]
	return ok
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		for _, dep := range g.deps[tableName] {
			if dep == tableName {
				continue
			}
			if !g.Has(dep) {
				return fmt.Errorf("table %s references unknown table %s", tableName, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
