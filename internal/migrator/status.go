package migrator

import (
	"context"
	"fmt"

	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/seeder"
	"github.com/Rana718/dbfixture/internal/sequence"
	"github.com/Rana718/dbfixture/internal/types"
)

// Missing is the row count reported for a fixture table that does not exist.
const Missing = -1

type TableStatus struct {
	Name     string `json:"name" yaml:"name"`
	Rows     int    `json:"rows" yaml:"rows"`
	Expected int    `json:"expected" yaml:"expected"`
}

type SequenceStatus struct {
	Name     string `json:"name" yaml:"name"`
	Next     int64  `json:"next" yaml:"next"`
	Expected int64  `json:"expected" yaml:"expected"`
}

type DialectStatus struct {
	Dialect   types.Dialect    `json:"dialect" yaml:"dialect"`
	Tables    []TableStatus    `json:"tables" yaml:"tables"`
	Sequences []SequenceStatus `json:"sequences,omitempty" yaml:"sequences,omitempty"`
	// Extra lists tables that exist but are not part of the fixture.
	Extra []string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Diverged reports whether any table or sequence differs from the fixture.
func (s DialectStatus) Diverged() bool {
	for _, table := range s.Tables {
		if table.Rows != table.Expected {
			return true
		}
	}
	for _, seq := range s.Sequences {
		if seq.Next != seq.Expected {
			return true
		}
	}
	return len(s.Extra) > 0
}

// Status compares every connected, unskipped dialect with the fixture
// without changing anything.
func (m *Migrator) Status(ctx context.Context, tables []types.TableSpec, plan []*seeder.Rows, skip SkipSet) ([]DialectStatus, error) {
	expected := make(map[string]int, len(tables))
	for _, table := range tables {
		expected[table.Name] = 0
	}
	for _, rows := range plan {
		expected[rows.Table] = rows.Len()
	}

	var statuses []DialectStatus
	for _, dialect := range m.registry.Dialects() {
		if skip.Has(dialect) {
			continue
		}
		adapter, _ := m.registry.Get(dialect)

		status, err := dialectStatus(ctx, adapter, tables, expected, sequence.Targets(tables, plan))
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read status: %w", dialect, err)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func dialectStatus(ctx context.Context, adapter database.DatabaseAdapter, tables []types.TableSpec, expected map[string]int, targets []sequence.Target) (DialectStatus, error) {
	status := DialectStatus{Dialect: adapter.Dialect()}

	existing, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		return status, err
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
		if _, ok := expected[name]; !ok {
			status.Extra = append(status.Extra, name)
		}
	}

	var countable []string
	for _, table := range tables {
		if present[table.Name] {
			countable = append(countable, table.Name)
		}
	}
	counts, err := adapter.GetAllTableRowCounts(ctx, countable)
	if err != nil {
		return status, err
	}

	for _, table := range tables {
		rows := Missing
		if present[table.Name] {
			rows = counts[table.Name]
		}
		status.Tables = append(status.Tables, TableStatus{Name: table.Name, Rows: rows, Expected: expected[table.Name]})
	}

	reader, ok := adapter.(database.SequenceAdapter)
	if !ok || !adapter.Capabilities().SequenceBackedIDs {
		return status, nil
	}
	for _, target := range targets {
		next := int64(Missing)
		if present[target.Table] {
			if next, err = reader.SequenceNextValue(ctx, target.Name); err != nil {
				return status, err
			}
		}
		status.Sequences = append(status.Sequences, SequenceStatus{Name: target.Name, Next: next, Expected: target.Next})
	}
	return status, nil
}
