package sequence

import (
	"context"
	"fmt"

	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/seeder"
	"github.com/Rana718/dbfixture/internal/types"
)

// Target repositions one id sequence so its next value follows the highest
// manually inserted id.
type Target struct {
	Name   string `json:"name" yaml:"name"`
	Table  string `json:"table" yaml:"table"`
	Column string `json:"column" yaml:"column"`
	Next   int64  `json:"next" yaml:"next"`
}

// Name returns the sequence name a serial column gets: <table>_<column>_seq.
func Name(table, column string) string {
	return fmt.Sprintf("%s_%s_seq", table, column)
}

// Targets derives one target per seeded table that owns an auto-increment
// column, in plan order. Tables with composite keys or no seeded ids get none.
func Targets(tables []types.TableSpec, plan []*seeder.Rows) []Target {
	specs := make(map[string]types.TableSpec, len(tables))
	for _, table := range tables {
		specs[table.Name] = table
	}

	var targets []Target
	for _, rows := range plan {
		table, ok := specs[rows.Table]
		if !ok {
			continue
		}
		column, ok := table.AutoIncrementColumn()
		if !ok {
			continue
		}
		max, ok := rows.MaxID(column.Name)
		if !ok {
			continue
		}
		targets = append(targets, Target{
			Name:   Name(table.Name, column.Name),
			Table:  table.Name,
			Column: column.Name,
			Next:   max + 1,
		})
	}
	return targets
}

// Reconcile restarts every target sequence. It must run after all inserts for
// the dialect. The first failure is returned as *types.SequenceError; nothing
// is retried.
func Reconcile(ctx context.Context, dialect types.Dialect, restarter database.SequenceAdapter, targets []Target) error {
	for _, target := range targets {
		if err := restarter.RestartSequence(ctx, target.Name, target.Next); err != nil {
			return &types.SequenceError{Dialect: dialect, Sequence: target.Name, Err: err}
		}
	}
	return nil
}
