package migrator

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/schema"
	"github.com/Rana718/dbfixture/internal/seeder"
	"github.com/Rana718/dbfixture/internal/sequence"
	"github.com/Rana718/dbfixture/internal/types"
)

// SkipSet names the dialects whose state must be left untouched.
type SkipSet map[types.Dialect]bool

func (s SkipSet) Has(dialect types.Dialect) bool {
	return s[dialect]
}

type Options struct {
	// Out receives progress output; nil means color.Output.
	Out   io.Writer
	RunID string
	// Verbose logs every seeded table.
	Verbose bool
}

// Migrator drives the reset, seed and sequence pipeline on every connected dialect.
type Migrator struct {
	registry *database.Registry
	opts     Options
	log      *logger
}

func New(registry *database.Registry, opts Options) *Migrator {
	return &Migrator{
		registry: registry,
		opts:     opts,
		log:      newLogger(opts.Out),
	}
}

// Run brings every connected, unskipped dialect to the fixture state, one
// dialect at a time in the fixed order. There is no cross-dialect
// transaction: the first failure aborts the run and dialects already
// processed keep their new state.
func (m *Migrator) Run(ctx context.Context, tables []types.TableSpec, plan []*seeder.Rows, skip SkipSet) error {
	if err := schema.ValidateOrder(tables); err != nil {
		return fmt.Errorf("invalid table order: %w", err)
	}
	if err := seeder.ValidatePlan(tables, plan); err != nil {
		return fmt.Errorf("invalid seed plan: %w", err)
	}
	targets := sequence.Targets(tables, plan)

	if m.opts.RunID != "" {
		m.log.info("🚀 Run %s: %d tables, %d seeded", m.opts.RunID, len(tables), len(plan))
	}

	for _, dialect := range m.registry.Dialects() {
		if skip.Has(dialect) {
			m.log.warn("⏭️  Skipping %s", dialect)
			continue
		}

		adapter, _ := m.registry.Get(dialect)
		start := time.Now()
		if err := m.migrate(ctx, adapter, tables, plan, targets); err != nil {
			return err
		}
		m.log.success("✅ %s ready in %s", dialect, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (m *Migrator) migrate(ctx context.Context, adapter database.DatabaseAdapter, tables []types.TableSpec, plan []*seeder.Rows, targets []sequence.Target) error {
	dialect := adapter.Dialect()
	caps := adapter.Capabilities()

	m.log.info("🔄 %s: resetting schema (%s)", dialect, caps.DropStrategy)
	if err := schema.Reset(ctx, adapter, tables); err != nil {
		return err
	}

	m.log.info("🌱 %s: seeding %d tables", dialect, len(plan))
	rowCount := 0
	err := seeder.SeedAll(ctx, adapter, plan, func(rows *seeder.Rows) {
		rowCount += rows.Len()
		if m.opts.Verbose && rows.Len() > 0 {
			m.log.detail("  📝 %s (%d rows)", rows.Table, rows.Len())
		}
	})
	if err != nil {
		return err
	}
	m.log.detail("  %d rows inserted", rowCount)

	if !caps.SequenceBackedIDs {
		return nil
	}

	restarter, ok := adapter.(database.SequenceAdapter)
	if !ok {
		return &types.SequenceError{Dialect: dialect, Err: fmt.Errorf("adapter does not support sequences")}
	}

	m.log.info("🔢 %s: restarting %d sequences", dialect, len(targets))
	if err := sequence.Reconcile(ctx, dialect, restarter, targets); err != nil {
		return err
	}
	if m.opts.Verbose {
		names := make([]string, len(targets))
		for i, target := range targets {
			names[i] = fmt.Sprintf("%s=%d", target.Name, target.Next)
		}
		m.log.detail("  %s", strings.Join(names, ", "))
	}
	return nil
}

// Wipe drops every table on each connected, unskipped dialect.
func (m *Migrator) Wipe(ctx context.Context, skip SkipSet) error {
	for _, dialect := range m.registry.Dialects() {
		if skip.Has(dialect) {
			m.log.warn("⏭️  Skipping %s", dialect)
			continue
		}

		adapter, _ := m.registry.Get(dialect)
		dropped, err := schema.NewBuilder(adapter).DropAll(ctx)
		if err != nil {
			return err
		}
		m.log.success("🗑️  %s: dropped %d tables", dialect, len(dropped))
	}
	return nil
}
