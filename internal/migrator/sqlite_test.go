package migrator

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/database/sqlite"
	"github.com/Rana718/dbfixture/internal/fixture"
	"github.com/Rana718/dbfixture/internal/types"
)

func openSQLite(t *testing.T) (*sqlite.Adapter, *database.Registry) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "q_tinyorm_test_1.sqlite3")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Failed to create database file: %v", err)
	}

	adapter := sqlite.New(&config.SQLiteConfig{Database: path, ForeignKeyConstraints: true})
	if err := adapter.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	registry := database.NewRegistry(adapter)
	t.Cleanup(func() { registry.Close() })
	return adapter, registry
}

func assertFixtureState(t *testing.T, adapter *sqlite.Adapter) {
	t.Helper()
	ctx := context.Background()

	counts, err := adapter.GetAllTableRowCounts(ctx, fixture.TableNames())
	if err != nil {
		t.Fatalf("GetAllTableRowCounts failed: %v", err)
	}
	for table, want := range fixture.ExpectedCounts() {
		if counts[table] != want {
			t.Errorf("%s: expected %d rows, got %d", table, want, counts[table])
		}
	}

	violations, err := adapter.ForeignKeyViolations(ctx)
	if err != nil {
		t.Fatalf("ForeignKeyViolations failed: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("Expected no foreign key violations, got %v", violations)
	}
}

func TestSQLiteRunIsIdempotent(t *testing.T) {
	adapter, registry := openSQLite(t)
	m := New(registry, Options{Out: io.Discard})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := m.Run(ctx, fixture.Tables(), fixture.Plan(), nil); err != nil {
			t.Fatalf("Run %d failed: %v", i+1, err)
		}
		assertFixtureState(t, adapter)
	}

	names, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		t.Fatalf("GetAllTableNames failed: %v", err)
	}
	if len(names) != 20 {
		t.Errorf("Expected exactly 20 tables after two runs, got %d: %v", len(names), names)
	}
}

func TestSQLiteSeededValues(t *testing.T) {
	adapter, registry := openSQLite(t)
	ctx := context.Background()

	if err := New(registry, Options{Out: io.Discard}).Run(ctx, fixture.Tables(), fixture.Plan(), nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rows, err := adapter.Query(ctx, `SELECT "id", "is_banned", "deleted_at" FROM "users" ORDER BY "id"`)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()

	banned := map[int64]bool{}
	softDeleted := 0
	for rows.Next() {
		var id int64
		var isBanned bool
		var deletedAt any
		if err := rows.Scan(&id, &isBanned, &deletedAt); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		banned[id] = isBanned
		if deletedAt != nil {
			softDeleted++
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Rows failed: %v", err)
	}

	if banned[1] || banned[2] || !banned[3] || !banned[4] || !banned[5] {
		t.Errorf("Unexpected is_banned values: %v", banned)
	}
	if softDeleted != 2 {
		t.Errorf("Expected 2 soft deleted users, got %d", softDeleted)
	}

	// The auto-increment generator continues after the explicit ids.
	if err := adapter.Exec(ctx, `INSERT INTO "torrent_states" ("name") VALUES ('Paused')`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	var nextID int64
	if err := adapter.QueryRow(ctx, `SELECT "id" FROM "torrent_states" WHERE "name" = 'Paused'`).Scan(&nextID); err != nil {
		t.Fatalf("QueryRow failed: %v", err)
	}
	if nextID != 6 {
		t.Errorf("Expected the next generated id to be 6, got %d", nextID)
	}
}

func TestSQLiteSkipPreservesState(t *testing.T) {
	adapter, registry := openSQLite(t)
	ctx := context.Background()
	m := New(registry, Options{Out: io.Discard})

	if err := m.Run(ctx, fixture.Tables(), fixture.Plan(), nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := adapter.Exec(ctx, `INSERT INTO "settings" ("name", "value") VALUES ('marker', 'kept')`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := m.Run(ctx, fixture.Tables(), fixture.Plan(), SkipSet{types.SQLite: true}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	counts, err := adapter.GetAllTableRowCounts(ctx, []string{"settings"})
	if err != nil {
		t.Fatalf("GetAllTableRowCounts failed: %v", err)
	}
	if counts["settings"] != 1 {
		t.Errorf("Expected the skipped dialect to keep its extra row, got %d", counts["settings"])
	}
}

func TestSQLiteWipeAndStatus(t *testing.T) {
	_, registry := openSQLite(t)
	ctx := context.Background()
	m := New(registry, Options{Out: io.Discard})

	if err := m.Run(ctx, fixture.Tables(), fixture.Plan(), nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	statuses, err := m.Status(ctx, fixture.Tables(), fixture.Plan(), nil)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if statuses[0].Diverged() {
		t.Errorf("Expected no divergence: %+v", statuses[0])
	}

	if err := m.Wipe(ctx, nil); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}
	statuses, err = m.Status(ctx, fixture.Tables(), fixture.Plan(), nil)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	for _, table := range statuses[0].Tables {
		if table.Rows != Missing {
			t.Errorf("%s: expected the table to be gone, got %d rows", table.Name, table.Rows)
		}
	}
}
