package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/types"
)

func TestFormatColumnType(t *testing.T) {
	adapter := New(&config.SQLiteConfig{})

	tests := []struct {
		name   string
		column types.ColumnSpec
		want   string
	}{
		{"id", types.ID(), "integer primary key autoincrement not null"},
		{"unsigned big integer", types.ColumnSpec{Type: types.BigInteger, Unsigned: true}, "integer not null"},
		{"boolean", types.ColumnSpec{Type: types.Boolean, Default: false}, "tinyint(1) not null default '0'"},
		{"timestamp", types.ColumnSpec{Type: types.Timestamp, Nullable: true}, "datetime null"},
		{"decimal", types.ColumnSpec{Type: types.Decimal, Precision: types.IntPtr(8), Scale: types.IntPtr(2)}, "numeric not null"},
		{"string", types.ColumnSpec{Type: types.String}, "varchar not null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.FormatColumnType(tt.column); got != tt.want {
				t.Errorf("FormatColumnType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateCreateTableSQLSkipsComments(t *testing.T) {
	adapter := New(&config.SQLiteConfig{})

	table := types.TableSpec{
		Name:    "torrents",
		Columns: []types.ColumnSpec{types.ID(), {Name: "name", Type: types.String, Comment: "Torrent name"}},
		Comment: "ignored",
	}

	got := adapter.GenerateCreateTableSQL(table)
	if strings.Contains(got, "Torrent name") || strings.Contains(got, "comment") {
		t.Errorf("Expected comments to be omitted, got %s", got)
	}
	if len(adapter.GenerateCommentSQL(table)) != 0 {
		t.Error("Expected no comment statements")
	}
}

func TestConnectRequiresExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite3")
	adapter := New(&config.SQLiteConfig{Database: path, ForeignKeyConstraints: true})

	err := adapter.Connect(context.Background())
	if err == nil {
		adapter.Close()
		t.Fatal("Expected an error for a missing database file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestDropTablesWithForeignKeysDisabled(t *testing.T) {
	ctx := context.Background()
	adapter := New(&config.SQLiteConfig{Database: memoryPath, ForeignKeyConstraints: true})
	if err := adapter.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer adapter.Close()

	parent := types.TableSpec{Name: "users", Columns: []types.ColumnSpec{types.ID()}}
	child := types.TableSpec{
		Name:        "user_phones",
		Columns:     []types.ColumnSpec{types.ID(), {Name: "user_id", Type: types.BigInteger}},
		ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("user_id", "users")},
	}
	for _, table := range []types.TableSpec{parent, child} {
		if err := adapter.Exec(ctx, adapter.GenerateCreateTableSQL(table)); err != nil {
			t.Fatalf("Failed to create %s: %v", table.Name, err)
		}
	}
	if err := adapter.Exec(ctx, `INSERT INTO "users" ("id") VALUES (1)`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := adapter.Exec(ctx, `INSERT INTO "user_phones" ("id", "user_id") VALUES (1, 1)`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	names, err := adapter.GetAllTableNames(ctx)
	if err != nil {
		t.Fatalf("GetAllTableNames failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("Expected 2 tables, got %v", names)
	}

	if err := adapter.SetForeignKeyChecks(ctx, false); err != nil {
		t.Fatalf("SetForeignKeyChecks failed: %v", err)
	}
	if err := adapter.DropTables(ctx, names); err != nil {
		t.Fatalf("DropTables failed: %v", err)
	}
	if err := adapter.SetForeignKeyChecks(ctx, true); err != nil {
		t.Fatalf("SetForeignKeyChecks failed: %v", err)
	}

	names, err = adapter.GetAllTableNames(ctx)
	if err != nil {
		t.Fatalf("GetAllTableNames failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no tables left, got %v", names)
	}
}
