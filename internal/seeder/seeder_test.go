package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/database/dbtest"
	"github.com/Rana718/dbfixture/internal/types"
)

func TestSeedIssuesSingleBulkInsert(t *testing.T) {
	adapter := dbtest.New(types.MySQL, common.Capabilities{})
	rows := MustRows("roles", []string{"id", "name", "added_on"},
		[]any{1, "role one", 1659361016},
		[]any{2, "role two", 1659447416},
		[]any{3, "role three", nil},
	)

	if err := Seed(context.Background(), adapter, rows); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if len(adapter.Statements) != 1 {
		t.Fatalf("Expected one statement, got %d: %v", len(adapter.Statements), adapter.Statements)
	}
	want := "INSERT INTO roles (id,name,added_on) VALUES (?,?,?),(?,?,?),(?,?,?)"
	if adapter.Statements[0] != want {
		t.Errorf("Expected %q, got %q", want, adapter.Statements[0])
	}
	if len(adapter.Args[0]) != 9 {
		t.Fatalf("Expected 9 args, got %d", len(adapter.Args[0]))
	}
	if adapter.Args[0][8] != nil {
		t.Errorf("Expected the last arg to be an explicit NULL, got %v", adapter.Args[0][8])
	}
	if adapter.RowCounts["roles"] != 3 {
		t.Errorf("Expected 3 rows, got %d", adapter.RowCounts["roles"])
	}
}

func TestSeedEmptyIsNoop(t *testing.T) {
	adapter := dbtest.New(types.SQLite, common.Capabilities{})

	if err := Seed(context.Background(), adapter, MustRows("settings", []string{"name", "value"})); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if len(adapter.Statements) != 0 {
		t.Errorf("Expected no statements, got %v", adapter.Statements)
	}
}

func TestSeedAllStopsAtFirstFailure(t *testing.T) {
	cause := errors.New("duplicate entry")
	adapter := dbtest.New(types.Postgres, common.Capabilities{})
	adapter.FailOn = "INSERT INTO torrents"
	adapter.Err = cause

	plan := []*Rows{
		MustRows("users", []string{"id"}, []any{1}),
		MustRows("torrents", []string{"id", "user_id"}, []any{1, 1}),
		MustRows("torrent_peers", []string{"id", "torrent_id"}, []any{1, 1}),
	}

	var seeded []string
	err := SeedAll(context.Background(), adapter, plan, func(rows *Rows) {
		seeded = append(seeded, rows.Table)
	})

	var seedErr *types.SeedError
	if !errors.As(err, &seedErr) {
		t.Fatalf("Expected *types.SeedError, got %v", err)
	}
	if seedErr.Table != "torrents" || seedErr.Dialect != types.Postgres || !errors.Is(err, cause) {
		t.Errorf("Unexpected error: %v", err)
	}
	if len(seeded) != 1 || seeded[0] != "users" {
		t.Errorf("Expected only users to be seeded, got %v", seeded)
	}
	if _, ok := adapter.RowCounts["torrent_peers"]; ok {
		t.Error("Expected torrent_peers not to be seeded")
	}
}
