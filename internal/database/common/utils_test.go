package common

import (
	"strings"
	"testing"

	"github.com/Rana718/dbfixture/internal/types"
)

func quote(name string) string { return `"` + name + `"` }

func quoteLiteral(value string) string { return "'" + strings.ReplaceAll(value, "'", "''") + "'" }

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "NULL"},
		{"expression", types.CurrentTimestamp, "CURRENT_TIMESTAMP"},
		{"bool", true, "true"},
		{"int", 0, "'0'"},
		{"int64", int64(-5), "'-5'"},
		{"string", "it's", "'it''s'"},
		{"float", 1.5, "'1.5'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Literal(tt.value, quoteLiteral, formatBool); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestConstraintName(t *testing.T) {
	if got := ConstraintName("Role_User", []string{"role_id", "user_id"}, "foreign"); got != "role_user_role_id_user_id_foreign" {
		t.Errorf("Unexpected constraint name: %s", got)
	}
}

func TestReferentialClause(t *testing.T) {
	if got := ReferentialClause(types.CascadeFK("user_id", "users")); got != "on delete cascade on update cascade" {
		t.Errorf("Unexpected clause: %s", got)
	}
	if got := ReferentialClause(types.ForeignKeySpec{}); got != "" {
		t.Errorf("Expected an empty clause, got %s", got)
	}
}

func TestCreateTableBody(t *testing.T) {
	table := types.TableSpec{
		Name: "role_tag",
		Columns: []types.ColumnSpec{
			{Name: "tag_id", Type: types.BigInteger},
			{Name: "role_id", Type: types.BigInteger},
			{Name: "code", Type: types.String, Unique: true},
		},
		PrimaryKey:  []string{"tag_id", "role_id"},
		ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("tag_id", "torrent_tags")},
	}

	lines := CreateTableBody(table, quote, func(c types.ColumnSpec) string { return c.Type.String() })

	want := []string{
		`"tag_id" bigInteger`,
		`"role_id" bigInteger`,
		`"code" string`,
		`constraint "role_tag_code_unique" unique ("code")`,
		`primary key ("tag_id", "role_id")`,
		`constraint "role_tag_tag_id_foreign" foreign key ("tag_id") references "torrent_tags" ("id") on delete cascade on update cascade`,
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("Unexpected body:\n%s", strings.Join(lines, "\n"))
	}
}

func TestRowCountQuery(t *testing.T) {
	got := RowCountQuery([]string{"users", "roles"}, quote, quoteLiteral)
	want := `SELECT 'users' AS table_name, COUNT(*) AS row_count FROM "users" UNION ALL ` +
		`SELECT 'roles' AS table_name, COUNT(*) AS row_count FROM "roles"`
	if got != want {
		t.Errorf("Unexpected query:\n%s", got)
	}
}

func TestDropStrategyString(t *testing.T) {
	if DropCascade.String() != "drop cascade" || DisableForeignKeyChecks.String() != "disable foreign key checks" {
		t.Error("Unexpected drop strategy names")
	}
}
