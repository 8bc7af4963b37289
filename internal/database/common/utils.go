package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rana718/dbfixture/internal/types"
)

// DropStrategy is how a dialect gets past foreign keys while dropping every table.
type DropStrategy int

const (
	// DisableForeignKeyChecks turns constraint enforcement off for the session,
	// drops the tables in any order, and turns it back on.
	DisableForeignKeyChecks DropStrategy = iota
	// DropCascade drops all tables in one statement that cascades to dependents.
	DropCascade
)

func (s DropStrategy) String() string {
	switch s {
	case DisableForeignKeyChecks:
		return "disable foreign key checks"
	case DropCascade:
		return "drop cascade"
	default:
		return "unknown"
	}
}

// Capabilities is the per-dialect record the pipeline consults instead of
// comparing dialect names.
type Capabilities struct {
	TableComments     bool
	ColumnComments    bool
	SequenceBackedIDs bool
	UnsignedIntegers  bool
	DropStrategy      DropStrategy
}

// Literal renders a default value. quote must produce a quoted string literal.
func Literal(value any, quote func(string) string, formatBool func(bool) string) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case types.Expression:
		return string(v)
	case bool:
		return formatBool(v)
	case int:
		return quote(strconv.Itoa(v))
	case int64:
		return quote(strconv.FormatInt(v, 10))
	case string:
		return quote(v)
	default:
		return quote(fmt.Sprintf("%v", v))
	}
}

// ConstraintName builds the `<table>_<columns>_<suffix>` name used for unique and foreign keys.
func ConstraintName(table string, columns []string, suffix string) string {
	name := table + "_" + strings.Join(columns, "_") + "_" + suffix
	return strings.ToLower(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}

// QuoteList quotes each identifier and joins them with ", ".
func QuoteList(names []string, quote func(string) string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quote(name)
	}
	return strings.Join(quoted, ", ")
}

// ReferentialClause renders the ON DELETE / ON UPDATE tail of a foreign key.
func ReferentialClause(fk types.ForeignKeySpec) string {
	var parts []string
	if fk.OnDelete != "" {
		parts = append(parts, "on delete "+string(fk.OnDelete))
	}
	if fk.OnUpdate != "" {
		parts = append(parts, "on update "+string(fk.OnUpdate))
	}
	return strings.Join(parts, " ")
}

// CreateTableBody renders the column lines followed by the unique, primary
// and foreign key constraints shared by every dialect.
func CreateTableBody(table types.TableSpec, quote func(string) string, formatColumn func(types.ColumnSpec) string) []string {
	var lines []string

	for _, column := range table.Columns {
		lines = append(lines, fmt.Sprintf("%s %s", quote(column.Name), formatColumn(column)))
	}

	for _, column := range table.Columns {
		if column.Unique {
			lines = append(lines, fmt.Sprintf("constraint %s unique (%s)",
				quote(ConstraintName(table.Name, []string{column.Name}, "unique")), quote(column.Name)))
		}
	}

	if len(table.PrimaryKey) > 0 {
		lines = append(lines, fmt.Sprintf("primary key (%s)", QuoteList(table.PrimaryKey, quote)))
	}

	for _, fk := range table.ForeignKeys {
		line := fmt.Sprintf("constraint %s foreign key (%s) references %s (%s)",
			quote(ConstraintName(table.Name, fk.Columns, "foreign")),
			QuoteList(fk.Columns, quote),
			quote(fk.RefTable),
			QuoteList(fk.RefColumns, quote))
		if clause := ReferentialClause(fk); clause != "" {
			line += " " + clause
		}
		lines = append(lines, line)
	}

	return lines
}

// RowCountQuery batches COUNT(*) for every table into one UNION ALL query.
func RowCountQuery(tableNames []string, quote func(string) string, quoteLiteral func(string) string) string {
	parts := make([]string, 0, len(tableNames))
	for _, tableName := range tableNames {
		parts = append(parts, fmt.Sprintf("SELECT %s AS table_name, COUNT(*) AS row_count FROM %s",
			quoteLiteral(tableName), quote(tableName)))
	}
	return strings.Join(parts, " UNION ALL ")
}
