package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
)

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := s.qb.Select("name").From("sqlite_master").
		Where(squirrel.Eq{"type": "table"}).
		Where(squirrel.NotLike{"name": "sqlite_%"}).
		OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (s *Adapter) SetForeignKeyChecks(ctx context.Context, enabled bool) error {
	value := "OFF"
	if enabled {
		value = "ON"
	}
	return s.Exec(ctx, "PRAGMA foreign_keys = "+value)
}

// DropTables issues one statement per table; SQLite has no multi-table DROP.
func (s *Adapter) DropTables(ctx context.Context, tableNames []string) error {
	for _, tableName := range tableNames {
		if err := s.Exec(ctx, "DROP TABLE IF EXISTS "+s.QuoteIdentifier(tableName)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tableName, err)
		}
	}
	return nil
}

func (s *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	if len(tableNames) == 0 {
		return make(map[string]int), nil
	}

	rows, err := s.conn.QueryContext(ctx, common.RowCountQuery(tableNames, s.QuoteIdentifier, quoteLiteral))
	if err != nil {
		return nil, fmt.Errorf("failed to batch count table rows: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int, len(tableNames))
	for rows.Next() {
		var tableName string
		var count int
		if err := rows.Scan(&tableName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan batch count result: %w", err)
		}
		result[tableName] = count
	}
	return result, rows.Err()
}

// ForeignKeyViolations runs PRAGMA foreign_key_check and returns one
// "table -> parent" entry per violating row.
func (s *Adapter) ForeignKeyViolations(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return nil, fmt.Errorf("failed to check foreign keys: %w", err)
	}
	defer rows.Close()

	var violations []string
	for rows.Next() {
		var table, parent string
		var rowID, fkID interface{}
		if err := rows.Scan(&table, &rowID, &parent, &fkID); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key violation: %w", err)
		}
		violations = append(violations, fmt.Sprintf("%s -> %s", table, parent))
	}
	return violations, rows.Err()
}

func (s *Adapter) GenerateCreateTableSQL(table types.TableSpec) string {
	lines := common.CreateTableBody(table, s.QuoteIdentifier, s.FormatColumnType)
	return fmt.Sprintf("create table %s (\n  %s\n)", s.QuoteIdentifier(table.Name), strings.Join(lines, ",\n  "))
}

// GenerateCommentSQL returns nothing: SQLite has no comment syntax.
func (s *Adapter) GenerateCommentSQL(table types.TableSpec) []string {
	return nil
}

func (s *Adapter) FormatColumnType(column types.ColumnSpec) string {
	if column.AutoIncrement {
		return "integer primary key autoincrement not null"
	}

	var b strings.Builder
	b.WriteString(columnType(column))

	if column.Nullable {
		b.WriteString(" null")
	} else {
		b.WriteString(" not null")
	}

	if column.HasDefault() {
		b.WriteString(" default ")
		b.WriteString(common.Literal(column.Default, quoteLiteral, formatBool))
	}

	return b.String()
}

func columnType(column types.ColumnSpec) string {
	switch column.Type {
	case types.Boolean:
		return "tinyint(1)"
	case types.SmallInteger, types.Integer, types.BigInteger:
		return "integer"
	case types.Double:
		return "double"
	case types.Decimal:
		return "numeric"
	case types.String:
		return "varchar"
	case types.Text, types.MediumText:
		return "text"
	case types.Timestamp, types.DateTime:
		return "datetime"
	case types.Date:
		return "date"
	case types.Time:
		return "time"
	case types.Binary, types.MediumBinary:
		return "blob"
	default:
		return "text"
	}
}

func formatBool(v bool) string {
	if v {
		return "'1'"
	}
	return "'0'"
}
