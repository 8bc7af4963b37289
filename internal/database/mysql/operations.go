package mysql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
)

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := m.qb.Select("table_name").From("information_schema.tables").
		Where(squirrel.Expr("table_schema = DATABASE()")).
		Where(squirrel.Eq{"table_type": "BASE TABLE"}).
		OrderBy("table_name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.conn.QueryContext(ctx, query, args...)
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

func (m *Adapter) SetForeignKeyChecks(ctx context.Context, enabled bool) error {
	value := 0
	if enabled {
		value = 1
	}
	return m.Exec(ctx, fmt.Sprintf("SET FOREIGN_KEY_CHECKS = %d", value))
}

func (m *Adapter) DropTables(ctx context.Context, tableNames []string) error {
	if len(tableNames) == 0 {
		return nil
	}
	return m.Exec(ctx, "DROP TABLE IF EXISTS "+common.QuoteList(tableNames, m.QuoteIdentifier))
}

func (m *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	if len(tableNames) == 0 {
		return make(map[string]int), nil
	}

	rows, err := m.conn.QueryContext(ctx, common.RowCountQuery(tableNames, m.QuoteIdentifier, quoteLiteral))
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

func (m *Adapter) GenerateCreateTableSQL(table types.TableSpec) string {
	lines := common.CreateTableBody(table, m.QuoteIdentifier, m.FormatColumnType)

	query := fmt.Sprintf("create table %s (\n  %s\n)", m.QuoteIdentifier(table.Name), strings.Join(lines, ",\n  "))
	if m.cfg != nil && m.cfg.Charset != "" {
		query += " default character set " + m.cfg.Charset
		if m.cfg.Collation != "" {
			query += " collate " + quoteLiteral(m.cfg.Collation)
		}
	}
	return query
}

// GenerateCommentSQL only covers the table comment; column comments are
// rendered inline by FormatColumnType.
func (m *Adapter) GenerateCommentSQL(table types.TableSpec) []string {
	if table.Comment == "" {
		return nil
	}
	return []string{fmt.Sprintf("alter table %s comment = %s", m.QuoteIdentifier(table.Name), quoteLiteral(table.Comment))}
}

func (m *Adapter) FormatColumnType(column types.ColumnSpec) string {
	var b strings.Builder
	b.WriteString(columnType(column))

	if column.Unsigned && column.Type.IsInteger() {
		b.WriteString(" unsigned")
	}

	if column.Nullable {
		b.WriteString(" null")
	} else {
		b.WriteString(" not null")
	}

	if column.HasDefault() {
		b.WriteString(" default ")
		b.WriteString(common.Literal(column.Default, quoteLiteral, formatBool))
	}

	if column.AutoIncrement {
		b.WriteString(" auto_increment primary key")
	}

	if column.Comment != "" {
		b.WriteString(" comment ")
		b.WriteString(quoteLiteral(column.Comment))
	}

	return b.String()
}

func columnType(column types.ColumnSpec) string {
	switch column.Type {
	case types.Boolean:
		return "tinyint(1)"
	case types.SmallInteger:
		return "smallint"
	case types.Integer:
		return "int"
	case types.BigInteger:
		return "bigint"
	case types.Double:
		return "double"
	case types.Decimal:
		if column.Precision == nil {
			return "decimal"
		}
		scale := 0
		if column.Scale != nil {
			scale = *column.Scale
		}
		return fmt.Sprintf("decimal(%d, %d)", *column.Precision, scale)
	case types.String:
		length := column.Length
		if length == 0 {
			length = 255
		}
		return fmt.Sprintf("varchar(%d)", length)
	case types.Text:
		return "text"
	case types.MediumText:
		return "mediumtext"
	case types.Timestamp:
		return "timestamp"
	case types.DateTime:
		return "datetime"
	case types.Date:
		return "date"
	case types.Time:
		return "time"
	case types.Binary:
		return "blob"
	case types.MediumBinary:
		return "mediumblob"
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
