package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
	"github.com/lib/pq"
)

func (p *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	query, args, err := p.qb.Select("tablename").From("pg_catalog.pg_tables").
		Where(squirrel.Eq{"schemaname": p.cfg.Schema}).
		OrderBy("tablename").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.conn.Query(ctx, query, args...)
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

// SetForeignKeyChecks is unsupported; tables are dropped with CASCADE instead.
func (p *Adapter) SetForeignKeyChecks(ctx context.Context, enabled bool) error {
	return fmt.Errorf("postgres does not support toggling foreign key checks")
}

// DropTables drops every table in one statement, cascading to dependents.
func (p *Adapter) DropTables(ctx context.Context, tableNames []string) error {
	if len(tableNames) == 0 {
		return nil
	}
	return p.Exec(ctx, "DROP TABLE IF EXISTS "+common.QuoteList(tableNames, p.qualified)+" CASCADE")
}

func (p *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	if len(tableNames) == 0 {
		return make(map[string]int), nil
	}

	rows, err := p.conn.Query(ctx, common.RowCountQuery(tableNames, p.qualified, pq.QuoteLiteral))
	if err != nil {
		return nil, fmt.Errorf("failed to batch count table rows: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int, len(tableNames))
	for rows.Next() {
		var tableName string
		var count int64
		if err := rows.Scan(&tableName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan batch count result: %w", err)
		}
		result[tableName] = int(count)
	}
	return result, rows.Err()
}

func (p *Adapter) RestartSequence(ctx context.Context, name string, next int64) error {
	return p.Exec(ctx, fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH %d", p.qualified(name), next))
}

// SequenceNextValue reports the value the next nextval() call would return.
func (p *Adapter) SequenceNextValue(ctx context.Context, name string) (int64, error) {
	var lastValue int64
	var isCalled bool
	err := p.conn.QueryRow(ctx, fmt.Sprintf("SELECT last_value, is_called FROM %s", p.qualified(name))).
		Scan(&lastValue, &isCalled)
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence %s: %w", name, err)
	}
	if isCalled {
		return lastValue + 1, nil
	}
	return lastValue, nil
}

func (p *Adapter) GenerateCreateTableSQL(table types.TableSpec) string {
	lines := common.CreateTableBody(table, p.QuoteIdentifier, p.FormatColumnType)
	return fmt.Sprintf("create table %s (\n  %s\n)", p.QuoteIdentifier(table.Name), strings.Join(lines, ",\n  "))
}

func (p *Adapter) GenerateCommentSQL(table types.TableSpec) []string {
	var statements []string
	if table.Comment != "" {
		statements = append(statements, fmt.Sprintf("comment on table %s is %s",
			p.QuoteIdentifier(table.Name), pq.QuoteLiteral(table.Comment)))
	}
	for _, column := range table.Columns {
		if column.Comment == "" {
			continue
		}
		statements = append(statements, fmt.Sprintf("comment on column %s.%s is %s",
			p.QuoteIdentifier(table.Name), p.QuoteIdentifier(column.Name), pq.QuoteLiteral(column.Comment)))
	}
	return statements
}

func (p *Adapter) FormatColumnType(column types.ColumnSpec) string {
	if column.AutoIncrement {
		return serialType(column.Type) + " not null primary key"
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
		b.WriteString(common.Literal(column.Default, pq.QuoteLiteral, formatBool))
	}

	return b.String()
}

func serialType(t types.ColumnType) string {
	switch t {
	case types.SmallInteger:
		return "smallserial"
	case types.Integer:
		return "serial"
	default:
		return "bigserial"
	}
}

func columnType(column types.ColumnSpec) string {
	switch column.Type {
	case types.Boolean:
		return "boolean"
	case types.SmallInteger:
		return "smallint"
	case types.Integer:
		return "integer"
	case types.BigInteger:
		return "bigint"
	case types.Double:
		return "double precision"
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
	case types.Text, types.MediumText:
		return "text"
	case types.Timestamp, types.DateTime:
		return "timestamp(0) without time zone"
	case types.Date:
		return "date"
	case types.Time:
		return "time(0) without time zone"
	case types.Binary, types.MediumBinary:
		return "bytea"
	default:
		return "text"
	}
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
