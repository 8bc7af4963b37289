// Package dbtest provides an in-memory adapter that records every statement
// it is asked to run.
package dbtest

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
)

var (
	_ database.DatabaseAdapter = (*Adapter)(nil)
	_ database.SequenceAdapter = (*Adapter)(nil)
)

type Adapter struct {
	DialectName types.Dialect
	Caps        common.Capabilities

	// Tables are the tables that currently exist, in creation order.
	Tables []string
	// RowCounts tracks rows inserted per table.
	RowCounts map[string]int
	// Statements holds every statement executed, in order.
	Statements []string
	Args       [][]interface{}
	Sequences  map[string]int64

	// FailOn makes any statement containing it fail with Err.
	FailOn string
	Err    error

	Connected bool
	Closed    bool
}

func New(dialect types.Dialect, caps common.Capabilities) *Adapter {
	return &Adapter{
		DialectName: dialect,
		Caps:        caps,
		RowCounts:   make(map[string]int),
		Sequences:   make(map[string]int64),
	}
}

func (a *Adapter) Dialect() types.Dialect { return a.DialectName }

func (a *Adapter) Capabilities() common.Capabilities { return a.Caps }

func (a *Adapter) Connect(ctx context.Context) error {
	if a.FailOn == "connect" {
		return a.Err
	}
	a.Connected = true
	return nil
}

func (a *Adapter) Close() error {
	a.Closed = true
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error { return nil }

func (a *Adapter) fail(statement string) error {
	if a.FailOn != "" && strings.Contains(statement, a.FailOn) {
		if a.Err != nil {
			return a.Err
		}
		return fmt.Errorf("forced failure on %q", statement)
	}
	return nil
}

func (a *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	if err := a.fail(query); err != nil {
		return err
	}
	a.Statements = append(a.Statements, query)
	a.Args = append(a.Args, args)

	fields := strings.Fields(query)
	switch {
	case strings.HasPrefix(query, "create table ") && len(fields) >= 3:
		a.Tables = append(a.Tables, fields[2])
	case strings.HasPrefix(query, "INSERT INTO ") && len(fields) >= 3:
		values := query[strings.Index(query, " VALUES ")+len(" VALUES "):]
		a.RowCounts[fields[2]] += strings.Count(values, "(")
	}
	return nil
}

func (a *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	if err := a.fail("list tables"); err != nil {
		return nil, err
	}
	return append([]string(nil), a.Tables...), nil
}

func (a *Adapter) DropTables(ctx context.Context, tableNames []string) error {
	statement := "drop tables " + strings.Join(tableNames, ", ")
	if err := a.fail(statement); err != nil {
		return err
	}
	a.Statements = append(a.Statements, statement)
	a.Tables = nil
	a.RowCounts = make(map[string]int)
	return nil
}

func (a *Adapter) SetForeignKeyChecks(ctx context.Context, enabled bool) error {
	statement := fmt.Sprintf("foreign key checks %t", enabled)
	if err := a.fail(statement); err != nil {
		return err
	}
	a.Statements = append(a.Statements, statement)
	return nil
}

func (a *Adapter) GenerateCreateTableSQL(table types.TableSpec) string {
	return "create table " + table.Name
}

func (a *Adapter) GenerateCommentSQL(table types.TableSpec) []string {
	var statements []string
	if table.Comment != "" {
		statements = append(statements, "comment on table "+table.Name)
	}
	for _, column := range table.Columns {
		if column.Comment != "" {
			statements = append(statements, "comment on column "+table.Name+"."+column.Name)
		}
	}
	return statements
}

func (a *Adapter) FormatColumnType(column types.ColumnSpec) string {
	return column.Type.String()
}

func (a *Adapter) QuoteIdentifier(name string) string { return name }

func (a *Adapter) StatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (a *Adapter) GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error) {
	counts := make(map[string]int, len(tableNames))
	for _, name := range tableNames {
		counts[name] = a.RowCounts[name]
	}
	return counts, nil
}

func (a *Adapter) RestartSequence(ctx context.Context, name string, next int64) error {
	statement := fmt.Sprintf("restart %s %d", name, next)
	if err := a.fail(statement); err != nil {
		return err
	}
	a.Statements = append(a.Statements, statement)
	a.Sequences[name] = next
	return nil
}

func (a *Adapter) SequenceNextValue(ctx context.Context, name string) (int64, error) {
	next, ok := a.Sequences[name]
	if !ok {
		return 1, nil
	}
	return next, nil
}
