package database

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
)

type Capabilities = common.Capabilities

type DatabaseAdapter interface {
	Dialect() types.Dialect
	Capabilities() Capabilities
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Raw execution on the adapter's single pinned connection
	Exec(ctx context.Context, query string, args ...interface{}) error

	// Schema operations
	GetAllTableNames(ctx context.Context) ([]string, error)
	DropTables(ctx context.Context, tableNames []string) error
	SetForeignKeyChecks(ctx context.Context, enabled bool) error
	GenerateCreateTableSQL(table types.TableSpec) string
	GenerateCommentSQL(table types.TableSpec) []string
	FormatColumnType(column types.ColumnSpec) string

	// Data operations
	QuoteIdentifier(name string) string
	StatementBuilder() squirrel.StatementBuilderType
	GetAllTableRowCounts(ctx context.Context, tableNames []string) (map[string]int, error)
}

// SequenceAdapter is implemented by dialects whose auto-increment ids come
// from a separate sequence object.
type SequenceAdapter interface {
	RestartSequence(ctx context.Context, name string, next int64) error
	SequenceNextValue(ctx context.Context, name string) (int64, error)
}
