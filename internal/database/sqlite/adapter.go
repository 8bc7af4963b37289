package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
)

const memoryPath = ":memory:"

type Adapter struct {
	cfg  *config.SQLiteConfig
	db   *sql.DB
	conn *sql.Conn
	qb   squirrel.StatementBuilderType
}

var capabilities = common.Capabilities{
	TableComments:     false,
	ColumnComments:    false,
	SequenceBackedIDs: false,
	UnsignedIntegers:  false,
	DropStrategy:      common.DisableForeignKeyChecks,
}

func New(cfg *config.SQLiteConfig) *Adapter {
	return &Adapter{
		cfg: cfg,
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (s *Adapter) Dialect() types.Dialect { return types.SQLite }

func (s *Adapter) Capabilities() common.Capabilities { return capabilities }

// Connect requires the database file to exist already; the driver would
// otherwise create an empty one silently.
func (s *Adapter) Connect(ctx context.Context) error {
	if s.cfg.Database != memoryPath {
		if _, err := os.Stat(s.cfg.Database); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("database file %s does not exist", s.cfg.Database)
			}
			return fmt.Errorf("failed to stat database file %s: %w", s.cfg.Database, err)
		}
	}

	db, err := sql.Open(driverName, buildDSN(s.cfg.Database))
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	s.db = db
	s.conn = conn

	if err := s.conn.PingContext(ctx); err != nil {
		s.Close()
		return fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if err := s.SetForeignKeyChecks(ctx, s.cfg.ForeignKeyConstraints); err != nil {
		s.Close()
		return fmt.Errorf("failed to configure foreign keys: %w", err)
	}
	return nil
}

func (s *Adapter) Close() error {
	var firstErr error
	if s.conn != nil {
		firstErr = s.conn.Close()
		s.conn = nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.db = nil
	}
	return firstErr
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

// Query is used by integrity checks that need to read back from the pinned session.
func (s *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return s.conn.QueryContext(ctx, query, args...)
}

func (s *Adapter) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.conn.QueryRowContext(ctx, query, args...)
}

func (s *Adapter) StatementBuilder() squirrel.StatementBuilderType {
	return s.qb
}

func (s *Adapter) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
