package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
	"github.com/go-sql-driver/mysql"
)

type Adapter struct {
	cfg  *config.MySQLConfig
	db   *sql.DB
	conn *sql.Conn
	qb   squirrel.StatementBuilderType
}

var capabilities = common.Capabilities{
	TableComments:     true,
	ColumnComments:    true,
	SequenceBackedIDs: false,
	UnsignedIntegers:  true,
	DropStrategy:      common.DisableForeignKeyChecks,
}

func New(cfg *config.MySQLConfig) *Adapter {
	return &Adapter{
		cfg: cfg,
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (m *Adapter) Dialect() types.Dialect { return types.MySQL }

func (m *Adapter) Capabilities() common.Capabilities { return capabilities }

func (m *Adapter) driverConfig() *mysql.Config {
	dc := mysql.NewConfig()
	dc.User = m.cfg.Username
	dc.Passwd = m.cfg.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	dc.DBName = m.cfg.Database
	dc.ParseTime = true
	dc.Loc = time.UTC
	dc.Timeout = 10 * time.Second
	return dc
}

// Connect opens a single session and applies the charset, collation and
// time zone to it. Every later statement runs on that session.
func (m *Adapter) Connect(ctx context.Context) error {
	connector, err := mysql.NewConnector(m.driverConfig())
	if err != nil {
		return fmt.Errorf("failed to build MySQL connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return describeConnectError(m.cfg.Database, err)
	}

	m.db = db
	m.conn = conn

	if err := m.configureSession(ctx); err != nil {
		m.Close()
		return err
	}
	return nil
}

func (m *Adapter) configureSession(ctx context.Context) error {
	names := fmt.Sprintf("SET NAMES %s", quoteLiteral(m.cfg.Charset))
	if m.cfg.Collation != "" {
		names += " COLLATE " + quoteLiteral(m.cfg.Collation)
	}
	if _, err := m.conn.ExecContext(ctx, names); err != nil {
		return fmt.Errorf("failed to set connection charset: %w", err)
	}

	if _, err := m.conn.ExecContext(ctx, fmt.Sprintf("SET time_zone = %s", quoteLiteral(m.cfg.Timezone))); err != nil {
		return fmt.Errorf("failed to set connection time zone: %w", err)
	}
	return nil
}

// describeConnectError names the server-side reason for the common handshake failures.
func describeConnectError(database string, err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1049:
			return fmt.Errorf("database %s does not exist: %w", database, err)
		case 1045:
			return fmt.Errorf("access denied: %w", err)
		}
	}
	return fmt.Errorf("failed to open MySQL connection: %w", err)
}

func (m *Adapter) Close() error {
	var firstErr error
	if m.conn != nil {
		firstErr = m.conn.Close()
		m.conn = nil
	}
	if m.db != nil {
		if err := m.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.db = nil
	}
	return firstErr
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.conn.PingContext(ctx)
}

func (m *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := m.conn.ExecContext(ctx, query, args...)
	return err
}

func (m *Adapter) StatementBuilder() squirrel.StatementBuilderType {
	return m.qb
}

func (m *Adapter) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func quoteLiteral(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
