package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/database/common"
	"github.com/Rana718/dbfixture/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type Adapter struct {
	cfg  *config.PostgresConfig
	pool *pgxpool.Pool
	conn *pgxpool.Conn
	qb   squirrel.StatementBuilderType
}

var capabilities = common.Capabilities{
	TableComments:     true,
	ColumnComments:    true,
	SequenceBackedIDs: true,
	UnsignedIntegers:  false,
	DropStrategy:      common.DropCascade,
}

func New(cfg *config.PostgresConfig) *Adapter {
	return &Adapter{
		cfg: cfg,
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Dialect() types.Dialect { return types.Postgres }

func (p *Adapter) Capabilities() common.Capabilities { return capabilities }

// ConnectionURL renders the config as a postgres:// URL; the password is
// redacted when redact is set so the result can be logged.
func (p *Adapter) ConnectionURL(redact bool) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(p.cfg.Host, p.cfg.Port),
		Path:   "/" + p.cfg.Database,
	}
	if redact {
		u.User = url.User(p.cfg.Username)
	} else {
		u.User = url.UserPassword(p.cfg.Username, p.cfg.Password)
	}

	query := url.Values{}
	if p.cfg.SSLMode != "" {
		query.Set("sslmode", p.cfg.SSLMode)
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// Connect acquires one connection and keeps it for the adapter's lifetime so
// the session settings hold for every statement.
func (p *Adapter) Connect(ctx context.Context) error {
	config, err := pgxpool.ParseConfig(p.ConnectionURL(false))
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec
	config.ConnConfig.RuntimeParams["client_encoding"] = p.cfg.Charset
	config.ConnConfig.RuntimeParams["TimeZone"] = p.cfg.Timezone
	config.ConnConfig.RuntimeParams["search_path"] = p.cfg.Schema

	config.MaxConns = 1
	config.MinConns = 0

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		pool.Close()
		return describeConnectError(p.cfg.Database, err)
	}

	p.pool = pool
	p.conn = conn
	return nil
}

// describeConnectError names the server-side reason for the common handshake failures.
func describeConnectError(database string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "3D000":
			return fmt.Errorf("database %s does not exist: %w", database, err)
		case "28P01", "28000":
			return fmt.Errorf("authentication failed: %w", err)
		}
	}
	return fmt.Errorf("failed to acquire connection: %w", err)
}

func (p *Adapter) Close() error {
	if p.conn != nil {
		p.conn.Release()
		p.conn = nil
	}
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.conn.Ping(ctx)
}

func (p *Adapter) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := p.conn.Exec(ctx, query, args...)
	return err
}

func (p *Adapter) StatementBuilder() squirrel.StatementBuilderType {
	return p.qb
}

func (p *Adapter) QuoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

func (p *Adapter) qualified(name string) string {
	return pq.QuoteIdentifier(p.cfg.Schema) + "." + pq.QuoteIdentifier(name)
}
