package database

import (
	"fmt"

	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/database/mysql"
	"github.com/Rana718/dbfixture/internal/database/postgres"
	"github.com/Rana718/dbfixture/internal/database/sqlite"
)

func NewAdapter(conn config.Connection) (DatabaseAdapter, error) {
	switch c := conn.(type) {
	case *config.MySQLConfig:
		return mysql.New(c), nil
	case *config.SQLiteConfig:
		return sqlite.New(c), nil
	case *config.PostgresConfig:
		return postgres.New(c), nil
	default:
		return nil, fmt.Errorf("unsupported connection config %T", conn)
	}
}

var (
	_ DatabaseAdapter = (*mysql.Adapter)(nil)
	_ DatabaseAdapter = (*sqlite.Adapter)(nil)
	_ DatabaseAdapter = (*postgres.Adapter)(nil)
	_ SequenceAdapter = (*postgres.Adapter)(nil)
)
