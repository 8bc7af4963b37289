package config

import (
	"fmt"
	"strconv"

	"github.com/Rana718/dbfixture/internal/types"
	"github.com/spf13/viper"
)

var (
	mysqlEnv = []string{
		"DB_MYSQL_HOST", "DB_MYSQL_PORT", "DB_MYSQL_DATABASE", "DB_MYSQL_USERNAME",
		"DB_MYSQL_PASSWORD", "DB_MYSQL_CHARSET", "DB_MYSQL_COLLATION",
	}
	sqliteEnv   = []string{"DB_SQLITE_DATABASE"}
	postgresEnv = []string{
		"DB_PGSQL_HOST", "DB_PGSQL_PORT", "DB_PGSQL_DATABASE", "DB_PGSQL_SCHEMA",
		"DB_PGSQL_USERNAME", "DB_PGSQL_PASSWORD", "DB_PGSQL_CHARSET",
	}
)

// Connection is the configuration of one retained dialect.
type Connection interface {
	Dialect() types.Dialect
}

type MySQLConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      string `json:"port" yaml:"port"`
	Database  string `json:"database" yaml:"database"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"-" yaml:"-"`
	Charset   string `json:"charset" yaml:"charset"`
	Collation string `json:"collation" yaml:"collation"`
	Timezone  string `json:"timezone" yaml:"timezone"`
}

func (c *MySQLConfig) Dialect() types.Dialect { return types.MySQL }

type SQLiteConfig struct {
	Database              string `json:"database" yaml:"database"`
	ForeignKeyConstraints bool   `json:"foreign_key_constraints" yaml:"foreign_key_constraints"`
}

func (c *SQLiteConfig) Dialect() types.Dialect { return types.SQLite }

type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	Database string `json:"database" yaml:"database"`
	Schema   string `json:"schema" yaml:"schema"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"-" yaml:"-"`
	Charset  string `json:"charset" yaml:"charset"`
	Timezone string `json:"timezone" yaml:"timezone"`
	SSLMode  string `json:"sslmode" yaml:"sslmode"`
}

func (c *PostgresConfig) Dialect() types.Dialect { return types.Postgres }

// Config holds one entry per retained dialect; a nil entry means none of the
// dialect's environment inputs were set and the dialect takes no part in the run.
type Config struct {
	MySQL    *MySQLConfig
	SQLite   *SQLiteConfig
	Postgres *PostgresConfig
}

// Load resolves the connection configs from the environment (and any config
// file already read into v). A variable set to the empty string counts as set.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	var cfg Config

	if !allUnset(v, mysqlEnv) {
		cfg.MySQL = &MySQLConfig{
			Host:      getString(v, "DB_MYSQL_HOST", "127.0.0.1"),
			Port:      getString(v, "DB_MYSQL_PORT", "3306"),
			Database:  getString(v, "DB_MYSQL_DATABASE", ""),
			Username:  getString(v, "DB_MYSQL_USERNAME", "root"),
			Password:  getString(v, "DB_MYSQL_PASSWORD", ""),
			Charset:   getString(v, "DB_MYSQL_CHARSET", "utf8mb4"),
			Collation: getString(v, "DB_MYSQL_COLLATION", "utf8mb4_0900_ai_ci"),
			Timezone:  "+00:00",
		}
	}

	if !allUnset(v, sqliteEnv) {
		cfg.SQLite = &SQLiteConfig{
			Database:              getString(v, "DB_SQLITE_DATABASE", ""),
			ForeignKeyConstraints: true,
		}
	}

	if !allUnset(v, postgresEnv) {
		cfg.Postgres = &PostgresConfig{
			Host:     getString(v, "DB_PGSQL_HOST", "127.0.0.1"),
			Port:     getString(v, "DB_PGSQL_PORT", "5432"),
			Database: getString(v, "DB_PGSQL_DATABASE", "postgres"),
			Schema:   getString(v, "DB_PGSQL_SCHEMA", "public"),
			Username: getString(v, "DB_PGSQL_USERNAME", "postgres"),
			Password: getString(v, "DB_PGSQL_PASSWORD", ""),
			Charset:  getString(v, "DB_PGSQL_CHARSET", "utf8"),
			Timezone: "UTC",
			SSLMode:  getString(v, "DB_PGSQL_SSLMODE", "prefer"),
		}
	}

	return &cfg, nil
}

// allUnset reports whether none of the keys is present in the environment or config file.
func allUnset(v *viper.Viper, keys []string) bool {
	for _, key := range keys {
		if v.IsSet(key) {
			return false
		}
	}
	return true
}

// getString mirrors `getenv(key) ?: fallback`: unset and empty both fall back.
func getString(v *viper.Viper, key, fallback string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) Validate() error {
	if c.MySQL != nil {
		if _, err := strconv.ParseUint(c.MySQL.Port, 10, 16); err != nil {
			return fmt.Errorf("invalid DB_MYSQL_PORT %q: %w", c.MySQL.Port, err)
		}
	}
	if c.SQLite != nil && c.SQLite.Database == "" {
		return fmt.Errorf("DB_SQLITE_DATABASE cannot be empty")
	}
	if c.Postgres != nil {
		if _, err := strconv.ParseUint(c.Postgres.Port, 10, 16); err != nil {
			return fmt.Errorf("invalid DB_PGSQL_PORT %q: %w", c.Postgres.Port, err)
		}
		switch c.Postgres.SSLMode {
		case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
		default:
			return fmt.Errorf("unsupported DB_PGSQL_SSLMODE: %s", c.Postgres.SSLMode)
		}
	}
	return nil
}

// Connections returns the retained connection configs in the fixed dialect order.
func (c *Config) Connections() []Connection {
	var conns []Connection
	for _, dialect := range types.Dialects {
		if conn := c.Get(dialect); conn != nil {
			conns = append(conns, conn)
		}
	}
	return conns
}

// Get returns the config for a dialect, or nil when it was omitted.
func (c *Config) Get(dialect types.Dialect) Connection {
	switch dialect {
	case types.MySQL:
		if c.MySQL != nil {
			return c.MySQL
		}
	case types.SQLite:
		if c.SQLite != nil {
			return c.SQLite
		}
	case types.Postgres:
		if c.Postgres != nil {
			return c.Postgres
		}
	}
	return nil
}

func (c *Config) Empty() bool {
	return len(c.Connections()) == 0
}
