package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/dbfixture/internal/config"
	"github.com/Rana718/dbfixture/internal/database"
	"github.com/Rana718/dbfixture/internal/migrator"
	"github.com/Rana718/dbfixture/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var skipFlags = map[types.Dialect]string{
	types.MySQL:    "skip-mysql-migrate",
	types.Postgres: "skip-postgres-migrate",
	types.SQLite:   "skip-sqlite-migrate",
}

func addSkipFlags(flags *pflag.FlagSet) {
	flags.Bool(skipFlags[types.MySQL], false, "Leave the MySQL database untouched")
	flags.Bool(skipFlags[types.Postgres], false, "Leave the PostgreSQL database untouched")
	flags.Bool(skipFlags[types.SQLite], false, "Leave the SQLite database untouched")
}

// skipSet reads the skip flags; flags not defined on the command count as unset.
func skipSet(flags *pflag.FlagSet) migrator.SkipSet {
	skip := migrator.SkipSet{}
	for dialect, name := range skipFlags {
		if value, err := flags.GetBool(name); err == nil && value {
			skip[dialect] = true
		}
	}
	return skip
}

// openRegistry loads the configuration and connects every configured database.
func openRegistry(ctx context.Context) (*database.Registry, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Empty() {
		color.Yellow("⚠️  No database is configured; set DB_MYSQL_*, DB_SQLITE_DATABASE or DB_PGSQL_* variables")
	}

	return database.Open(ctx, cfg)
}
