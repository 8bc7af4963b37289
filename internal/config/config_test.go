package config

import (
	"os"
	"testing"

	"github.com/Rana718/dbfixture/internal/types"
	"github.com/spf13/viper"
)

// clearEnv unsets every recognized variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	var keys []string
	keys = append(keys, mysqlEnv...)
	keys = append(keys, sqliteEnv...)
	keys = append(keys, postgresEnv...)
	keys = append(keys, "DB_PGSQL_SSLMODE")

	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadOmitsUnconfiguredDialects(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MySQL != nil || cfg.SQLite != nil || cfg.Postgres != nil {
		t.Errorf("Expected every dialect to be omitted, got %+v", cfg)
	}
	if !cfg.Empty() {
		t.Error("Expected config to be empty")
	}
}

func TestLoadMySQLDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MYSQL_DATABASE", "tinyorm_test")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MySQL == nil {
		t.Fatal("Expected mysql to be retained")
	}
	if cfg.SQLite != nil || cfg.Postgres != nil {
		t.Errorf("Expected only mysql to be retained")
	}

	want := MySQLConfig{
		Host:      "127.0.0.1",
		Port:      "3306",
		Database:  "tinyorm_test",
		Username:  "root",
		Password:  "",
		Charset:   "utf8mb4",
		Collation: "utf8mb4_0900_ai_ci",
		Timezone:  "+00:00",
	}
	if *cfg.MySQL != want {
		t.Errorf("Expected %+v, got %+v", want, *cfg.MySQL)
	}
}

func TestLoadEmptyVariableStillRetainsDialect(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PGSQL_PASSWORD", "")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Postgres == nil {
		t.Fatal("Expected pgsql to be retained when a variable is set to the empty string")
	}
	if cfg.Postgres.Database != "postgres" || cfg.Postgres.Schema != "public" || cfg.Postgres.SSLMode != "prefer" {
		t.Errorf("Unexpected pgsql defaults: %+v", *cfg.Postgres)
	}
}

func TestLoadSSLModeDoesNotRetainPostgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PGSQL_SSLMODE", "disable")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Postgres != nil {
		t.Error("Expected DB_PGSQL_SSLMODE alone not to retain pgsql")
	}
}

func TestConnectionsOrder(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PGSQL_HOST", "db.internal")
	t.Setenv("DB_SQLITE_DATABASE", "/tmp/q_tinyorm_test_1.sqlite3")
	t.Setenv("DB_MYSQL_HOST", "db.internal")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	conns := cfg.Connections()
	if len(conns) != 3 {
		t.Fatalf("Expected 3 connections, got %d", len(conns))
	}
	for i, dialect := range []types.Dialect{types.MySQL, types.SQLite, types.Postgres} {
		if conns[i].Dialect() != dialect {
			t.Errorf("Expected connection %d to be %s, got %s", i, dialect, conns[i].Dialect())
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty", cfg: Config{}},
		{name: "bad mysql port", cfg: Config{MySQL: &MySQLConfig{Port: "abc"}}, wantErr: true},
		{name: "empty sqlite path", cfg: Config{SQLite: &SQLiteConfig{}}, wantErr: true},
		{name: "bad sslmode", cfg: Config{Postgres: &PostgresConfig{Port: "5432", SSLMode: "maybe"}}, wantErr: true},
		{name: "valid", cfg: Config{
			MySQL:    &MySQLConfig{Port: "3306"},
			SQLite:   &SQLiteConfig{Database: ":memory:"},
			Postgres: &PostgresConfig{Port: "5432", SSLMode: "prefer"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
