package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	quiet   bool
	noColor bool
	verbose bool
	Version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "dbfixture",
	Short: "Provision the test databases with a fixed schema and seed data",
	Long: `
dbfixture brings every configured test database to one known state:
all tables are dropped, the fixture schema is created, the fixture rows
are inserted and, on PostgreSQL, the id sequences are restarted past
the seeded ids.

Database Support:
- MySQL (DB_MYSQL_* variables)
- SQLite (DB_SQLITE_DATABASE)
- PostgreSQL (DB_PGSQL_* variables)

A database is left out of the run when none of its variables are set.
Running without a subcommand is the same as running "migrate".`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		if quiet {
			color.Output = io.Discard
		}
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("dbfixture version %s\n", Version)
			return nil
		}
		return runMigrate(cmd, args)
	},
}

func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dbfixture.config.{json,yaml})")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every seeded table")
	addSkipFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("dbfixture.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			color.Yellow("⚠️  Failed to read config file: %v", err)
		}
	}
}
