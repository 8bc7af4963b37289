package cmd

import (
	"github.com/Rana718/dbfixture/internal/fixture"
	"github.com/Rana718/dbfixture/internal/migrator"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Reset, seed and reconcile every configured database",
	Long: `
Bring every configured database to the fixture state. For each database,
in the order MySQL, SQLite, PostgreSQL:

1. Drop every existing table
2. Create the fixture tables in dependency order
3. Insert the fixture rows
4. Restart the id sequences (PostgreSQL only)

Use --skip-<db>-migrate to leave a database untouched. The first failure
aborts the run; databases already processed keep their new state.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	registry, err := openRegistry(ctx)
	if err != nil {
		return err
	}
	defer registry.Close()

	m := migrator.New(registry, migrator.Options{
		RunID:   uuid.NewString(),
		Verbose: verbose,
	})
	return m.Run(ctx, fixture.Tables(), fixture.Plan(), skipSet(cmd.Flags()))
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
