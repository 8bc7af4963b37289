package cmd

import (
	"os"

	"github.com/Rana718/dbfixture/internal/migrator"
	"github.com/Rana718/dbfixture/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Drop every table in the configured databases",
	Long: `
Drop every table in each configured database without recreating the
fixture. The same skip flags as migrate apply.

Use --force to skip the confirmation prompt.

⚠️  WARNING: This permanently deletes all data in the selected databases!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		input := &utils.InputUtils{In: os.Stdin, Out: os.Stdout}
		if !input.AskConfirmation("⚠️  Drop every table in the configured databases?", wipeForce) {
			color.Yellow("Wipe cancelled")
			return nil
		}

		registry, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer registry.Close()

		m := migrator.New(registry, migrator.Options{Verbose: verbose})
		return m.Wipe(ctx, skipSet(cmd.Flags()))
	},
}

func init() {
	rootCmd.AddCommand(wipeCmd)

	wipeCmd.Flags().BoolVarP(&wipeForce, "force", "f", false, "Skip the confirmation prompt")
}
