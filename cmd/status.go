package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Rana718/dbfixture/internal/fixture"
	"github.com/Rana718/dbfixture/internal/migrator"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	statusOutput string
	statusCheck  bool
)

var errDiverged = errors.New("databases differ from the fixture")

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare the configured databases with the fixture",
	Long: `Show, for every configured database:
- The row count of each fixture table next to the expected count
- The next value of each id sequence (PostgreSQL only)
- Tables that exist but are not part of the fixture

Nothing is changed. Use --check to exit non-zero when a database differs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		registry, err := openRegistry(ctx)
		if err != nil {
			return err
		}
		defer registry.Close()

		m := migrator.New(registry, migrator.Options{})
		statuses, err := m.Status(ctx, fixture.Tables(), fixture.Plan(), skipSet(cmd.Flags()))
		if err != nil {
			return err
		}

		switch statusOutput {
		case "yaml":
			if err := writeStatusYAML(os.Stdout, statuses); err != nil {
				return err
			}
		case "table":
			// Printed even with --quiet, which only silences progress output.
			writeStatusTable(colorable.NewColorableStdout(), statuses)
		default:
			return fmt.Errorf("unsupported output format: %s", statusOutput)
		}

		if statusCheck {
			for _, status := range statuses {
				if status.Diverged() {
					return errDiverged
				}
			}
		}
		return nil
	},
}

func writeStatusYAML(w io.Writer, statuses []migrator.DialectStatus) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(statuses); err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return enc.Close()
}

func writeStatusTable(w io.Writer, statuses []migrator.DialectStatus) {
	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	for _, status := range statuses {
		marker := "✅"
		if status.Diverged() {
			marker = "❌"
		}
		bold.Fprintf(w, "%s %s\n", marker, status.Dialect)

		for _, table := range status.Tables {
			rows := fmt.Sprint(table.Rows)
			if table.Rows == migrator.Missing {
				rows = "missing"
			}
			c := ok
			if table.Rows != table.Expected {
				c = bad
			}
			c.Fprintf(w, "  %-40s %8s / %d\n", table.Name, rows, table.Expected)
		}

		for _, seq := range status.Sequences {
			c := ok
			if seq.Next != seq.Expected {
				c = bad
			}
			c.Fprintf(w, "  %-40s next %d / %d\n", seq.Name, seq.Next, seq.Expected)
		}

		for _, name := range status.Extra {
			bad.Fprintf(w, "  %-40s not in fixture\n", name)
		}
		fmt.Fprintln(w)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "table", "Output format: table or yaml")
	statusCmd.Flags().BoolVar(&statusCheck, "check", false, "Exit non-zero when a database differs from the fixture")
}
