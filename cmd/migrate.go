package cmd

import (
	"context"
	"fmt"

	"laundry-service/internal/data/migration"

	"github.com/spf13/cobra"
)

// laundry migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "Applying schema...")
		if err := migration.Apply(context.Background(), rt.executor, rt.logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema up to date.")
		return nil
	},
}
