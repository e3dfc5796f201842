package commands

import (
	"github.com/spf13/cobra"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/printer"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbc := config.LoadDatabaseConfig()
		db, err := database.Open(dbc.User, dbc.Pass, dbc.Host, dbc.Port, dbc.Name)
		if err != nil {
			return printer.Error("Database unreachable", err.Error())
		}
		defer db.Close()

		applied, err := database.Migrate(cmd.Context(), db)
		for _, m := range applied {
			printer.Success("applied %s", m)
		}
		if err != nil {
			return printer.Error("Migration failed", err.Error())
		}
		if len(applied) == 0 {
			printer.Info("schema is up to date")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
