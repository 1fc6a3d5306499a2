package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ifmsabrazil/adminpanel/config"
	"github.com/ifmsabrazil/adminpanel/driver"
	"github.com/ifmsabrazil/adminpanel/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dsn, err := migrationDSN()
		if err != nil {
			return err
		}
		if err := migrations.Up(dsn); err != nil {
			return err
		}
		cmd.Println("schema is up to date")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dsn, err := migrationDSN()
		if err != nil {
			return err
		}
		if err := migrations.Down(dsn); err != nil {
			return err
		}
		cmd.Println("rolled back one migration")
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func migrationDSN() (string, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return "", err
	}
	return driver.MigrationDSN(cfg.DatabaseDSN)
}
