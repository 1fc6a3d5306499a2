package cmd

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	envFile string
)

var rootCmd = &cobra.Command{
	Use:           "adminpanel",
	Short:         "Administration backend for assemblies and registrations",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	rootCmd.Version = v
}
