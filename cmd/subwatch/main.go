package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/subwatch-inc/subwatch/internal/interfaces/cli/migrate"
	"github.com/subwatch-inc/subwatch/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subwatch",
		Short: "Subwatch - subscription tracking backend",
		Long:  `Subwatch tracks recurring subscriptions, surfaces upcoming renewals, and schedules renewal reminder workflows.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
