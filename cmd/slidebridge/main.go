package main

import (
	"os"

	"github.com/spf13/cobra"

	"slidebridge/internal/interfaces/cli/migrate"
	"slidebridge/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slidebridge",
		Short: "Slidebridge - Slide alert to ConnectWise ticket bridge",
		Long:  `Slidebridge ingests Slide backup alerts, maps Slide clients to ConnectWise companies, and files and reconciles service tickets.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
