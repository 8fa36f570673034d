package main

import (
	"os"

	"github.com/spf13/cobra"

	"fanimal/internal/interfaces/cli/migrate"
	"fanimal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fanimal",
		Short: "Fanimal - animal shelter donation platform",
		Long:  `Fanimal is the backend for a donation platform where supporters fund animal shelters through recurring Stripe subscriptions.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
