package main

import (
	"os"

	"github.com/spf13/cobra"

	"kostera/internal/interfaces/cli/migrate"
	"kostera/internal/interfaces/cli/seed"
	"kostera/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kostera",
		Short: "Kostera - multi-tenant kost management",
		Long:  `Kostera is a multi-tenant boarding house management backend with plan-based subscription enforcement.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
