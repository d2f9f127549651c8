package main

import (
	"os"

	"github.com/spf13/cobra"

	"hostelhub/internal/interfaces/cli/migrate"
	"hostelhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hostelhub",
		Short: "HostelHub - hostel management backend",
		Long:  `HostelHub is a hostel management backend with room booking, payments, and resident lifecycle tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
