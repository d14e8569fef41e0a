package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loomd",
		Short: "Server-driven UI reconciliation for Go",
		Long: `Loomd hosts Loom applications: component trees that live on the
server and are reconciled against an in-memory host tree. Clients connect
over WebSocket, receive the initial render, and from then on get minimal
mutation streams as the tree changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loomd %s (%s)\n", version, commit)
		},
	}
}
