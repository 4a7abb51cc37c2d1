// Package main is the command-line entry point for company financial reports.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "report",
		Short:         "Compute storefront financial reports from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the report tool version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	version = "dev"
	flags   = &reportFlags{}
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	flags.register(rootCmd)
	rootCmd.AddCommand(versionCmd, newSummaryCmd(flags), newTrendCmd(flags), newExportCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("report failed", "error", err)
		os.Exit(1)
	}
}
