package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clockin-bot",
		Short: "Chat bot that records clock-ins and reminds people when they can leave",
		Long: `clockin-bot records clock-in and leave events sent from chat and posts a
reminder shortly before each person's earliest clock-out time.

Running without a subcommand is the same as "serve".`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server and the reminder scanner",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "scan",
			Short: "Run one reminder scan now and print the result",
			RunE:  runScan,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE:  runMigrate,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
