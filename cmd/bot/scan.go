package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func runScan(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.services.Reminder.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan %s failed: %w", result.ScanID, err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}
