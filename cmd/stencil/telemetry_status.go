package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"stencil/pkg/telemetry"
)

var telemetryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show telemetry status",
	Run: func(cmd *cobra.Command, args []string) {
		config := telemetry.LoadTelemetryConfig()

		state := "disabled"
		if config.Enabled {
			state = "enabled"
		}

		fmt.Printf("Telemetry: %s\n", state)
		fmt.Printf("Anonymize: %v\n", config.Anonymize)
		fmt.Printf("Retention: %d days\n", config.RetentionDays)
		fmt.Printf("Database:  %s\n", telemetryDBPath())
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryStatusCmd)
}
