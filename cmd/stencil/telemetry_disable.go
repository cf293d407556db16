package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"stencil/pkg/telemetry"
)

var telemetryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable telemetry collection",
	Run: func(cmd *cobra.Command, args []string) {
		config := telemetry.LoadTelemetryConfig()
		config.Enabled = false
		telemetry.SaveTelemetryConfig(config)
		fmt.Println("✅ Telemetry disabled")
		fmt.Println("Previously collected data remains in ~/.stencil/telemetry.db")
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryDisableCmd)
}
