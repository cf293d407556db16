package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"stencil/pkg/telemetry"
)

var telemetryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable telemetry collection",
	Run: func(cmd *cobra.Command, args []string) {
		config := telemetry.LoadTelemetryConfig()
		config.Enabled = true
		telemetry.SaveTelemetryConfig(config)
		fmt.Println("✅ Telemetry enabled")
		fmt.Println("Data is stored locally in ~/.stencil/telemetry.db")
		fmt.Println("You can disable collection anytime with 'stencil telemetry disable'")
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryEnableCmd)
}
