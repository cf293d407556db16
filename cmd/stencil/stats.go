package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"stencil/pkg/telemetry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	Example: `  stencil stats           # Last 7 days
  stencil stats --days 30  # Last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		db, err := telemetry.NewTelemetryDB(telemetryDBPath())
		if err != nil {
			return fmt.Errorf("failed to open telemetry database: %w", err)
		}
		defer db.Close()

		stats, err := db.GetStats(days)
		if err != nil {
			return fmt.Errorf("failed to query stats: %w", err)
		}

		fmt.Printf("📈 Usage Statistics (Last %d Days)\n", days)
		fmt.Println("================================")
		fmt.Printf("Runs: %d\n", stats.TotalRuns)
		fmt.Printf("Success rate: %.1f%%\n", stats.SuccessRate*100)
		fmt.Printf("Avg run time: %v\n", stats.AvgRunDuration)
		fmt.Printf("Projects created: %d\n", stats.ProjectsCreated)

		if len(stats.TopTemplates) > 0 {
			fmt.Println("\nTop Templates:")
			for _, t := range stats.TopTemplates {
				fmt.Printf("  %s: %d\n", t.Name, t.Count)
			}
		}

		if len(stats.CommonErrors) > 0 {
			fmt.Println("\nCommon Errors:")
			for _, e := range stats.CommonErrors {
				fmt.Printf("  %s: %d occurrences\n", e.Type, e.Count)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 7, "Number of days to include")
	rootCmd.AddCommand(statsCmd)
}
