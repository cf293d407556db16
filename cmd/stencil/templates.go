package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"stencil/pkg/config"
	"stencil/pkg/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long: `List all available boilerplate templates.

Examples:
  stencil templates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig("")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		engine := template.NewFileSystemEngine(cfg.TemplatesDir)
		templates := engine.ListTemplates()

		fmt.Println("📦 Available Templates:")
		fmt.Println("────────────────────────────────────────────────")
		for _, t := range templates {
			fmt.Printf("  %-20s %s\n", t.Name, t.Description)
			if len(t.Files) > 0 {
				fmt.Printf("    Files: %s\n", strings.Join(t.Files, ", "))
			}
		}
		fmt.Println("────────────────────────────────────────────────")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
