package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"stencil/internal/scaffold"
	"stencil/pkg/config"
	"stencil/pkg/prompt"
	"stencil/pkg/run"
	"stencil/pkg/template"
)

var rootCmd = &cobra.Command{
	Use:   "stencil <project-name>",
	Short: "Stencil project generator",
	Long:  `Generates a ready-to-run web-backend project from a bundled boilerplate.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefaultConfig(); err != nil {
			fmt.Printf("⚠️  Warning: failed to seed config: %v\n", err)
		}

		cfg, err := config.LoadConfig("")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		engine := template.NewFileSystemEngine(cfg.TemplatesDir)

		var asker prompt.Asker = prompt.NewStdioAsker()
		if assumeYes {
			asker = prompt.DefaultAsker{}
		}

		runner := run.NewExecRunner()

		collector := newCollector()
		if collector != nil {
			defer collector.Close()
		}

		mgr := scaffold.NewManagerWithCollector(engine, asker, runner, cfg, collector)
		return mgr.Create(args[0], scaffold.Options{
			Template:    templateName,
			SkipInstall: skipInstall,
		})
	},
}

var (
	templateName string
	skipInstall  bool
	assumeYes    bool
)

func main() {
	rootCmd.Flags().StringVarP(&templateName, "template", "t", "", "Template to use (default from config)")
	rootCmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip the dependency install step")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Accept every prompt default")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
