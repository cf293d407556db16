package main

import (
	"os"
	"path/filepath"

	"stencil/pkg/telemetry"
)

func telemetryDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".stencil", "telemetry.db")
	}
	return filepath.Join(home, ".stencil", "telemetry.db")
}

// newCollector returns nil when telemetry is disabled or the local
// database cannot be opened; runs proceed without recording.
func newCollector() *telemetry.Collector {
	cfg := telemetry.LoadTelemetryConfig()
	if !cfg.Enabled {
		return nil
	}

	dbPath := telemetryDBPath()
	os.MkdirAll(filepath.Dir(dbPath), 0755)

	collector, err := telemetry.NewCollector(dbPath, cfg)
	if err != nil {
		return nil
	}
	return collector
}
