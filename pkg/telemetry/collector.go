package telemetry

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Collector records generator runs in the local database.
type Collector struct {
	db     *TelemetryDB
	config TelemetryConfig
}

// NewCollector creates a collector
func NewCollector(dbPath string, config TelemetryConfig) (*Collector, error) {
	db, err := NewTelemetryDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry database: %w", err)
	}

	if config.RetentionDays <= 0 {
		config.RetentionDays = 30
	}

	return &Collector{
		db:     db,
		config: config,
	}, nil
}

// RecordRun records one generator invocation. A disabled collector is a
// no-op.
func (c *Collector) RecordRun(command, projectName, template string, duration time.Duration, runErr error) error {
	if !c.config.Enabled {
		return nil
	}

	event := Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		Command:   command,
		Template:  template,
		Duration:  duration,
		Success:   runErr == nil,
	}

	if runErr != nil {
		event.ErrorType = classifyError(runErr)
	}

	if c.config.Anonymize {
		event.ProjectHash = hashName(projectName)
	} else {
		event.ProjectHash = projectName
	}

	return c.db.SaveEvent(event)
}

func (c *Collector) Close() error {
	if c.config.Enabled {
		c.db.Purge(c.config.RetentionDays)
	}
	return c.db.Close()
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func hashName(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:8])
}

func classifyError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "permission"):
		return "permission"
	case strings.Contains(msg, "no such file"), strings.Contains(msg, "not found"):
		return "not_found"
	case strings.Contains(msg, "manifest"):
		return "manifest"
	case strings.Contains(msg, "template"):
		return "template"
	default:
		return "other"
	}
}
