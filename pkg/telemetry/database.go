package telemetry

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// TelemetryDB handles database operations
type TelemetryDB struct {
	db *sql.DB
}

// NewTelemetryDB creates/opens telemetry database
func NewTelemetryDB(path string) (*TelemetryDB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	tdb := &TelemetryDB{db: db}
	if err := tdb.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return tdb, nil
}

func (t *TelemetryDB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		command TEXT NOT NULL,
		template TEXT,
		project_hash TEXT,
		duration_ms INTEGER,
		success BOOLEAN,
		error_type TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_events_time ON events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_events_command ON events(command);
	CREATE INDEX IF NOT EXISTS idx_events_template ON events(template);
	`

	_, err := t.db.Exec(schema)
	return err
}

// SaveEvent saves a telemetry event
func (t *TelemetryDB) SaveEvent(e Event) error {
	query := `
	INSERT OR REPLACE INTO events (
		id, timestamp, command, template, project_hash,
		duration_ms, success, error_type
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := t.db.Exec(query,
		e.ID, e.Timestamp, e.Command, e.Template, e.ProjectHash,
		int64(e.Duration.Milliseconds()), e.Success, e.ErrorType,
	)
	return err
}

// GetStats summarizes events recorded within the last `days` days.
func (t *TelemetryDB) GetStats(days int) (Stats, error) {
	since := time.Now().AddDate(0, 0, -days)

	stats := Stats{}

	totalRuns := 0
	err := t.db.QueryRow(`
		SELECT COUNT(*) FROM events WHERE timestamp >= ?
	`, since).Scan(&totalRuns)
	if err != nil {
		return stats, err
	}
	stats.TotalRuns = totalRuns

	successfulRuns := 0
	err = t.db.QueryRow(`
		SELECT COUNT(*) FROM events WHERE success = 1 AND timestamp >= ?
	`, since).Scan(&successfulRuns)
	if err != nil {
		return stats, err
	}
	if totalRuns > 0 {
		stats.SuccessRate = float64(successfulRuns) / float64(totalRuns)
	}

	var avgDuration sql.NullFloat64
	err = t.db.QueryRow(`
		SELECT AVG(duration_ms) FROM events WHERE timestamp >= ?
	`, since).Scan(&avgDuration)
	if err != nil {
		return stats, err
	}
	if avgDuration.Valid {
		stats.AvgRunDuration = time.Duration(avgDuration.Float64) * time.Millisecond
	}

	err = t.db.QueryRow(`
		SELECT COUNT(*) FROM events WHERE command = 'create' AND success = 1 AND timestamp >= ?
	`, since).Scan(&stats.ProjectsCreated)
	if err != nil {
		return stats, err
	}

	stats.TopTemplates, err = t.getTopTemplates(since)
	if err != nil {
		return stats, err
	}

	stats.CommonErrors, err = t.getCommonErrors(since)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

func (t *TelemetryDB) getTopTemplates(since time.Time) ([]TemplateStat, error) {
	rows, err := t.db.Query(`
		SELECT template, COUNT(*) as cnt FROM events
		WHERE template != '' AND timestamp >= ?
		GROUP BY template ORDER BY cnt DESC LIMIT 5
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []TemplateStat
	for rows.Next() {
		var s TemplateStat
		if err := rows.Scan(&s.Name, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (t *TelemetryDB) getCommonErrors(since time.Time) ([]ErrorStat, error) {
	rows, err := t.db.Query(`
		SELECT error_type, COUNT(*) as cnt FROM events
		WHERE error_type != '' AND timestamp >= ?
		GROUP BY error_type ORDER BY cnt DESC LIMIT 5
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []ErrorStat
	for rows.Next() {
		var s ErrorStat
		if err := rows.Scan(&s.Type, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Purge deletes events older than retentionDays.
func (t *TelemetryDB) Purge(retentionDays int) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	_, err := t.db.Exec(`DELETE FROM events WHERE timestamp < ?`, cutoff)
	return err
}

func (t *TelemetryDB) Close() error {
	return t.db.Close()
}
