package telemetry

import "time"

// Event is one recorded generator invocation.
type Event struct {
	ID          string
	Timestamp   time.Time
	Command     string
	Template    string
	ProjectHash string
	Duration    time.Duration
	Success     bool
	ErrorType   string
}

// Stats summarizes recorded events over a time window.
type Stats struct {
	TotalRuns       int            `json:"total_runs"`
	SuccessRate     float64        `json:"success_rate"`
	AvgRunDuration  time.Duration  `json:"avg_run_duration"`
	ProjectsCreated int            `json:"projects_created"`
	TopTemplates    []TemplateStat `json:"top_templates"`
	CommonErrors    []ErrorStat    `json:"common_errors"`
}

type TemplateStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ErrorStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
