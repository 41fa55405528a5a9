package models

type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusPaused    JobStatus = "paused"
)

// Job is the shape of a transfer-tracking record. Nothing creates or stores
// jobs yet: job listing is always empty and lookups never resolve.
type Job struct {
	ID          string    `json:"id"`
	Operation   string    `json:"operation"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Status      JobStatus `json:"status"`
	Progress    float32   `json:"progress"`
	Speed       string    `json:"speed"`
	ETA         *string   `json:"eta,omitempty"`
	Started     string    `json:"started"`
	Finished    *string   `json:"finished,omitempty"`
}
