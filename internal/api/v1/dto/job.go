package dto

import "time"

// JobSubmittedResponse acknowledges an async digest submission.
type JobSubmittedResponse struct {
	JobID      string `json:"job_id"`
	PlaylistID string `json:"playlist_id"`
	Status     string `json:"status"`
}

// JobStatusResponse reports the state of a digest workflow.
type JobStatusResponse struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at,omitempty"`
}
