package services

import (
	"context"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/api/v1/dto"
)

// JobServiceImpl implements JobService
type JobServiceImpl struct {
	tracker JobTracker
}

// NewJobService creates a new job service. tracker may be nil when temporal
// is not configured.
func NewJobService(tracker JobTracker) JobService {
	return &JobServiceImpl{tracker: tracker}
}

// Status reports the execution state of a digest workflow.
func (s *JobServiceImpl) Status(ctx context.Context, jobID string) (*dto.JobStatusResponse, error) {
	if s.tracker == nil {
		return nil, errors.NewServiceUnavailableError("Async digests are not enabled on this server")
	}

	status, err := s.tracker.GetJobStatus(ctx, jobID)
	if err != nil {
		return nil, errors.NewNotFoundError("Job")
	}

	return &dto.JobStatusResponse{
		JobID:     status.WorkflowID,
		Status:    status.Status,
		StartedAt: status.StartedAt,
	}, nil
}
