package temporal

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"

	"yt-digest/internal/app/temporal/workflows"
)

// JobStatus describes a digest workflow in flight or finished.
type JobStatus struct {
	WorkflowID string    `json:"workflow_id"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
}

// JobClient starts and tracks digest workflows.
type JobClient struct {
	temporalClient client.Client
	taskQueue      string
}

// NewJobClient dials Temporal and wraps the connection for digest jobs.
func NewJobClient(cfg Config) (*JobClient, error) {
	c, err := Dial(cfg)
	if err != nil {
		return nil, err
	}
	taskQueue := cfg.TaskQueue
	if taskQueue == "" {
		taskQueue = DefaultTaskQueue
	}
	return &JobClient{temporalClient: c, taskQueue: taskQueue}, nil
}

// StartPlaylistDigest launches the digest workflow and returns its workflow
// id for status polling.
func (c *JobClient) StartPlaylistDigest(ctx context.Context, req workflows.DigestJobRequest) (string, error) {
	workflowID := fmt.Sprintf("digest-%s-%d", req.PlaylistID, time.Now().Unix())

	run, err := c.temporalClient.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: c.taskQueue,
	}, workflows.PlaylistDigestWorkflowName, req)
	if err != nil {
		return "", fmt.Errorf("failed to start workflow: %w", err)
	}

	return run.GetID(), nil
}

// GetJobStatus reports the execution state of a digest workflow.
func (c *JobClient) GetJobStatus(ctx context.Context, workflowID string) (JobStatus, error) {
	resp, err := c.temporalClient.DescribeWorkflowExecution(ctx, workflowID, "")
	if err != nil {
		return JobStatus{}, fmt.Errorf("failed to describe workflow: %w", err)
	}

	info := resp.GetWorkflowExecutionInfo()
	status := JobStatus{
		WorkflowID: workflowID,
		Status:     info.GetStatus().String(),
	}
	if startTime := info.GetStartTime(); startTime != nil {
		status.StartedAt = startTime.AsTime()
	}
	return status, nil
}

// GetJobResult blocks until the workflow finishes and returns its result.
func (c *JobClient) GetJobResult(ctx context.Context, workflowID string) (workflows.DigestJobResult, error) {
	run := c.temporalClient.GetWorkflow(ctx, workflowID, "")

	var result workflows.DigestJobResult
	if err := run.Get(ctx, &result); err != nil {
		return workflows.DigestJobResult{}, err
	}
	return result, nil
}

// WaitForDigest polls until the workflow completes, invoking progressFunc on
// every status change. It gives up after timeout.
func (c *JobClient) WaitForDigest(ctx context.Context, workflowID string, timeout time.Duration, progressFunc func(status string)) (workflows.DigestJobResult, error) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	deadline := time.After(timeout)
	lastStatus := ""

	for {
		select {
		case <-ticker.C:
			status, err := c.GetJobStatus(ctx, workflowID)
			if err != nil {
				return workflows.DigestJobResult{}, fmt.Errorf("failed to get job status: %w", err)
			}

			if progressFunc != nil && status.Status != lastStatus {
				progressFunc(status.Status)
				lastStatus = status.Status
			}

			switch status.Status {
			case "Completed":
				return c.GetJobResult(ctx, workflowID)
			case "Failed", "Terminated", "TimedOut", "Canceled":
				result, _ := c.GetJobResult(ctx, workflowID)
				return result, fmt.Errorf("digest job %s: %s", workflowID, status.Status)
			}

		case <-deadline:
			return workflows.DigestJobResult{}, fmt.Errorf("timeout waiting for digest job %s", workflowID)

		case <-ctx.Done():
			return workflows.DigestJobResult{}, ctx.Err()
		}
	}
}

// Close releases the Temporal connection.
func (c *JobClient) Close() {
	c.temporalClient.Close()
}
