// Package worker hosts the digest workflow worker.
package worker

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/activity"
	sdkworker "go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	apptemporal "yt-digest/internal/app/temporal"
	"yt-digest/internal/app/temporal/activities"
	"yt-digest/internal/app/temporal/workflows"
)

// Options configures one worker process.
type Options struct {
	Config     apptemporal.Config
	Activities *activities.DigestActivities
	// HealthAddr serves /health, /live and /ready when non-empty.
	HealthAddr string
	// WorkerID labels this process in health output.
	WorkerID string
}

// Run registers the digest workflow and its activities, then blocks until
// interrupted.
func Run(opts Options) error {
	c, err := apptemporal.Dial(opts.Config)
	if err != nil {
		return err
	}
	defer c.Close()

	w := sdkworker.New(c, opts.Config.TaskQueue, sdkworker.Options{})

	w.RegisterWorkflowWithOptions(workflows.PlaylistDigestWorkflow,
		workflow.RegisterOptions{Name: workflows.PlaylistDigestWorkflowName})

	w.RegisterActivityWithOptions(opts.Activities.LoadCorpus,
		activity.RegisterOptions{Name: workflows.LoadCorpusActivity})
	w.RegisterActivityWithOptions(opts.Activities.SummarizeCorpus,
		activity.RegisterOptions{Name: workflows.SummarizeCorpusActivity})
	w.RegisterActivityWithOptions(opts.Activities.ArchiveDigest,
		activity.RegisterOptions{Name: workflows.ArchiveDigestActivity})

	if opts.HealthAddr != "" {
		status := &HealthStatus{
			WorkerID:  opts.WorkerID,
			TaskQueue: opts.Config.TaskQueue,
			Status:    "running",
			StartedAt: time.Now(),
			Temporal: ConnectionStatus{
				Connected: true,
				Endpoint:  opts.Config.HostPort,
			},
		}
		startHealthServer(opts.HealthAddr, status)
	}

	if err := w.Run(sdkworker.InterruptCh()); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}
	return nil
}
