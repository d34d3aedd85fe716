// Package workflows defines the durable digest workflow.
package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"yt-digest/internal/app/model"
)

// PlaylistDigestWorkflowName is the registration name clients start by.
const PlaylistDigestWorkflowName = "PlaylistDigestWorkflow"

// Activity names executed by the digest workflow.
const (
	LoadCorpusActivity      = "LoadCorpus"
	SummarizeCorpusActivity = "SummarizeCorpus"
	ArchiveDigestActivity   = "ArchiveDigest"
)

// DigestJobRequest asks for one playlist to be summarized.
type DigestJobRequest struct {
	PlaylistID string `json:"playlist_id"`
	// SkipArchive disables the object-storage step, for deployments
	// without a bucket.
	SkipArchive bool `json:"skip_archive,omitempty"`
}

// DigestJobResult is the workflow's final state.
type DigestJobResult struct {
	PlaylistID     string        `json:"playlist_id"`
	Digest         model.Digest  `json:"digest"`
	ArchiveKey     string        `json:"archive_key,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	Error          string        `json:"error,omitempty"`
}

// PlaylistDigestWorkflow loads the stored corpus, summarizes it, and archives
// the digest. Transient provider failures are retried per activity.
func PlaylistDigestWorkflow(ctx workflow.Context, req DigestJobRequest) (DigestJobResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting playlist digest workflow", "playlistId", req.PlaylistID)

	startTime := workflow.Now(ctx)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    100 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var playlist model.Playlist
	if err := workflow.ExecuteActivity(ctx, LoadCorpusActivity, req.PlaylistID).Get(ctx, &playlist); err != nil {
		logger.Error("Failed to load corpus", "error", err)
		return DigestJobResult{
			PlaylistID: req.PlaylistID,
			Error:      fmt.Sprintf("failed to load corpus: %v", err),
		}, err
	}

	var digest model.Digest
	if err := workflow.ExecuteActivity(ctx, SummarizeCorpusActivity, playlist).Get(ctx, &digest); err != nil {
		logger.Error("Failed to summarize corpus", "error", err)
		return DigestJobResult{
			PlaylistID: req.PlaylistID,
			Error:      fmt.Sprintf("failed to summarize: %v", err),
		}, err
	}

	result := DigestJobResult{
		PlaylistID: req.PlaylistID,
		Digest:     digest,
	}

	if !req.SkipArchive {
		// Archiving is best effort: the digest is already persisted by the
		// summarize activity, so a missing bucket must not fail the job.
		var archiveKey string
		if err := workflow.ExecuteActivity(ctx, ArchiveDigestActivity, digest).Get(ctx, &archiveKey); err != nil {
			logger.Warn("Failed to archive digest", "error", err)
		} else {
			result.ArchiveKey = archiveKey
		}
	}

	result.ProcessingTime = workflow.Now(ctx).Sub(startTime)

	logger.Info("Playlist digest workflow completed",
		"playlistId", req.PlaylistID,
		"strategy", digest.Strategy,
		"duration", result.ProcessingTime)

	return result, nil
}
