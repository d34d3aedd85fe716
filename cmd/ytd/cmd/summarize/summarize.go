// Package summarize generates playlist digests from the command line.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/temporal/workflows"
	"yt-digest/internal/app/utils"
)

var (
	playlistID string
	force      bool
	async      bool
	wait       time.Duration
	outputPath string
)

func init() {
	Cmd.Flags().StringVarP(&playlistID, "playlist", "p", "", "playlist id to summarize")
	Cmd.Flags().BoolVar(&force, "force", false, "recompute even when a cached digest matches the corpus")
	Cmd.Flags().BoolVar(&async, "async", false, "run as a Temporal workflow instead of in-process")
	Cmd.Flags().DurationVar(&wait, "wait", 0, "with --async, block up to this long for the workflow result")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the digest markdown to a file instead of stdout")

	Cmd.MarkFlagRequired("playlist")
}

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Generate a digest for an imported playlist",
	Long: `Generate a digest for an imported playlist

The strategy is picked from corpus size: one video summarizes directly,
a corpus that fits the context window summarizes in one call, and anything
larger goes through map-reduce. Oversized corpora are compressed extractively
first. A digest whose corpus has not changed is served from cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root().PersistentFlags()
		development, _ := root.GetBool("verbose")
		mock, _ := root.GetBool("mock")
		enginePath, _ := root.GetString("engine-config")

		a, err := app.InitializeApp(cmd.Context(), app.Options{
			Development: development,
			EnginePath:  enginePath,
			WithJobs:    async,
			Mock:        mock,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		if async {
			return runAsync(cmd.Context(), a)
		}
		return runSync(cmd.Context(), a)
	},
}

func runSync(ctx context.Context, a *app.App) error {
	playlist, err := a.Repository.GetPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	fingerprint := utils.CorpusFingerprint(playlist)
	if !force {
		if cached, err := a.Cache.Get(ctx, playlistID, fingerprint); err == nil {
			fmt.Fprintf(os.Stderr, "serving cached digest from %s\n",
				cached.CreatedAt.Format(time.RFC3339))
			return emit(cached)
		}
	}

	digest, err := a.Engine.SummarizePlaylist(ctx, playlist)
	if err != nil {
		return err
	}
	if err := a.Repository.SaveDigest(ctx, digest); err != nil {
		return err
	}
	if err := a.Cache.Put(ctx, fingerprint, digest); err != nil {
		a.Logger.Warnw("Digest not cached", "playlist_id", playlistID, "error", err)
	}
	if key, err := a.Archive.SaveDigest(ctx, digest); err != nil {
		a.Logger.Warnw("Digest not archived", "playlist_id", playlistID, "error", err)
	} else if key != "" {
		fmt.Fprintf(os.Stderr, "archived as %s\n", key)
	}

	return emit(digest)
}

func runAsync(ctx context.Context, a *app.App) error {
	workflowID, err := a.Jobs.StartPlaylistDigest(ctx, workflows.DigestJobRequest{
		PlaylistID: playlistID,
	})
	if err != nil {
		return err
	}
	fmt.Printf("digest workflow started: %s\n", workflowID)

	if wait <= 0 {
		fmt.Printf("poll it with: ytd summarize --playlist %s --async --wait 10m\n", playlistID)
		return nil
	}

	result, err := a.Jobs.WaitForDigest(ctx, workflowID, wait, func(status string) {
		fmt.Fprintf(os.Stderr, "workflow %s: %s\n", workflowID, status)
	})
	if err != nil {
		return err
	}
	if result.Error != "" {
		return errors.New(result.Error)
	}
	return emit(result.Digest)
}

func emit(digest model.Digest) error {
	fmt.Fprintf(os.Stderr, "strategy=%s videos=%d chars=%d llm_calls=%d compressed=%t elapsed=%.1fs\n",
		digest.Strategy, digest.VideoCount, digest.TotalChars,
		digest.LLMCalls, digest.Compressed, digest.Elapsed)

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(digest.Summary), 0o644); err != nil {
			return apperrors.Wrap(err, "write digest file")
		}
		fmt.Printf("digest written to %s\n", outputPath)
		return nil
	}
	fmt.Println(digest.Summary)
	return nil
}
