// Package ingest indexes playlist transcripts for retrieval.
package ingest

import (
	"fmt"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
	"yt-digest/internal/app/progress"
)

var (
	playlistID   string
	showProgress bool
	drop         bool
)

func init() {
	Cmd.Flags().StringVarP(&playlistID, "playlist", "p", "", "playlist id to index")
	Cmd.Flags().BoolVar(&showProgress, "progress", false, "force progress bars even when stderr is not a terminal")
	Cmd.Flags().BoolVar(&drop, "drop", false, "remove the playlist's index instead of building it")

	Cmd.MarkFlagRequired("playlist")
}

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Chunk, embed and index a playlist's transcripts",
	Long: `Chunk, embed and index a playlist's transcripts

Transcripts are split into overlapping chunks, embedded in batches and
upserted into the vector store under the playlist's namespace. Videos without
transcripts are skipped and failing batches are recorded without aborting the
run. Re-ingesting is an upsert, not a duplicate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root().PersistentFlags()
		development, _ := root.GetBool("verbose")
		mock, _ := root.GetBool("mock")
		enginePath, _ := root.GetString("engine-config")

		bars := progress.NewManager(progress.Config{
			Enabled: progress.ShouldShowProgress(showProgress),
		})
		defer bars.Shutdown()

		a, err := app.InitializeApp(cmd.Context(), app.Options{
			Development: development,
			EnginePath:  enginePath,
			Mock:        mock,
			Progress:    bars.BatchCallback("embedding chunks"),
		})
		if err != nil {
			return err
		}
		defer a.Close()

		if drop {
			if err := a.Indexer.DeletePlaylist(cmd.Context(), playlistID); err != nil {
				return err
			}
			fmt.Printf("index dropped for %s\n", playlistID)
			return nil
		}

		playlist, err := a.Repository.GetPlaylist(cmd.Context(), playlistID)
		if err != nil {
			return err
		}

		report, err := a.Indexer.IngestPlaylist(cmd.Context(), playlist)
		bars.Wait()
		if err != nil {
			return err
		}

		fmt.Printf("indexed %d/%d chunks for %s (videos skipped: %d)\n",
			report.ChunksIndexed, report.ChunksTotal, playlistID, report.VideosSkipped)
		for _, e := range report.Errors {
			fmt.Printf("  batch error: %s\n", e)
		}
		return nil
	},
}
