// Package export writes a playlist and its digest to an xlsx workbook.
package export

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/export"
	"yt-digest/internal/app/model"
)

var (
	playlistID     string
	outputFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&playlistID, "playlist", "p", "", "playlist id to export")
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "destination .xlsx path")

	Cmd.MarkFlagRequired("playlist")
	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a playlist's transcripts and latest digest to Excel",
	Long: `Export a playlist's transcripts and latest digest to Excel

One sheet lists the videos with transcript statistics, another carries the
most recent digest. A playlist that has never been summarized exports with an
empty digest sheet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.InitializeRepository()
		if err != nil {
			return err
		}
		defer db.Close()

		playlist, err := db.GetPlaylist(cmd.Context(), playlistID)
		if err != nil {
			return err
		}

		digest, err := db.LatestDigest(cmd.Context(), playlistID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNoDigest) {
				return err
			}
			fmt.Println("no digest yet, exporting transcripts only")
			digest = model.Digest{PlaylistID: playlistID}
		}

		if err := export.ToExcel(playlist, digest, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
