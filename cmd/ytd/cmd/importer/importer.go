// Package importer loads transcript dump files into the local library.
package importer

import (
	"fmt"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
	"yt-digest/internal/app/source"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <playlist.json> [more.json...]",
	Short: "Import playlist transcript dumps into the local library",
	Long: `Import playlist transcript dumps into the local library

Each file holds one playlist with its videos and transcript segments, the
format produced by the transcript fetcher. Re-importing a playlist replaces
its stored video set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.InitializeRepository()
		if err != nil {
			return err
		}
		defer db.Close()

		for _, path := range args {
			playlist, err := source.LoadPlaylist(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if err := db.SavePlaylist(cmd.Context(), playlist); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			segments := 0
			for _, v := range playlist.Videos {
				segments += len(v.Transcript)
			}
			fmt.Printf("imported %s: %d videos, %d segments\n",
				playlist.ID, len(playlist.Videos), segments)
		}
		return nil
	},
}
