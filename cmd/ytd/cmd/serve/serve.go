// Package serve runs the HTTP API.
package serve

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
)

var withJobs bool

func init() {
	Cmd.Flags().BoolVar(&withJobs, "jobs", false, "connect to Temporal so ?async=true summarize requests run as workflows")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the playlist, digest, ingest and chat API over HTTP",
	Long: `Serve the playlist, digest, ingest and chat API over HTTP

The server exposes the same operations as the CLI under /api/v1, plus
/health, /metrics and /swagger. HOST and PORT come from the environment;
without --jobs the async digest endpoints answer 503.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root().PersistentFlags()
		development, _ := root.GetBool("verbose")
		mock, _ := root.GetBool("mock")
		enginePath, _ := root.GetString("engine-config")

		a, err := app.InitializeApp(cmd.Context(), app.Options{
			Development: development,
			EnginePath:  enginePath,
			WithJobs:    withJobs,
			Mock:        mock,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		errCh := a.Server.Start()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	},
}
