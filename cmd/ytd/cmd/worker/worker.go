// Package worker runs the Temporal digest worker.
package worker

import (
	"os"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
	"yt-digest/internal/app/temporal"
	"yt-digest/internal/app/temporal/worker"
)

var healthAddr string

func init() {
	Cmd.Flags().StringVar(&healthAddr, "health-addr", ":8090", "address for /health, /live and /ready; empty disables")
}

// Cmd represents the worker command
var Cmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the digest workflow worker",
	Long: `Run the digest workflow worker

The worker polls the task queue and executes digest workflows started by
'summarize --async' or the API's async endpoint: load the stored corpus,
summarize it, archive the result. TEMPORAL_HOST, TEMPORAL_NAMESPACE and
TASK_QUEUE configure the connection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root().PersistentFlags()
		development, _ := root.GetBool("verbose")
		mock, _ := root.GetBool("mock")
		enginePath, _ := root.GetString("engine-config")

		a, err := app.InitializeApp(cmd.Context(), app.Options{
			Development: development,
			EnginePath:  enginePath,
			Mock:        mock,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		hostname, _ := os.Hostname()
		return worker.Run(worker.Options{
			Config:     temporal.ConfigFromEnv(),
			Activities: a.Activities,
			HealthAddr: healthAddr,
			WorkerID:   hostname,
		})
	},
}
