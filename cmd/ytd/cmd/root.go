package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"yt-digest/cmd/ytd/cmd/ask"
	"yt-digest/cmd/ytd/cmd/export"
	"yt-digest/cmd/ytd/cmd/importer"
	"yt-digest/cmd/ytd/cmd/ingest"
	"yt-digest/cmd/ytd/cmd/serve"
	"yt-digest/cmd/ytd/cmd/summarize"
	"yt-digest/cmd/ytd/cmd/version"
	"yt-digest/cmd/ytd/cmd/worker"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytd",
	Short: "Summarize and question video playlist transcripts",
	Long: `ytd turns exported playlist transcripts into digests and a queryable index.

- Import transcript dumps into the local library
- Summarize a playlist with the strategy matching its size
- Index transcripts for retrieval and ask questions grounded in them
- Serve the same operations over HTTP`,
	SilenceUsage: true,
}

// Execute runs the CLI. Interrupts cancel the command context so in-flight
// provider calls stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(importer.Cmd)
	rootCmd.AddCommand(summarize.Cmd)
	rootCmd.AddCommand(ingest.Cmd)
	rootCmd.AddCommand(ask.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(worker.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolP("verbose", "V", false, "verbose, colored development logging")
	rootCmd.PersistentFlags().Bool("mock", false, "use deterministic offline providers (no API keys needed)")
	rootCmd.PersistentFlags().String("engine-config", "", "path to an engine.yaml overriding the built-in tunables")
}
