package main

import (
	"fmt"
	"os"

	"yt-digest/cmd/ytd/cmd"
	"yt-digest/internal/config"
)

// @title yt-digest API
// @version 1.0
// @description Adaptive summarization and grounded Q&A over video playlist transcripts.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Keys themselves are validated lazily by the commands that need them,
	// so a missing .env only warns here.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cmd.Execute()
}
