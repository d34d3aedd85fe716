// Package app assembles the component graph behind every ytd entry point.
package app

import (
	"io"

	"go.uber.org/zap"

	"yt-digest/internal/api/server"
	"yt-digest/internal/app/archive"
	"yt-digest/internal/app/cache"
	"yt-digest/internal/app/chat"
	"yt-digest/internal/app/ingest"
	"yt-digest/internal/app/repository/sqlite"
	"yt-digest/internal/app/retrieval"
	"yt-digest/internal/app/storage/vector"
	"yt-digest/internal/app/summarize"
	"yt-digest/internal/app/temporal"
	"yt-digest/internal/app/temporal/activities"
)

// Options selects the optional behavior of the injected graph. The zero value
// builds a production graph with async digests disabled.
type Options struct {
	// Development switches on the colored dev logger and gin's debug router.
	Development bool

	// EnginePath points at an optional engine.yaml overriding the built-in
	// summarization and retrieval tunables.
	EnginePath string

	// WithJobs dials Temporal so digests can run as workflows. Commands that
	// never start jobs leave it false and skip the connection entirely.
	WithJobs bool

	// Mock substitutes the deterministic in-process chat and embedding
	// providers. No API keys are needed and no network calls are made.
	Mock bool

	// Progress, when set, receives (done, total) after every embedding batch
	// during ingestion.
	Progress func(done, total int)
}

// App holds the assembled components. HTTP serving, CLI commands and the
// Temporal worker all pull what they need from here.
type App struct {
	Logger      *zap.SugaredLogger
	Repository  *sqlite.DB
	Engine      *summarize.Engine
	Indexer     *ingest.Indexer
	Retriever   *retrieval.Retriever
	Chat        *chat.Service
	Cache       cache.SummaryCache
	Archive     archive.ArtifactStore
	VectorStore vector.Store
	Jobs        *temporal.JobClient
	Activities  *activities.DigestActivities
	Server      *server.Server
}

// Close releases every connection the graph holds. The first error wins;
// later closers still run.
func (a *App) Close() error {
	if a.Jobs != nil {
		a.Jobs.Close()
	}

	var firstErr error
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if closer, ok := a.VectorStore.(io.Closer); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.Repository != nil {
		if err := a.Repository.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return firstErr
}
