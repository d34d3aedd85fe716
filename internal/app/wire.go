//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"yt-digest/internal/api/server"
	"yt-digest/internal/api/v1/routes"
	"yt-digest/internal/api/v1/services"
	"yt-digest/internal/app/compress"
	"yt-digest/internal/app/repository"
	"yt-digest/internal/app/repository/sqlite"
	"yt-digest/internal/app/summarize"
	"yt-digest/internal/app/temporal/activities"
	"yt-digest/internal/app/textrank"
)

// InitializeApp assembles the full component graph from environment
// configuration. Optional backends (Redis, MinIO, Temporal, pgvector) degrade
// to their in-process stand-ins when unconfigured.
func InitializeApp(ctx context.Context, opts Options) (*App, error) {
	wire.Build(
		provideBaseLogger,
		provideSugaredLogger,
		provideDomainLogger,
		provideAPIKeys,
		provideEngineConfig,
		provideChatProvider,
		provideEmbeddingProvider,
		provideVectorStore,
		provideRepository,
		wire.Bind(new(repository.VideoRepository), new(*sqlite.DB)),
		wire.Bind(new(repository.ConversationRepository), new(*sqlite.DB)),
		provideSummaryCache,
		provideArchive,
		provideExtractor,
		wire.Bind(new(compress.Extractor), new(*textrank.Extractor)),
		provideCompressor,
		wire.Bind(new(summarize.Compressor), new(*compress.Compressor)),
		provideEngine,
		provideChunker,
		provideIndexer,
		provideRetriever,
		provideChatService,
		provideJobClient,
		provideJobStarter,
		provideJobTracker,
		activities.NewDigestActivities,
		services.NewPlaylistService,
		services.NewDigestService,
		services.NewIngestService,
		services.NewChatService,
		services.NewJobService,
		wire.Struct(new(routes.ServiceContainer), "*"),
		provideServerConfig,
		server.NewServer,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}

// InitializeRepository opens just the metadata database for commands that
// need no providers, like import and export.
func InitializeRepository() (*sqlite.DB, error) {
	wire.Build(provideRepository)
	return nil, nil
}
