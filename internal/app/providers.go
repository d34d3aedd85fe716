package app

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"yt-digest/internal/api/server"
	"yt-digest/internal/api/v1/services"
	"yt-digest/internal/app/archive"
	"yt-digest/internal/app/cache"
	"yt-digest/internal/app/chat"
	"yt-digest/internal/app/chunker"
	"yt-digest/internal/app/compress"
	"yt-digest/internal/app/embedding/provider"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/ingest"
	"yt-digest/internal/app/llm"
	"yt-digest/internal/app/repository"
	"yt-digest/internal/app/repository/sqlite"
	"yt-digest/internal/app/retrieval"
	"yt-digest/internal/app/storage/vector"
	"yt-digest/internal/app/summarize"
	"yt-digest/internal/app/temporal"
	"yt-digest/internal/app/textrank"
	"yt-digest/internal/config"
	"yt-digest/internal/logger"
)

func provideBaseLogger(opts Options) (*zap.Logger, error) {
	return logger.NewLogger(opts.Development)
}

func provideSugaredLogger(base *zap.Logger) *zap.SugaredLogger {
	return base.Sugar()
}

// provideDomainLogger adapts zap to the narrow Logger interfaces the domain
// packages declare for themselves.
func provideDomainLogger(base *zap.Logger) *logger.ZapAdapter {
	return logger.NewZapAdapter(base)
}

func provideAPIKeys() (*config.APIKeys, error) {
	return config.InitializeConfig()
}

func provideEngineConfig(opts Options) (config.EngineConfig, error) {
	return config.LoadEngineConfig(opts.EnginePath)
}

// provideChatProvider picks the generation backend by key availability.
// Gemini first for its context window, then Groq, then OpenAI.
func provideChatProvider(ctx context.Context, opts Options, keys *config.APIKeys, log *zap.SugaredLogger) (llm.ChatProvider, error) {
	if opts.Mock {
		log.Warnw("Using deterministic mock chat provider")
		return llm.NewMockProvider(), nil
	}
	switch {
	case keys.Gemini != "":
		return llm.NewGeminiProvider(ctx, keys.Gemini, config.GetGeminiModel())
	case keys.Groq != "":
		return llm.NewGroqProvider(keys.Groq, config.GetGroqModel()), nil
	case keys.OpenAI != "":
		return llm.NewOpenAIProvider(keys.OpenAI, config.GetOpenAIChatModel()), nil
	}
	return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey,
		"summarization needs GEMINI_API_KEY, GROQ_API_KEY or OPENAI_API_KEY")
}

// provideEmbeddingProvider picks the embedding backend. Groq has no embedding
// API, so only Gemini and OpenAI qualify.
func provideEmbeddingProvider(ctx context.Context, opts Options, keys *config.APIKeys) (provider.EmbeddingProvider, error) {
	if opts.Mock {
		return provider.NewMockProvider(768), nil
	}
	switch {
	case keys.Gemini != "":
		return provider.NewGeminiProvider(ctx, keys.Gemini, config.GetGeminiEmbeddingModel())
	case keys.OpenAI != "":
		return provider.NewOpenAIProvider(keys.OpenAI, config.GetOpenAIEmbeddingModel()), nil
	}
	return nil, apperrors.Wrap(apperrors.ErrMissingAPIKey,
		"ingestion and chat need GEMINI_API_KEY or OPENAI_API_KEY for embeddings")
}

// provideVectorStore connects pgvector when DATABASE_URL is set. Without it
// the index lives in process memory, which is enough for single-shot CLI runs
// but lost on exit.
func provideVectorStore(ctx context.Context, embedder provider.EmbeddingProvider, log *zap.SugaredLogger) (vector.Store, error) {
	if os.Getenv("DATABASE_URL") == "" {
		log.Warnw("DATABASE_URL not set, chunk index is in-memory and lost on exit")
		return vector.NewMemoryStore(), nil
	}
	return vector.OpenPostgres(ctx, config.GetPostgresDSN(), embedder.GetProviderInfo().Dimension)
}

func provideRepository() (*sqlite.DB, error) {
	return sqlite.Open(config.GetSQLitePath())
}

// provideSummaryCache uses Redis when REDIS_ADDR is set and an in-process
// cache otherwise. An unreachable configured Redis is an error rather than a
// silent fallback.
func provideSummaryCache() (cache.SummaryCache, error) {
	ttl := time.Duration(config.DefaultSummaryCacheTTLHours) * time.Hour
	addr := config.GetRedisAddr()
	if addr == "" {
		return cache.NewMemoryCache(ttl), nil
	}
	return cache.NewRedisCache(addr, os.Getenv("REDIS_PASSWORD"), 0, ttl)
}

// provideArchive connects MinIO when credentials are configured and archives
// nothing otherwise.
func provideArchive(ctx context.Context, log *zap.SugaredLogger) (archive.ArtifactStore, error) {
	cfg := config.GetMinioConfig()
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return archive.NewNopArchive(), nil
	}
	store, err := archive.NewMinioArchive(ctx, archive.Options{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	log.Infow("Digest archive enabled", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	return store, nil
}

func provideExtractor(cfg config.EngineConfig, log *logger.ZapAdapter) *textrank.Extractor {
	return textrank.NewExtractor(textrank.Config{
		SentencesPerVideo: cfg.Compression.SentencesPerVideo,
		FallbackSentences: cfg.Compression.FallbackSentences,
	}, log)
}

func provideCompressor(extractor compress.Extractor, cfg config.EngineConfig, log *logger.ZapAdapter) *compress.Compressor {
	return compress.NewCompressor(extractor, compress.Config{
		ThresholdChars:    cfg.Compression.ThresholdChars,
		Ratio:             cfg.Compression.Ratio,
		MinTextLength:     cfg.Compression.MinTextLength,
		SentencesPerVideo: cfg.Compression.SentencesPerVideo,
	}, log)
}

func provideEngine(chatProvider llm.ChatProvider, compressor summarize.Compressor, cfg config.EngineConfig, log *logger.ZapAdapter) *summarize.Engine {
	return summarize.NewEngine(chatProvider, compressor, summarize.Config{
		MaxSingleVideoChars:  cfg.Strategy.MaxSingleVideoChars,
		MaxBatchContextChars: cfg.Strategy.MaxBatchContextChars,
		MapChunkSizeChars:    cfg.Strategy.MapChunkSizeChars,
		MapConcurrency:       cfg.Strategy.MapConcurrency,
	}, log)
}

func provideChunker(cfg config.EngineConfig) *chunker.Chunker {
	return chunker.NewChunker(chunker.Config{
		ChunkSize:    cfg.Chunking.ChunkSize,
		ChunkOverlap: cfg.Chunking.ChunkOverlap,
		MinChunkSize: cfg.Chunking.MinChunkSize,
	})
}

func provideIndexer(ch *chunker.Chunker, embedder provider.EmbeddingProvider, store vector.Store, opts Options, cfg config.EngineConfig, log *logger.ZapAdapter) *ingest.Indexer {
	return ingest.NewIndexer(ch, embedder, store, ingest.Config{
		BatchSize: cfg.Ingestion.EmbeddingBatchSize,
		Progress:  opts.Progress,
	}, log)
}

func provideRetriever(chatProvider llm.ChatProvider, embedder provider.EmbeddingProvider, store vector.Store, cfg config.EngineConfig, log *logger.ZapAdapter) *retrieval.Retriever {
	return retrieval.NewRetriever(chatProvider, embedder, store, retrieval.Config{
		TopK:               cfg.Retrieval.TopK,
		HistoryWindow:      cfg.Retrieval.HistoryWindow,
		RewriteTemperature: float32(cfg.Retrieval.RewriteTemperature),
		RewriteMaxTokens:   cfg.Retrieval.RewriteMaxTokens,
	}, log)
}

func provideChatService(retriever *retrieval.Retriever, chatProvider llm.ChatProvider, conversations repository.ConversationRepository, videos repository.VideoRepository, cfg config.EngineConfig, log *logger.ZapAdapter) *chat.Service {
	return chat.NewService(retriever, chatProvider, conversations, videos, chat.Config{
		HistoryWindow: cfg.Retrieval.HistoryWindow,
	}, log)
}

// provideJobClient dials Temporal only when async digests are requested.
func provideJobClient(opts Options) (*temporal.JobClient, error) {
	if !opts.WithJobs {
		return nil, nil
	}
	return temporal.NewJobClient(temporal.ConfigFromEnv())
}

// provideJobStarter translates a nil client into a nil interface so the
// downstream nil checks work. An interface wrapping a nil pointer would not.
func provideJobStarter(client *temporal.JobClient) services.JobStarter {
	if client == nil {
		return nil
	}
	return client
}

func provideJobTracker(client *temporal.JobClient) services.JobTracker {
	if client == nil {
		return nil
	}
	return client
}

// provideServerConfig applies HOST/PORT overrides to the default listen
// address. Development mode keeps gin's debug router.
func provideServerConfig(opts Options) server.Config {
	cfg := server.DefaultConfig()
	if host := os.Getenv("YTD_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if !opts.Development {
		cfg.Environment = "production"
	}
	return cfg
}
