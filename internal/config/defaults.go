package config

// Engine default configuration constants
const (
	// Chunking defaults
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
	DefaultMinChunkSize = 100

	// Extractive compression defaults
	DefaultCompressionThresholdChars = 100_000
	DefaultCompressionRatio          = 0.15
	DefaultMinTextLength             = 500
	DefaultSentencesPerVideo         = 50
	DefaultFallbackSentenceCount     = 30

	// Strategy thresholds (chars; context-window derived)
	DefaultMaxSingleVideoChars  = 2_000_000
	DefaultMaxBatchContextChars = 3_000_000
	DefaultMapChunkSizeChars    = 2_000_000

	// Generation temperatures per phase
	DefaultTemperatureSingle = 0.3
	DefaultTemperatureDirect = 0.4
	DefaultTemperatureMap    = 0.3
	DefaultTemperatureReduce = 0.4

	// Retrieval defaults
	DefaultTopK               = 5
	DefaultHistoryWindow      = 5
	DefaultRewriteTemperature = 0.1
	DefaultRewriteMaxTokens   = 256

	// Ingestion defaults
	DefaultEmbeddingBatchSize = 32

	// Map phase fan-out ceiling
	DefaultMapConcurrency = 4

	// Provider model defaults (overridable via env)
	DefaultGeminiModel          = "gemini-2.0-flash"
	DefaultGroqModel            = "llama-3.3-70b-versatile"
	DefaultOpenAIChatModel      = "gpt-4o-mini"
	DefaultOpenAIEmbeddingModel = "text-embedding-3-small"
	DefaultGeminiEmbeddingModel = "text-embedding-004"

	// Summary cache TTL in hours
	DefaultSummaryCacheTTLHours = 24
)
