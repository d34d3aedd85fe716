package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig represents the tunables of the summarization and retrieval core.
// Zero values fall back to the defaults above, so a partial file is fine.
type EngineConfig struct {
	Chunking    ChunkingConfig    `yaml:"chunking,omitempty"`
	Compression CompressionConfig `yaml:"compression,omitempty"`
	Strategy    StrategyConfig    `yaml:"strategy,omitempty"`
	Retrieval   RetrievalConfig   `yaml:"retrieval,omitempty"`
	Ingestion   IngestionConfig   `yaml:"ingestion,omitempty"`
}

// ChunkingConfig controls the transcript chunker window.
type ChunkingConfig struct {
	ChunkSize    int `yaml:"chunk_size,omitempty"`
	ChunkOverlap int `yaml:"chunk_overlap,omitempty"`
	MinChunkSize int `yaml:"min_chunk_size,omitempty"`
}

// CompressionConfig controls the extractive compressor gate and ratio.
type CompressionConfig struct {
	ThresholdChars    int     `yaml:"threshold_chars,omitempty"`
	Ratio             float64 `yaml:"ratio,omitempty"`
	MinTextLength     int     `yaml:"min_text_length,omitempty"`
	SentencesPerVideo int     `yaml:"sentences_per_video,omitempty"`
	FallbackSentences int     `yaml:"fallback_sentences,omitempty"`
}

// StrategyConfig controls summarization path selection.
type StrategyConfig struct {
	MaxSingleVideoChars  int `yaml:"max_single_video_chars,omitempty"`
	MaxBatchContextChars int `yaml:"max_batch_context_chars,omitempty"`
	MapChunkSizeChars    int `yaml:"map_chunk_size_chars,omitempty"`
	MapConcurrency       int `yaml:"map_concurrency,omitempty"`
}

// RetrievalConfig controls query rewriting and vector search.
type RetrievalConfig struct {
	TopK               int     `yaml:"top_k,omitempty"`
	HistoryWindow      int     `yaml:"history_window,omitempty"`
	RewriteTemperature float64 `yaml:"rewrite_temperature,omitempty"`
	RewriteMaxTokens   int     `yaml:"rewrite_max_tokens,omitempty"`
}

// IngestionConfig controls the indexing pipeline.
type IngestionConfig struct {
	EmbeddingBatchSize int `yaml:"embedding_batch_size,omitempty"`
}

// DefaultEngineConfig returns the built-in tunables.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Chunking: ChunkingConfig{
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
			MinChunkSize: DefaultMinChunkSize,
		},
		Compression: CompressionConfig{
			ThresholdChars:    DefaultCompressionThresholdChars,
			Ratio:             DefaultCompressionRatio,
			MinTextLength:     DefaultMinTextLength,
			SentencesPerVideo: DefaultSentencesPerVideo,
			FallbackSentences: DefaultFallbackSentenceCount,
		},
		Strategy: StrategyConfig{
			MaxSingleVideoChars:  DefaultMaxSingleVideoChars,
			MaxBatchContextChars: DefaultMaxBatchContextChars,
			MapChunkSizeChars:    DefaultMapChunkSizeChars,
			MapConcurrency:       DefaultMapConcurrency,
		},
		Retrieval: RetrievalConfig{
			TopK:               DefaultTopK,
			HistoryWindow:      DefaultHistoryWindow,
			RewriteTemperature: DefaultRewriteTemperature,
			RewriteMaxTokens:   DefaultRewriteMaxTokens,
		},
		Ingestion: IngestionConfig{
			EmbeddingBatchSize: DefaultEmbeddingBatchSize,
		},
	}
}

// LoadEngineConfig loads engine tunables from a YAML file layered over the
// defaults. A missing path returns the defaults unchanged.
func LoadEngineConfig(configPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if configPath == "" {
		return cfg, nil
	}

	// Expand environment variables in path
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read engine config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse engine config YAML: %w", err)
	}

	return cfg.withDefaults(), nil
}

// withDefaults fills zero values so partial files cannot zero out a tunable.
func (c EngineConfig) withDefaults() EngineConfig {
	d := DefaultEngineConfig()
	if c.Chunking.ChunkSize <= 0 {
		c.Chunking.ChunkSize = d.Chunking.ChunkSize
	}
	if c.Chunking.ChunkOverlap <= 0 {
		c.Chunking.ChunkOverlap = d.Chunking.ChunkOverlap
	}
	if c.Chunking.MinChunkSize <= 0 {
		c.Chunking.MinChunkSize = d.Chunking.MinChunkSize
	}
	if c.Compression.ThresholdChars <= 0 {
		c.Compression.ThresholdChars = d.Compression.ThresholdChars
	}
	if c.Compression.Ratio <= 0 {
		c.Compression.Ratio = d.Compression.Ratio
	}
	if c.Compression.MinTextLength <= 0 {
		c.Compression.MinTextLength = d.Compression.MinTextLength
	}
	if c.Compression.SentencesPerVideo <= 0 {
		c.Compression.SentencesPerVideo = d.Compression.SentencesPerVideo
	}
	if c.Compression.FallbackSentences <= 0 {
		c.Compression.FallbackSentences = d.Compression.FallbackSentences
	}
	if c.Strategy.MaxSingleVideoChars <= 0 {
		c.Strategy.MaxSingleVideoChars = d.Strategy.MaxSingleVideoChars
	}
	if c.Strategy.MaxBatchContextChars <= 0 {
		c.Strategy.MaxBatchContextChars = d.Strategy.MaxBatchContextChars
	}
	if c.Strategy.MapChunkSizeChars <= 0 {
		c.Strategy.MapChunkSizeChars = d.Strategy.MapChunkSizeChars
	}
	if c.Strategy.MapConcurrency <= 0 {
		c.Strategy.MapConcurrency = d.Strategy.MapConcurrency
	}
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = d.Retrieval.TopK
	}
	if c.Retrieval.HistoryWindow <= 0 {
		c.Retrieval.HistoryWindow = d.Retrieval.HistoryWindow
	}
	if c.Retrieval.RewriteTemperature <= 0 {
		c.Retrieval.RewriteTemperature = d.Retrieval.RewriteTemperature
	}
	if c.Retrieval.RewriteMaxTokens <= 0 {
		c.Retrieval.RewriteMaxTokens = d.Retrieval.RewriteMaxTokens
	}
	if c.Ingestion.EmbeddingBatchSize <= 0 {
		c.Ingestion.EmbeddingBatchSize = d.Ingestion.EmbeddingBatchSize
	}
	return c
}

// GetGeminiModel returns the generation model for the Gemini provider.
func GetGeminiModel() string {
	if m := os.Getenv("GEMINI_MODEL_NAME"); m != "" {
		return m
	}
	return DefaultGeminiModel
}

// GetGroqModel returns the generation model for the Groq provider.
func GetGroqModel() string {
	if m := os.Getenv("GROQ_MODEL_NAME"); m != "" {
		return m
	}
	return DefaultGroqModel
}

// GetOpenAIChatModel returns the generation model for the OpenAI provider.
func GetOpenAIChatModel() string {
	if m := os.Getenv("OPENAI_MODEL_NAME"); m != "" {
		return m
	}
	return DefaultOpenAIChatModel
}

// GetGeminiEmbeddingModel returns the embedding model for the Gemini provider.
func GetGeminiEmbeddingModel() string {
	if m := os.Getenv("GEMINI_EMBEDDING_MODEL"); m != "" {
		return m
	}
	return DefaultGeminiEmbeddingModel
}

// GetOpenAIEmbeddingModel returns the embedding model for the OpenAI provider.
func GetOpenAIEmbeddingModel() string {
	if m := os.Getenv("OPENAI_EMBEDDING_MODEL"); m != "" {
		return m
	}
	return DefaultOpenAIEmbeddingModel
}
