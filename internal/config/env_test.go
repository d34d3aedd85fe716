package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeysValidatesFormats(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "valid keys pass",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-abcdefghijklmnopqrstuvwxyz",
				"GEMINI_API_KEY": "AIzaSyAbCdEfGhIjKlMnOpQrStUvWxYz012345",
				"GROQ_API_KEY":   "gsk_abcdefghijklmnopqrstuvwxyz",
			},
		},
		{
			name: "no keys is not an error",
			env:  map[string]string{},
		},
		{
			name:    "openai key must start with sk-",
			env:     map[string]string{"OPENAI_API_KEY": "pk-abcdefghijklmnopqrstuvwxyz"},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "gemini key must start with AIza",
			env:     map[string]string{"GEMINI_API_KEY": "BIzaSyAbCdEfGhIjKlMnOpQrStUvWxYz01234"},
			wantErr: "GEMINI_API_KEY",
		},
		{
			name:    "groq key too short",
			env:     map[string]string{"GROQ_API_KEY": "gsk_short"},
			wantErr: "GROQ_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "GROQ_API_KEY"} {
				t.Setenv(key, tt.env[key])
			}

			keys, err := GetAPIKeys()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.env["OPENAI_API_KEY"], keys.OpenAI)
			assert.Equal(t, tt.env["GEMINI_API_KEY"], keys.Gemini)
			assert.Equal(t, tt.env["GROQ_API_KEY"], keys.Groq)
		})
	}
}

func TestRequireKeys(t *testing.T) {
	assert.Error(t, RequireLLMKey(&APIKeys{}))
	assert.NoError(t, RequireLLMKey(&APIKeys{Groq: "gsk_x"}))

	assert.Error(t, RequireEmbeddingKey(&APIKeys{Groq: "gsk_x"}), "groq has no embedding API")
	assert.NoError(t, RequireEmbeddingKey(&APIKeys{Gemini: "AIza_x"}))
}

func TestGetSQLitePathPrefersEnv(t *testing.T) {
	t.Setenv("YTD_SQLITE_PATH", "/tmp/custom.db")
	assert.Equal(t, "/tmp/custom.db", GetSQLitePath())
}

func TestGetMinioConfigDefaults(t *testing.T) {
	for _, key := range []string{"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_USE_SSL"} {
		t.Setenv(key, "")
	}

	cfg := GetMinioConfig()
	assert.Equal(t, "localhost:9000", cfg.Endpoint)
	assert.Equal(t, "ytdigest-artifacts", cfg.Bucket)
	assert.False(t, cfg.UseSSL)
	assert.Empty(t, cfg.AccessKey)
}

func TestLoadEngineConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadEngineConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEngineConfig(), cfg)
}

func TestLoadEngineConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadEngineConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultChunkSize, cfg.Chunking.ChunkSize)
	assert.Equal(t, DefaultTopK, cfg.Retrieval.TopK)
}

func TestLoadEngineConfigOverlaysPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	content := `
chunking:
  chunk_size: 500
retrieval:
  top_k: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadEngineConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Chunking.ChunkSize)
	assert.Equal(t, 12, cfg.Retrieval.TopK)
	// Unset fields keep the defaults rather than zeroing out.
	assert.Equal(t, DefaultChunkOverlap, cfg.Chunking.ChunkOverlap)
	assert.Equal(t, DefaultCompressionRatio, cfg.Compression.Ratio)
	assert.Equal(t, DefaultMapConcurrency, cfg.Strategy.MapConcurrency)
}

func TestLoadEngineConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunking: ["), 0o644))

	_, err := LoadEngineConfig(path)
	assert.Error(t, err)
}

func TestModelGetters(t *testing.T) {
	t.Setenv("GEMINI_MODEL_NAME", "")
	assert.Equal(t, DefaultGeminiModel, GetGeminiModel())

	t.Setenv("GEMINI_MODEL_NAME", "gemini-exp")
	assert.Equal(t, "gemini-exp", GetGeminiModel())

	t.Setenv("OPENAI_EMBEDDING_MODEL", "")
	assert.Equal(t, DefaultOpenAIEmbeddingModel, GetOpenAIEmbeddingModel())

	t.Setenv("GEMINI_EMBEDDING_MODEL", "custom-embed")
	assert.Equal(t, "custom-embed", GetGeminiEmbeddingModel())
}
