package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
	Groq   string
}

// LoadEnv loads environment variables from .env file if it exists
// This function implements fail-fast principle - it will exit if critical configuration is missing
func LoadEnv() error {
	// Try to load .env file from current directory or project root
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Look for .env file, but don't fail if not found (environment variables might be set system-wide)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
// Implements fail-fast: returns error immediately if a configured key is malformed
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Groq:   strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
	}

	// Validate API keys format (basic checks)
	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if apiKeys.Gemini != "" {
		if !strings.HasPrefix(apiKeys.Gemini, "AIza") {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.Gemini) < 30 {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	if apiKeys.Groq != "" {
		if !strings.HasPrefix(apiKeys.Groq, "gsk_") {
			return nil, fmt.Errorf("invalid GROQ_API_KEY format: must start with 'gsk_'")
		}
		if len(apiKeys.Groq) < 20 {
			return nil, fmt.Errorf("invalid GROQ_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// RequireLLMKey validates that at least one generation-capable key is available.
// Summarization and chat cannot run without one.
func RequireLLMKey(apiKeys *APIKeys) error {
	if apiKeys.Gemini == "" && apiKeys.Groq == "" && apiKeys.OpenAI == "" {
		return fmt.Errorf("summarization requires an LLM key - set GEMINI_API_KEY, GROQ_API_KEY or OPENAI_API_KEY in environment or .env file")
	}
	return nil
}

// RequireEmbeddingKey validates that an embedding-capable key is available.
func RequireEmbeddingKey(apiKeys *APIKeys) error {
	if apiKeys.Gemini == "" && apiKeys.OpenAI == "" {
		return fmt.Errorf("ingestion requires an embedding key - set GEMINI_API_KEY or OPENAI_API_KEY in environment or .env file")
	}
	return nil
}

// GetPostgresDSN returns the pgvector connection string.
func GetPostgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return "user=postgres password=postgres dbname=ytdigest sslmode=disable"
}

// GetSQLitePath returns the path of the local metadata database.
func GetSQLitePath() string {
	if p := os.Getenv("YTD_SQLITE_PATH"); p != "" {
		return p
	}
	root, err := GetProjectRoot()
	if err != nil {
		return "data/ytdigest.db"
	}
	return filepath.Join(root, "data", "ytdigest.db")
}

// GetRedisAddr returns the summary cache address, or empty when no Redis
// backend is configured and digests should be cached in process.
func GetRedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

// GetTemporalHost returns the temporal frontend address.
func GetTemporalHost() string {
	if host := os.Getenv("TEMPORAL_HOST"); host != "" {
		return host
	}
	return "localhost:7233"
}

// MinioConfig holds object storage connection settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// GetMinioConfig returns the artifact archive settings.
func GetMinioConfig() MinioConfig {
	cfg := MinioConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseSSL:    strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:9000"
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "ytdigest-artifacts"
	}
	return cfg
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads environment and validates configuration
// This is the main entry point for configuration loading
func InitializeConfig() (*APIKeys, error) {
	// Load .env file if available
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Get and validate API keys
	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, nil
}
