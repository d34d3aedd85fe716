// Package temporal runs playlist digests as durable workflows so long
// summarization jobs survive process restarts and provider outages.
package temporal

import (
	"fmt"
	"os"

	"go.temporal.io/sdk/client"
)

// Defaults for the Temporal connection.
const (
	DefaultHostPort  = "localhost:7233"
	DefaultNamespace = "default"
	DefaultTaskQueue = "ytd-digest-queue"
)

// Config holds the Temporal client configuration.
type Config struct {
	HostPort  string
	Namespace string
	TaskQueue string
}

// ConfigFromEnv reads TEMPORAL_HOST, TEMPORAL_NAMESPACE and TASK_QUEUE,
// falling back to the defaults.
func ConfigFromEnv() Config {
	return Config{
		HostPort:  envOr("TEMPORAL_HOST", DefaultHostPort),
		Namespace: envOr("TEMPORAL_NAMESPACE", DefaultNamespace),
		TaskQueue: envOr("TASK_QUEUE", DefaultTaskQueue),
	}
}

// Dial connects to the Temporal frontend.
func Dial(cfg Config) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Temporal client: %w", err)
	}
	return c, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
