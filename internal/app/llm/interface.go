// Package llm abstracts the chat-completion backends used for summarization
// and query rewriting.
package llm

import "context"

// Message roles, matching the wire format of the OpenAI-compatible APIs.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn sent to a provider.
type Message struct {
	Role    string
	Content string
}

// Options tune a single completion call. A zero MaxTokens leaves the limit to
// the provider.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// ChatProvider is implemented by every chat-completion backend.
type ChatProvider interface {
	// GenerateText runs one completion over the given messages.
	GenerateText(ctx context.Context, messages []Message, opts Options) (string, error)

	// GetProviderInfo returns metadata about the provider.
	GetProviderInfo() ProviderInfo
}

// ProviderInfo contains metadata about a chat provider.
type ProviderInfo struct {
	Name  string // Provider name (e.g., "openai", "groq", "gemini")
	Model string // Model identifier (e.g., "gpt-4o-mini")
}

// SystemAndUser is a convenience for the common two-message prompt shape.
func SystemAndUser(system, user string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}
}
