package llm

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	apperrors "yt-digest/internal/app/errors"
)

// MockProvider is a deterministic offline ChatProvider for tests and dry
// runs. It answers with a short digest of the last user message and records
// every call.
type MockProvider struct {
	mu    sync.Mutex
	calls []MockCall
}

// MockCall captures one GenerateText invocation.
type MockCall struct {
	Messages []Message
	Opts     Options
}

// NewMockProvider creates an offline chat provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// GenerateText echoes a deterministic stub derived from the last user turn.
func (m *MockProvider) GenerateText(ctx context.Context, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", apperrors.RequiredField("messages")
	}

	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Messages: messages, Opts: opts})
	m.mu.Unlock()

	last := messages[len(messages)-1]
	return fmt.Sprintf("[mock %s] %d chars in", last.Role, utf8.RuneCountInString(last.Content)), nil
}

// Calls returns a copy of the recorded invocations.
func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetProviderInfo returns mock provider information.
func (m *MockProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{Name: "mock", Model: "mock-model"}
}
