// Package retrieval turns conversational questions into standalone queries
// and finds the transcript chunks that answer them.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"yt-digest/internal/app/embedding/provider"
	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/llm"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/storage/vector"
)

// Defaults for retrieval tuning.
const (
	DefaultTopK               = 5
	DefaultHistoryWindow      = 5
	DefaultRewriteTemperature = 0.1
	DefaultRewriteMaxTokens   = 256
)

// rewriteSystemPrompt asks the model to reformulate, never answer.
const rewriteSystemPrompt = "Given the conversation history and the user's latest question, " +
	"rewrite the question to be standalone and self-contained. " +
	"Do NOT answer the question, just reformulate it. " +
	"If the question references 'that', 'it', 'this', etc., replace " +
	"with the actual subject from history. " +
	"If the question is already standalone, return it unchanged."

// Logger is the subset of logging the retriever needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

// Config tunes the retriever. Zero fields use the defaults.
type Config struct {
	TopK               int
	HistoryWindow      int
	RewriteTemperature float32
	RewriteMaxTokens   int
}

// Retriever rewrites history-dependent queries into standalone ones, embeds
// them, and searches the playlist namespace.
type Retriever struct {
	chat     llm.ChatProvider
	embedder provider.EmbeddingProvider
	store    vector.Store
	cfg      Config
	logger   Logger
}

// NewRetriever wires a retriever. A nil logger disables logging.
func NewRetriever(chat llm.ChatProvider, embedder provider.EmbeddingProvider, store vector.Store, cfg Config, logger Logger) *Retriever {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if cfg.RewriteTemperature <= 0 {
		cfg.RewriteTemperature = DefaultRewriteTemperature
	}
	if cfg.RewriteMaxTokens <= 0 {
		cfg.RewriteMaxTokens = DefaultRewriteMaxTokens
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Retriever{chat: chat, embedder: embedder, store: store, cfg: cfg, logger: logger}
}

// RewriteQuery turns a history-dependent question into a standalone one.
// With no history the query is already standalone and no model call is made.
// A failed rewrite falls back to the raw query rather than failing the turn.
func (r *Retriever) RewriteQuery(ctx context.Context, query string, history []model.ChatMessage) string {
	if len(history) == 0 {
		return query
	}

	window := history
	if len(window) > r.cfg.HistoryWindow {
		window = window[len(window)-r.cfg.HistoryWindow:]
	}
	lines := make([]string, 0, len(window))
	for _, message := range window {
		lines = append(lines, fmt.Sprintf("%s: %s", capitalizeRole(message.Role), message.Content))
	}

	userPrompt := fmt.Sprintf("Conversation History:\n%s\n\nLatest Question: %s",
		strings.Join(lines, "\n"), query)

	rewritten, err := r.chat.GenerateText(ctx,
		llm.SystemAndUser(rewriteSystemPrompt, userPrompt),
		llm.Options{Temperature: r.cfg.RewriteTemperature, MaxTokens: r.cfg.RewriteMaxTokens})
	if err != nil {
		r.logger.Warn("query rewrite failed, using raw query", "error", err)
		return query
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return query
	}
	if rewritten != query {
		r.logger.Info("query rewritten", "from", query, "to", rewritten)
	}
	return rewritten
}

// Retrieve embeds the query and returns the closest chunks in the namespace,
// best first. An unindexed namespace yields no results and no error.
func (r *Retriever) Retrieve(ctx context.Context, query, namespace string) ([]model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrEmptyQuery
	}

	embedding, err := r.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "embed query")
	}

	results, err := r.store.Query(ctx, namespace, embedding, r.cfg.TopK)
	if err != nil {
		return nil, apperrors.Wrap(err, "search vector store")
	}
	r.logger.Info("retrieved context", "namespace", namespace, "results", len(results))
	return results, nil
}

// RetrieveWithHistory rewrites the query against the conversation history and
// retrieves context for the standalone form.
func (r *Retriever) RetrieveWithHistory(ctx context.Context, query, namespace string, history []model.ChatMessage) ([]model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrEmptyQuery
	}
	standalone := r.RewriteQuery(ctx, query, history)
	return r.Retrieve(ctx, standalone, namespace)
}

// FormatContext renders retrieved chunks for a prompt, one block per chunk
// with the source video and timestamp.
func FormatContext(results []model.SearchResult) string {
	if len(results) == 0 {
		return ""
	}
	parts := make([]string, 0, len(results))
	for _, result := range results {
		meta := result.Chunk.Metadata
		title := meta.VideoTitle
		if title == "" {
			title = "Video"
		}
		parts = append(parts, fmt.Sprintf("[%s @ %s]\n%s",
			title, model.Timestamp(meta.StartTime), result.Chunk.Content))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

func capitalizeRole(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
